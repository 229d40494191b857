package world

// Sound identifies a sound cue. The world only names cues; playback belongs
// to whatever SoundPlayer the driver plugs in.
type Sound int

const (
	SoundPlayerFire Sound = iota
	SoundPlayerDie
	SoundZombieBorn
	SoundZombieVomit
	SoundZombieDie
	SoundCitizenInfected
	SoundCitizenSaved
	SoundCitizenDie
	SoundGotGoodie
	SoundLandmineExplode
	SoundLevelFinished
	SoundTheme
)

var soundNames = [...]string{
	SoundPlayerFire:      "player_fire",
	SoundPlayerDie:       "player_die",
	SoundZombieBorn:      "zombie_born",
	SoundZombieVomit:     "zombie_vomit",
	SoundZombieDie:       "zombie_die",
	SoundCitizenInfected: "citizen_infected",
	SoundCitizenSaved:    "citizen_saved",
	SoundCitizenDie:      "citizen_die",
	SoundGotGoodie:       "got_goodie",
	SoundLandmineExplode: "landmine_explode",
	SoundLevelFinished:   "level_finished",
	SoundTheme:           "theme",
}

func (s Sound) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// SoundPlayer plays cues. Implementations must not block the tick.
type SoundPlayer interface {
	Play(Sound)
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Sound) {}
