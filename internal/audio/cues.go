package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/zdash/zombiedash/internal/world"
)

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

type recipe struct {
	notes []note
	gain  float64
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

var recipes = map[world.Sound]recipe{
	world.SoundPlayerFire: {gain: 0.5, notes: []note{{0, 180 * time.Millisecond, WaveNoise}}},
	world.SoundPlayerDie: {gain: 0.7, notes: []note{
		{220, 150 * time.Millisecond, WaveSaw},
		{165, 150 * time.Millisecond, WaveSaw},
		{110, 300 * time.Millisecond, WaveSaw},
	}},
	world.SoundZombieBorn:      {gain: 0.6, notes: []note{{90, 300 * time.Millisecond, WaveSquare}}},
	world.SoundZombieVomit:     {gain: 0.3, notes: []note{{0, 120 * time.Millisecond, WaveNoise}}},
	world.SoundZombieDie:       {gain: 0.6, notes: []note{{150, 120 * time.Millisecond, WaveSaw}, {75, 180 * time.Millisecond, WaveSaw}}},
	world.SoundCitizenInfected: {gain: 0.4, notes: []note{{330, 150 * time.Millisecond, WaveSine}}},
	world.SoundCitizenSaved:    {gain: 0.5, notes: []note{{659.25, 90 * time.Millisecond, WaveSquare}, {880, 160 * time.Millisecond, WaveSquare}}},
	world.SoundCitizenDie:      {gain: 0.5, notes: []note{{196, 250 * time.Millisecond, WaveSaw}}},
	world.SoundGotGoodie:       {gain: 0.5, notes: []note{{880, 80 * time.Millisecond, WaveSine}, {1760, 120 * time.Millisecond, WaveSine}}},
	world.SoundLandmineExplode: {gain: 0.8, notes: []note{{0, 400 * time.Millisecond, WaveNoise}}},
	world.SoundLevelFinished: {gain: 0.5, notes: []note{
		{523.25, 120 * time.Millisecond, WaveSine},
		{659.25, 120 * time.Millisecond, WaveSine},
		{783.99, 240 * time.Millisecond, WaveSine},
	}},
	world.SoundTheme: {gain: 0.3, notes: []note{
		{220, 300 * time.Millisecond, WaveSine},
		{261.63, 300 * time.Millisecond, WaveSine},
		{196, 600 * time.Millisecond, WaveSine},
	}},
}

// Cue synthesises the streamer for s at the given master volume. It
// returns nil for an unknown cue.
func Cue(s world.Sound, rate beep.SampleRate, master float64) beep.Streamer {
	r, ok := recipes[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(r.notes))
	for _, n := range r.notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, attack, release, rate))
	}
	return withVolume(beep.Seq(parts...), r.gain*master)
}
