package world

// Kind tags the concrete entity type. Renderers key their glyphs off it.
type Kind int

const (
	KindPlayer Kind = iota
	KindDumbZombie
	KindSmartZombie
	KindCitizen
	KindWall
	KindExit
	KindPit
	KindFlame
	KindVomit
	KindLandmine
	KindVaccineGoodie
	KindGasCanGoodie
	KindLandmineGoodie
)

var kindNames = [...]string{
	KindPlayer:         "player",
	KindDumbZombie:     "dumb_zombie",
	KindSmartZombie:    "smart_zombie",
	KindCitizen:        "citizen",
	KindWall:           "wall",
	KindExit:           "exit",
	KindPit:            "pit",
	KindFlame:          "flame",
	KindVomit:          "vomit",
	KindLandmine:       "landmine",
	KindVaccineGoodie:  "vaccine_goodie",
	KindGasCanGoodie:   "gas_can_goodie",
	KindLandmineGoodie: "landmine_goodie",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsZombie reports whether k is either zombie variant.
func (k Kind) IsZombie() bool { return k == KindDumbZombie || k == KindSmartZombie }
