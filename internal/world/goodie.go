package world

import "github.com/zdash/zombiedash/internal/core/event"

// Perk sizes granted by each goodie.
const (
	vaccinePerk  = 1
	gasCanPerk   = 5
	landminePerk = 2
)

// Goodie is a pickup. Kind selects the perk.
type Goodie struct {
	base
}

func newGoodie(w *World, kind Kind, x, y int) *Goodie {
	return &Goodie{base: newBase(w, kind, x, y, Right, 1)}
}

func (g *Goodie) Act() {
	if !g.alive {
		return
	}
	g.world.ActivateOverlapping(g)
}

func (g *Goodie) Activate(other Actor) { other.PickUp(g) }

// Goodies burn up in flames and fall into pits like anything else.
func (g *Goodie) DieByFallOrBurn() { g.setDead() }

// grant applies the perk to p.
func (g *Goodie) grant(p *Protagonist) {
	switch g.kind {
	case KindVaccineGoodie:
		p.vaccines += vaccinePerk
	case KindGasCanGoodie:
		p.flames += gasCanPerk
	case KindLandmineGoodie:
		p.mines += landminePerk
	}
}

// consume grants the perk to p, scores it and removes the goodie.
func (g *Goodie) consume(p *Protagonist) {
	if !g.alive {
		return
	}
	w := g.world
	g.grant(p)
	w.addScore(w.scores.GoodiePicked)
	w.play(SoundGotGoodie)
	g.setDead()
	event.Emit(w.bus, event.GoodiePicked{Kind: g.kind.String()})
}
