package world

import "github.com/zdash/zombiedash/internal/core/event"

const (
	protagonistStride = 4
	flameReach        = 3
)

// Protagonist is the player-controlled person.
type Protagonist struct {
	person
	vaccines int
	flames   int
	mines    int
	exited   bool
}

func newProtagonist(w *World, x, y int) *Protagonist {
	p := &Protagonist{}
	p.base = newBase(w, KindPlayer, x, y, Right, 0)
	return p
}

func (p *Protagonist) Vaccines() int { return p.vaccines }
func (p *Protagonist) Flames() int { return p.flames }
func (p *Protagonist) Mines() int { return p.mines }

// Exited reports whether the protagonist has used the exit this level.
func (p *Protagonist) Exited() bool { return p.exited }

func (p *Protagonist) Act() {
	if !p.alive {
		return
	}
	if p.advanceInfection() {
		p.die()
		return
	}

	key, ok := p.world.input.PollKey()
	if !ok {
		return
	}
	switch key {
	case KeyUp:
		p.tryMove(p, Up, protagonistStride)
	case KeyDown:
		p.tryMove(p, Down, protagonistStride)
	case KeyLeft:
		p.tryMove(p, Left, protagonistStride)
	case KeyRight:
		p.tryMove(p, Right, protagonistStride)
	case KeyFlame:
		p.throwFlames()
	case KeyLandmine:
		p.plantLandmine()
	case KeyVaccine:
		p.useVaccine()
	}
}

// throwFlames spits up to flameReach flames ahead, stopping at the first
// cell that blocks flame. The charge is spent even if nothing came out.
func (p *Protagonist) throwFlames() {
	if p.flames == 0 {
		return
	}
	w := p.world
	x, y := p.x, p.y
	dx, dy := p.facing.delta(TileSize)
	n := 0
	for i := 0; i < flameReach; i++ {
		x += dx
		y += dy
		if w.IsFlameBlockedAt(x, y) {
			break
		}
		w.Spawn(newFlame(w, x, y, p.facing))
		n++
	}
	w.play(SoundPlayerFire)
	p.flames--
	event.Emit(w.bus, event.FlameThrown{Flames: n})
}

func (p *Protagonist) plantLandmine() {
	if p.mines == 0 {
		return
	}
	p.world.Spawn(newLandmine(p.world, p.x, p.y))
	p.mines--
}

func (p *Protagonist) useVaccine() {
	if p.vaccines == 0 {
		return
	}
	p.cure()
	p.vaccines--
}

func (p *Protagonist) die() {
	p.setDead()
	p.world.play(SoundPlayerDie)
}

// UseExit only lets the protagonist out once every citizen is accounted for.
func (p *Protagonist) UseExit() {
	if p.world.citizens == 0 {
		p.exited = true
	}
}

func (p *Protagonist) DieByFallOrBurn() {
	if p.alive {
		p.die()
	}
}

func (p *Protagonist) PickUp(g *Goodie) { g.consume(p) }
