package world

import "github.com/zdash/zombiedash/internal/core/event"

const (
	// A flame or vomit spawned in tick T is active in T+1 and T+2 and
	// marks itself dead in T+3.
	splashLifetime = 2

	landmineSafetyTicks = 30
)

// splash is the shared lifetime of flames and vomit.
type splash struct {
	base
	ticks int
}

// live reports whether the splash still has activity left this tick and
// marks it dead once it has run out.
func (s *splash) live() bool {
	if !s.alive {
		return false
	}
	if s.ticks >= splashLifetime {
		s.setDead()
		return false
	}
	s.ticks++
	return true
}

// Flame burns whatever it overlaps.
type Flame struct {
	splash
}

func newFlame(w *World, x, y int, facing Direction) *Flame {
	return &Flame{splash{base: newBase(w, KindFlame, x, y, facing, 0)}}
}

func (f *Flame) Act() {
	if f.live() {
		f.world.ActivateOverlapping(f)
	}
}

func (*Flame) Activate(other Actor) {
	if other.Alive() {
		other.DieByFallOrBurn()
	}
}

// Vomit infects whatever it overlaps.
type Vomit struct {
	splash
}

func newVomit(w *World, x, y int, facing Direction) *Vomit {
	return &Vomit{splash{base: newBase(w, KindVomit, x, y, facing, 0)}}
}

func (v *Vomit) Act() {
	if v.live() {
		v.world.ActivateOverlapping(v)
	}
}

func (*Vomit) Activate(other Actor) { other.BeVomitedOn() }

// Landmine arms after a safety window, then explodes under the first agent
// to step on it. Flames set it off whether or not it is armed.
type Landmine struct {
	base
	safety int
}

func newLandmine(w *World, x, y int) *Landmine {
	return &Landmine{base: newBase(w, KindLandmine, x, y, Right, 1), safety: landmineSafetyTicks}
}

// Armed reports whether the safety window has run out.
func (m *Landmine) Armed() bool { return m.safety == 0 }

func (m *Landmine) Act() {
	if !m.alive {
		return
	}
	if m.safety > 0 {
		m.safety--
		return
	}
	m.world.ActivateOverlapping(m)
}

func (m *Landmine) Activate(other Actor) {
	if other.TriggersOnlyArmedLandmines() {
		m.explode()
	}
}

func (m *Landmine) DieByFallOrBurn() { m.explode() }

// explode replaces the mine with a 3x3 ring of flames, skipping cells that
// stop flames, and a pit at its own position.
func (m *Landmine) explode() {
	if !m.alive {
		return
	}
	m.setDead()
	w := m.world
	w.play(SoundLandmineExplode)
	event.Emit(w.bus, event.LandmineDetonated{X: m.x, Y: m.y})

	for dx := -TileSize; dx <= TileSize; dx += TileSize {
		for dy := -TileSize; dy <= TileSize; dy += TileSize {
			x, y := m.x+dx, m.y+dy
			if !w.IsFlameBlockedAt(x, y) {
				w.Spawn(newFlame(w, x, y, Up))
			}
		}
	}
	w.Spawn(newPit(w, m.x, m.y))
}
