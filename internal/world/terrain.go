package world

// Wall blocks movement and flame and never acts.
type Wall struct {
	base
}

func newWall(w *World, x, y int) *Wall {
	return &Wall{base: newBase(w, KindWall, x, y, Right, 0)}
}

func (*Wall) Act() {}

func (*Wall) BlocksMovement() bool { return true }
func (*Wall) BlocksFlame() bool { return true }

// Exit lets overlapping entities use it. It stops flames but not walkers.
type Exit struct {
	base
}

func newExit(w *World, x, y int) *Exit {
	return &Exit{base: newBase(w, KindExit, x, y, Right, 1)}
}

func (e *Exit) Act() {
	if !e.alive {
		return
	}
	e.world.ActivateOverlapping(e)
}

func (*Exit) BlocksFlame() bool { return true }

func (*Exit) Activate(other Actor) { other.UseExit() }

// Pit kills anything that falls in.
type Pit struct {
	base
}

func newPit(w *World, x, y int) *Pit {
	return &Pit{base: newBase(w, KindPit, x, y, Right, 0)}
}

func (p *Pit) Act() {
	if !p.alive {
		return
	}
	p.world.ActivateOverlapping(p)
}

func (*Pit) Activate(other Actor) {
	if other.Alive() {
		other.DieByFallOrBurn()
	}
}
