package world

// Actor is implemented by every entity kind. The set of kinds is closed:
// the unexported core method keeps implementations inside this package.
//
// Capability methods have neutral defaults on base; each kind overrides
// only what it participates in.
type Actor interface {
	Act()
	Kind() Kind
	Alive() bool
	Pos() (x, y int)

	BlocksMovement() bool
	BlocksFlame() bool
	TriggersZombieVomit() bool
	TriggersOnlyArmedLandmines() bool
	ThreatensCitizens() bool

	// Activate applies this activator's effect to other.
	Activate(other Actor)
	UseExit()
	DieByFallOrBurn()
	BeVomitedOn()
	PickUp(g *Goodie)

	core() *base
}

// base carries the state every entity has. It is embedded, never used alone.
type base struct {
	world  *World
	kind   Kind
	x, y   int
	facing Direction
	depth  int
	size   float64
	frame  int
	alive  bool
}

func newBase(w *World, kind Kind, x, y int, facing Direction, depth int) base {
	return base{world: w, kind: kind, x: x, y: y, facing: facing, depth: depth, size: 1, alive: true}
}

func (b *base) core() *base { return b }
func (b *base) Kind() Kind { return b.kind }
func (b *base) Alive() bool { return b.alive }
func (b *base) Pos() (int, int) { return b.x, b.y }
func (b *base) Facing() Direction { return b.facing }

func (b *base) BlocksMovement() bool { return false }
func (b *base) BlocksFlame() bool { return false }
func (b *base) TriggersZombieVomit() bool { return false }
func (b *base) TriggersOnlyArmedLandmines() bool { return false }
func (b *base) ThreatensCitizens() bool { return false }

func (b *base) Activate(Actor) {}
func (b *base) UseExit() {}
func (b *base) DieByFallOrBurn() {}
func (b *base) BeVomitedOn() {}
func (b *base) PickUp(*Goodie) {}

func (b *base) setDead() { b.alive = false }

func (b *base) moveTo(x, y int) {
	b.x, b.y = x, y
	b.frame++
}

// ahead returns the position n units in front of the entity.
func (b *base) ahead(n int) (int, int) {
	dx, dy := b.facing.delta(n)
	return b.x + dx, b.y + dy
}

func (b *base) sprite() Sprite {
	return Sprite{Kind: b.kind, X: b.x, Y: b.y, Facing: b.facing, Depth: b.depth, Size: b.size, Frame: b.frame}
}
