package world

import "github.com/zdash/zombiedash/internal/core/event"

const (
	zombieStride = 1
	vaccineDrop  = 10 // a dumb zombie drops a vaccine one time in this many
)

// zombie is the behavior shared by both variants: rest every other tick,
// vomit at anything infectable straight ahead, then walk the current plan.
type zombie struct {
	agent
	pacer
	plan int
}

func (*zombie) ThreatensCitizens() bool { return true }

// act runs one tick. pick chooses a new heading when the plan runs out.
func (z *zombie) act(self Actor, pick func()) {
	if !z.alive {
		return
	}
	if z.resting() {
		return
	}
	z.vomitIfPossible()
	if z.plan == 0 {
		z.plan = randInt(z.world.rng, 3, 10)
		pick()
	}
	z.walk(self)
}

func (z *zombie) vomitIfPossible() {
	w := z.world
	x, y := z.ahead(TileSize)
	if !w.IsZombieVomitTriggerAt(x, y) {
		return
	}
	if randInt(w.rng, 1, 3) == 3 {
		w.Spawn(newVomit(w, x, y, z.facing))
		w.play(SoundZombieVomit)
	}
}

// walk advances one step along the plan. Bumping into something cancels the
// rest of the plan.
func (z *zombie) walk(self Actor) {
	x, y := z.ahead(zombieStride)
	if z.world.IsMovementBlockedAt(x, y, self) {
		z.plan = 0
		return
	}
	z.moveTo(x, y)
	z.plan--
}

// kill retires the zombie and scores it.
func (z *zombie) kill(points int, smart bool) {
	w := z.world
	z.setDead()
	w.addScore(points)
	w.play(SoundZombieDie)
	event.Emit(w.bus, event.ZombieKilled{Smart: smart})
}

// DumbZombie wanders at random.
type DumbZombie struct {
	zombie
}

func newDumbZombie(w *World, x, y int) *DumbZombie {
	z := &DumbZombie{}
	z.base = newBase(w, KindDumbZombie, x, y, Right, 0)
	return z
}

func (z *DumbZombie) Act() {
	z.act(z, func() { z.facing = randomHeading(z.world.rng) })
}

func (z *DumbZombie) DieByFallOrBurn() {
	if !z.alive {
		return
	}
	w := z.world
	z.kill(w.scores.DumbZombieKilled, false)
	if randInt(w.rng, 1, vaccineDrop) != vaccineDrop {
		return
	}
	var dx, dy int
	switch randInt(w.rng, 1, 4) {
	case 1:
		dx = TileSize
	case 2:
		dx = -TileSize
	case 3:
		dy = TileSize
	case 4:
		dy = -TileSize
	}
	x, y := z.x+dx, z.y+dy
	if !w.IsThrownGoodieBlockedAt(x, y) {
		w.Spawn(newGoodie(w, KindVaccineGoodie, x, y))
	}
}

// SmartZombie heads for the nearest infectable person it can sense.
type SmartZombie struct {
	zombie
}

func newSmartZombie(w *World, x, y int) *SmartZombie {
	z := &SmartZombie{}
	z.base = newBase(w, KindSmartZombie, x, y, Right, 0)
	return z
}

func (z *SmartZombie) Act() {
	z.act(z, z.pickHeading)
}

func (z *SmartZombie) pickHeading() {
	w := z.world
	t, ok := w.LocateNearestVomitTrigger(z.x, z.y)
	if !ok {
		z.facing = randomHeading(w.rng)
		return
	}
	if d, ok := headingToward(w.rng, z.x, z.y, t.X, t.Y); ok {
		z.facing = d
	}
}

func (z *SmartZombie) DieByFallOrBurn() {
	if z.alive {
		z.kill(z.world.scores.SmartZombieKilled, true)
	}
}
