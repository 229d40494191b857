package world

import "github.com/zdash/zombiedash/internal/core/event"

const (
	citizenStride = 2
	dumbOdds      = 7 // out of 10
)

// Citizen wanders toward the protagonist and away from zombies. An
// infection left untreated turns it into a zombie.
type Citizen struct {
	person
	pacer
}

func newCitizen(w *World, x, y int) *Citizen {
	c := &Citizen{}
	c.base = newBase(w, KindCitizen, x, y, Right, 0)
	return c
}

func (c *Citizen) Act() {
	if !c.alive {
		return
	}
	if c.advanceInfection() {
		c.turn()
		return
	}
	if c.resting() {
		return
	}

	w := c.world
	t, ok := w.LocateNearestCitizenTrigger(c.x, c.y)
	if !ok || t.Dist2 > SenseRadius2 {
		return
	}
	if !t.Threat {
		if d, ok := headingToward(w.rng, c.x, c.y, t.X, t.Y); ok {
			c.stepIfClear(c, d, citizenStride)
		}
		return
	}
	c.flee(t.Dist2)
}

// flee steps in whichever unblocked direction puts the most distance
// between the citizen and its nearest threat. It stays put if no step does
// better than nearest.
func (c *Citizen) flee(nearest int) {
	w := c.world
	best := nearest
	var chosen Direction
	found := false
	for _, d := range [...]Direction{Up, Down, Left, Right} {
		dx, dy := d.delta(citizenStride)
		nx, ny := c.x+dx, c.y+dy
		z, ok := w.LocateNearestCitizenThreat(nx, ny)
		if !ok || z.Dist2 <= best || w.IsMovementBlockedAt(nx, ny, c) {
			continue
		}
		best, chosen, found = z.Dist2, d, true
	}
	if found {
		c.facing = chosen
		dx, dy := chosen.delta(citizenStride)
		c.moveTo(c.x+dx, c.y+dy)
	}
}

// turn replaces the citizen with a zombie.
func (c *Citizen) turn() {
	w := c.world
	c.setDead()
	w.play(SoundZombieBorn)
	w.addScore(w.scores.CitizenLost)
	w.recordCitizenGone()
	event.Emit(w.bus, event.CitizenLost{Converted: true})

	smart := randInt(w.rng, 1, 10) > dumbOdds
	if smart {
		w.Spawn(newSmartZombie(w, c.x, c.y))
	} else {
		w.Spawn(newDumbZombie(w, c.x, c.y))
	}
	event.Emit(w.bus, event.ZombieBorn{Smart: smart})
}

func (c *Citizen) UseExit() {
	if !c.alive {
		return
	}
	w := c.world
	c.setDead()
	w.addScore(w.scores.CitizenSaved)
	w.recordCitizenGone()
	w.play(SoundCitizenSaved)
	event.Emit(w.bus, event.CitizenSaved{})
}

func (c *Citizen) DieByFallOrBurn() {
	if !c.alive {
		return
	}
	w := c.world
	c.setDead()
	w.addScore(w.scores.CitizenLost)
	w.play(SoundCitizenDie)
	w.recordCitizenGone()
	event.Emit(w.bus, event.CitizenLost{})
}

func (c *Citizen) BeVomitedOn() {
	if c.infection == 0 {
		c.world.play(SoundCitizenInfected)
	}
	c.person.BeVomitedOn()
}
