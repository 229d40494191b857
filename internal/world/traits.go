package world

// agent is the trait shared by everything that walks: it blocks movement
// and sets off armed landmines.
type agent struct {
	base
}

func (*agent) BlocksMovement() bool { return true }
func (*agent) TriggersOnlyArmedLandmines() bool { return true }

// tryMove steps n units along d if nothing blocks the destination. The
// facing is updated either way.
func (a *agent) tryMove(self Actor, d Direction, n int) bool {
	a.facing = d
	dx, dy := d.delta(n)
	nx, ny := a.x+dx, a.y+dy
	if a.world.IsMovementBlockedAt(nx, ny, self) {
		return false
	}
	a.moveTo(nx, ny)
	return true
}

// stepIfClear steps n units along d only if nothing blocks the
// destination. A blocked step leaves both position and facing untouched.
func (a *agent) stepIfClear(self Actor, d Direction, n int) bool {
	dx, dy := d.delta(n)
	nx, ny := a.x+dx, a.y+dy
	if a.world.IsMovementBlockedAt(nx, ny, self) {
		return false
	}
	a.facing = d
	a.moveTo(nx, ny)
	return true
}

// person is an agent that can be infected: the protagonist and citizens.
type person struct {
	agent
	infection int // 0 while healthy
}

const infectionLimit = 500

func (*person) TriggersZombieVomit() bool { return true }

func (p *person) BeVomitedOn() { p.infection++ }

func (p *person) Infected() bool { return p.infection > 0 }

func (p *person) Infection() int { return p.infection }

func (p *person) cure() { p.infection = 0 }

// advanceInfection bumps a running infection and reports whether it has
// reached the limit.
func (p *person) advanceInfection() bool {
	if p.infection == 0 {
		return false
	}
	p.infection++
	return p.infection >= infectionLimit
}

// pacer paralyses its owner every other tick.
type pacer struct {
	phase int
}

// resting reports whether this tick is a paralysed one.
func (p *pacer) resting() bool {
	if p.phase%2 == 0 {
		p.phase++
		return true
	}
	p.phase--
	return false
}
