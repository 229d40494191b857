package world

// Target is the result of a nearest-entity query.
type Target struct {
	X, Y   int
	Dist2  int
	Threat bool // the target is a zombie
}

// ActivateOverlapping applies activator's effect to every live entity within
// the proximity radius, the protagonist first. Entities spawned by the
// activation are not visited, and the walk stops if the activator dies.
func (w *World) ActivateOverlapping(activator Actor) {
	ax, ay := activator.Pos()
	if p := w.player; p != nil && p.alive && Actor(p) != activator {
		if dist2(ax, ay, p.x, p.y) <= ProximityRadius2 {
			activator.Activate(p)
		}
	}
	n := w.actors.Len()
	for i := 0; i < n && activator.Alive(); i++ {
		a := w.actors.At(i)
		if a == activator || !a.Alive() {
			continue
		}
		x, y := a.Pos()
		if dist2(ax, ay, x, y) <= ProximityRadius2 {
			activator.Activate(a)
		}
	}
}

// IsMovementBlockedAt reports whether an agent at (x, y) would overlap the
// protagonist or any movement-blocking entity other than requester.
func (w *World) IsMovementBlockedAt(x, y int, requester Actor) bool {
	if p := w.player; p != nil && p.alive && Actor(p) != requester {
		if cornersOverlap(x, y, p.x, p.y) {
			return true
		}
	}
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if a == requester || !a.Alive() || !a.BlocksMovement() {
			continue
		}
		ox, oy := a.Pos()
		if cornersOverlap(x, y, ox, oy) {
			return true
		}
	}
	return false
}

// IsFlameBlockedAt reports whether a flame-blocking entity is within the
// proximity radius of (x, y).
func (w *World) IsFlameBlockedAt(x, y int) bool {
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if !a.Alive() || !a.BlocksFlame() {
			continue
		}
		ox, oy := a.Pos()
		if dist2(x, y, ox, oy) <= ProximityRadius2 {
			return true
		}
	}
	return false
}

// IsZombieVomitTriggerAt reports whether someone infectable is within the
// proximity radius of (x, y).
func (w *World) IsZombieVomitTriggerAt(x, y int) bool {
	if p := w.player; p != nil && p.alive && dist2(x, y, p.x, p.y) <= ProximityRadius2 {
		return true
	}
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if !a.Alive() || !a.TriggersZombieVomit() {
			continue
		}
		ox, oy := a.Pos()
		if dist2(x, y, ox, oy) <= ProximityRadius2 {
			return true
		}
	}
	return false
}

// IsThrownGoodieBlockedAt reports whether a goodie landing at (x, y) would
// overlap any live entity.
func (w *World) IsThrownGoodieBlockedAt(x, y int) bool {
	if p := w.player; p != nil && p.alive && cornersOverlap(x, y, p.x, p.y) {
		return true
	}
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if !a.Alive() {
			continue
		}
		ox, oy := a.Pos()
		if cornersOverlap(x, y, ox, oy) {
			return true
		}
	}
	return false
}

// LocateNearestVomitTrigger finds the closest infectable person within the
// sense radius of (x, y). Later entities win ties.
func (w *World) LocateNearestVomitTrigger(x, y int) (Target, bool) {
	best := Target{Dist2: SenseRadius2}
	found := false
	if p := w.player; p != nil && p.alive {
		if d := dist2(x, y, p.x, p.y); d <= best.Dist2 {
			best, found = Target{X: p.x, Y: p.y, Dist2: d}, true
		}
	}
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if !a.Alive() || !a.TriggersZombieVomit() {
			continue
		}
		ox, oy := a.Pos()
		if d := dist2(x, y, ox, oy); d <= best.Dist2 {
			best, found = Target{X: ox, Y: oy, Dist2: d}, true
		}
	}
	return best, found
}

// LocateNearestCitizenThreat finds the closest zombie to (x, y), however
// far. The first of several equally close zombies wins.
func (w *World) LocateNearestCitizenThreat(x, y int) (Target, bool) {
	var best Target
	found := false
	for i := 0; i < w.actors.Len(); i++ {
		a := w.actors.At(i)
		if !a.Alive() || !a.ThreatensCitizens() {
			continue
		}
		ox, oy := a.Pos()
		if d := dist2(x, y, ox, oy); !found || d < best.Dist2 {
			best, found = Target{X: ox, Y: oy, Dist2: d, Threat: true}, true
		}
	}
	return best, found
}

// LocateNearestCitizenTrigger finds what a citizen at (x, y) should react
// to: the protagonist, unless a zombie is strictly closer.
func (w *World) LocateNearestCitizenTrigger(x, y int) (Target, bool) {
	var best Target
	found := false
	if p := w.player; p != nil && p.alive {
		best, found = Target{X: p.x, Y: p.y, Dist2: dist2(x, y, p.x, p.y)}, true
	}
	if z, ok := w.LocateNearestCitizenThreat(x, y); ok && (!found || z.Dist2 < best.Dist2) {
		best, found = z, true
	}
	return best, found
}
