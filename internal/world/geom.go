package world

// Grid and metric constants. All distances are squared to avoid a sqrt.
const (
	TileSize = 16

	ProximityRadius2 = 100  // "overlapping" for activation purposes
	SenseRadius2     = 6400 // how far citizens and smart zombies look
)

// Direction is a facing in degrees, counter-clockwise from east.
type Direction int

const (
	Right Direction = 0
	Up    Direction = 90
	Left  Direction = 180
	Down  Direction = 270
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return "unknown"
}

// delta returns the offset of a step of n units in direction d. The y axis
// points up.
func (d Direction) delta(n int) (dx, dy int) {
	switch d {
	case Right:
		return n, 0
	case Left:
		return -n, 0
	case Up:
		return 0, n
	case Down:
		return 0, -n
	}
	return 0, 0
}

func dist2(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// insideBox reports whether (px, py) lies in the tile-sized box anchored at
// (ox, oy), edges inclusive.
func insideBox(px, py, ox, oy int) bool {
	return px >= ox && px <= ox+TileSize-1 && py >= oy && py <= oy+TileSize-1
}

// cornersOverlap reports whether any corner of the tile-sized box at (x, y)
// falls inside the box at (ox, oy). This is a corner-inclusion test, not a
// separating-axis test: equal-sized boxes always share a corner when they
// overlap, but a box larger than a tile could be passed through.
func cornersOverlap(x, y, ox, oy int) bool {
	const e = TileSize - 1
	return insideBox(x, y, ox, oy) ||
		insideBox(x, y+e, ox, oy) ||
		insideBox(x+e, y, ox, oy) ||
		insideBox(x+e, y+e, ox, oy)
}

// headingToward picks the cardinal heading from (x, y) to (tx, ty): along
// the shared axis when the two are aligned, otherwise along an axis chosen
// at random. ok is false when the points coincide.
func headingToward(r Rand, x, y, tx, ty int) (d Direction, ok bool) {
	if x == tx && y == ty {
		return Right, false
	}
	horizontal := y == ty
	if x != tx && y != ty {
		horizontal = randInt(r, 0, 1) == 0
	}
	if horizontal {
		if x < tx {
			return Right, true
		}
		return Left, true
	}
	if y < ty {
		return Up, true
	}
	return Down, true
}

// randomHeading draws one of the four headings uniformly.
func randomHeading(r Rand) Direction {
	switch randInt(r, 1, 4) {
	case 1:
		return Up
	case 2:
		return Down
	case 3:
		return Left
	}
	return Right
}
