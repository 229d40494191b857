package world

import (
	"sort"

	"github.com/zdash/zombiedash/internal/core/ecs"
)

// Sprite is a read-only snapshot of one visible entity.
type Sprite struct {
	Kind   Kind
	X, Y   int
	Facing Direction
	Depth  int
	Size   float64
	Frame  int // bumped on every move; renderers may animate off it
}

// Sprites returns every live entity back to front: higher depth first,
// insertion order within a depth.
func (w *World) Sprites() []Sprite {
	out := make([]Sprite, 0, w.actors.Len()+1)
	w.actors.Each(func(_ ecs.EntityID, a Actor) {
		if a.Alive() {
			out = append(out, a.core().sprite())
		}
	})
	if w.player != nil && w.player.alive {
		out = append(out, w.player.sprite())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}
