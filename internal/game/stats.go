package game

import "github.com/zdash/zombiedash/internal/core/event"

// Stats tallies one level attempt from the world's events.
type Stats struct {
	CitizensSaved  int
	CitizensLost   int
	Conversions    int
	ZombiesBorn    int
	ZombiesKilled  int
	GoodiesPicked  int
	MinesDetonated int
	FlamesThrown   int
}

// subscribe wires the tallies to the bus. The counters only move when the
// bus is dispatched.
func (s *Stats) subscribe(b *event.Bus) {
	event.Subscribe(b, func(event.CitizenSaved) { s.CitizensSaved++ })
	event.Subscribe(b, func(e event.CitizenLost) {
		s.CitizensLost++
		if e.Converted {
			s.Conversions++
		}
	})
	event.Subscribe(b, func(event.ZombieBorn) { s.ZombiesBorn++ })
	event.Subscribe(b, func(event.ZombieKilled) { s.ZombiesKilled++ })
	event.Subscribe(b, func(event.GoodiePicked) { s.GoodiesPicked++ })
	event.Subscribe(b, func(event.LandmineDetonated) { s.MinesDetonated++ })
	event.Subscribe(b, func(e event.FlameThrown) { s.FlamesThrown += e.Flames })
}
