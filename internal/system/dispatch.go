package system

import (
	"time"

	"github.com/zdash/zombiedash/internal/core/event"
	coresys "github.com/zdash/zombiedash/internal/core/system"
)

// DispatchSystem delivers the previous tick's events to subscribers.
// Phase 1 (PreUpdate).
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *DispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
