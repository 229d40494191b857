package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput     Phase = iota // 0: sample input
	PhasePreUpdate              // 1: deliver last tick's events
	PhaseUpdate                 // 2: advance the simulation one tick
	PhaseOutput                 // 3: draw the frame
	PhaseCleanup                // 4: end-of-frame housekeeping
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhaseOutput:
		return "output"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
