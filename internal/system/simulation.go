package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	coresys "github.com/zdash/zombiedash/internal/core/system"
	"github.com/zdash/zombiedash/internal/game"
)

// SimulationSystem advances the run by one world tick per frame until the
// run is over. Phase 2 (Update).
type SimulationSystem struct {
	ctx   context.Context
	ctrl  *game.Controller
	log   *zap.Logger
	last  game.Phase
	steps int
}

func NewSimulationSystem(ctx context.Context, ctrl *game.Controller, log *zap.Logger) *SimulationSystem {
	return &SimulationSystem{ctx: ctx, ctrl: ctrl, log: log, last: ctrl.Phase()}
}

func (s *SimulationSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *SimulationSystem) Update(_ time.Duration) {
	if s.ctrl.Phase().Over() {
		return
	}
	p := s.ctrl.Step(s.ctx)
	s.steps++
	if p != s.last {
		s.log.Debug("phase changed", zap.Stringer("from", s.last), zap.Stringer("to", p), zap.Int("step", s.steps))
		s.last = p
	}
}

// Steps is the number of ticks driven so far.
func (s *SimulationSystem) Steps() int { return s.steps }
