package system

import (
	"fmt"
	"time"

	coresys "github.com/zdash/zombiedash/internal/core/system"
	"github.com/zdash/zombiedash/internal/game"
	"github.com/zdash/zombiedash/internal/tui"
)

// Drawer is anything that can show a frame; *tui.Screen in production.
type Drawer interface {
	Draw(tui.Frame)
}

// RenderSystem draws the current world state. Phase 3 (Output).
type RenderSystem struct {
	ctrl   *game.Controller
	drawer Drawer
}

func NewRenderSystem(ctrl *game.Controller, drawer Drawer) *RenderSystem {
	return &RenderSystem{ctrl: ctrl, drawer: drawer}
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *RenderSystem) Update(_ time.Duration) {
	w := s.ctrl.World()
	status := w.StatusLine()
	if status == "" {
		p := w.Progress()
		status = fmt.Sprintf("Score: %d  Level: %d  Lives: %d", p.Score, p.Level, p.Lives)
	}
	s.drawer.Draw(tui.Frame{
		Sprites: w.Sprites(),
		Status:  status,
		Banner:  banner(s.ctrl.Phase(), w.LevelName()),
	})
}

func banner(p game.Phase, level string) string {
	switch p {
	case game.PhaseRunning:
		if level == "" {
			return ""
		}
		return " " + level + " "
	case game.PhaseGameOver:
		return " GAME OVER  (q to quit) "
	case game.PhaseWon:
		return " ALL LEVELS CLEARED  (q to quit) "
	case game.PhaseFailed:
		return " LEVEL FAILED TO LOAD  (q to quit) "
	}
	return ""
}
