// Package game drives a run: it steps the world, moves between levels and
// keeps the run's history.
package game

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/zdash/zombiedash/internal/core/event"
	"github.com/zdash/zombiedash/internal/world"
)

type Options struct {
	Player   string
	Seed     int64
	Recorder Recorder // optional
	Log      *zap.Logger
}

// Controller owns the level progression of one run.
type Controller struct {
	world  *world.World
	bus    *event.Bus
	rec    Recorder
	log    *zap.Logger
	player string
	seed   int64

	runID   ulid.ULID
	phase   Phase
	attempt int
	stats   Stats
	history []LevelReport
}

// NewController drives w. The bus must be the one w emits on; nil disables
// per-level stats.
func NewController(w *world.World, bus *event.Bus, opts Options) *Controller {
	c := &Controller{
		world:  w,
		bus:    bus,
		rec:    opts.Recorder,
		log:    opts.Log,
		player: opts.Player,
		seed:   opts.Seed,
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if bus != nil {
		c.stats.subscribe(bus)
	}
	return c
}

// Start opens a new run and loads the current level.
func (c *Controller) Start(ctx context.Context) Phase {
	c.runID = ulid.Make()
	c.log.Info("run started",
		zap.String("run", c.runID.String()),
		zap.String("player", c.player),
		zap.Int64("seed", c.seed),
	)
	if c.rec != nil {
		if err := c.rec.StartRun(ctx, c.runID.String(), c.player, c.seed); err != nil {
			c.log.Warn("record run start", zap.Error(err))
		}
	}
	c.attempt = 0
	c.load(ctx, c.world.Init())
	return c.phase
}

// Step runs one tick and handles whatever it ended in.
func (c *Controller) Step(ctx context.Context) Phase {
	if c.phase != PhaseRunning {
		return c.phase
	}
	switch s := c.world.Tick(); s {
	case world.StatusContinue:
	case world.StatusPlayerDied:
		c.endAttempt(ctx, LevelDied)
		if c.world.Progress().Lives <= 0 {
			c.world.TearDown()
			c.finish(ctx, PhaseGameOver)
			break
		}
		c.load(ctx, c.world.Init())
	case world.StatusFinishedLevel:
		c.endAttempt(ctx, LevelFinished)
		c.world.TearDown()
		c.world.AdvanceLevel()
		c.attempt = 0
		c.load(ctx, c.world.Init())
	default:
		c.log.Error("unexpected tick status", zap.Stringer("status", s))
		c.finish(ctx, PhaseFailed)
	}
	return c.phase
}

// Quit ends a run that is still going.
func (c *Controller) Quit(ctx context.Context) {
	if c.phase == PhaseRunning || c.phase == PhaseIdle {
		c.world.TearDown()
		c.finish(ctx, PhaseQuit)
	}
}

// load applies the result of a level Init.
func (c *Controller) load(ctx context.Context, s world.Status) {
	switch s {
	case world.StatusContinue:
		c.attempt++
		c.stats = Stats{}
		c.phase = PhaseRunning
	case world.StatusPlayerWon:
		c.finish(ctx, PhaseWon)
	default:
		c.finish(ctx, PhaseFailed)
	}
}

func (c *Controller) endAttempt(ctx context.Context, outcome string) {
	if c.bus != nil {
		// events from the final tick have not been dispatched yet
		c.log.Debug("flushing level events", zap.Int("pending", c.bus.Pending()))
		c.bus.Flush()
	}
	p := c.world.Progress()
	r := LevelReport{
		RunID:   c.runID.String(),
		Level:   p.Level,
		Attempt: c.attempt,
		Name:    c.world.LevelName(),
		Outcome: outcome,
		Score:   p.Score,
		Ticks:   c.world.Ticks(),
		Stats:   c.stats,
	}
	c.history = append(c.history, r)
	c.log.Info("level attempt over",
		zap.Int("level", r.Level),
		zap.Int("attempt", r.Attempt),
		zap.String("outcome", outcome),
		zap.Int("score", r.Score),
		zap.Int("saved", r.Stats.CitizensSaved),
		zap.Int("lost", r.Stats.CitizensLost),
	)
	if c.rec != nil {
		if err := c.rec.RecordLevel(ctx, r); err != nil {
			c.log.Warn("record level", zap.Error(err))
		}
	}
}

func (c *Controller) finish(ctx context.Context, phase Phase) {
	c.phase = phase
	p := c.world.Progress()
	c.log.Info("run over",
		zap.String("run", c.runID.String()),
		zap.Stringer("outcome", phase),
		zap.Int("score", p.Score),
		zap.Int("level", p.Level),
	)
	if c.rec != nil {
		if err := c.rec.FinishRun(ctx, c.runID.String(), phase.String(), p.Score, p.Level); err != nil {
			c.log.Warn("record run finish", zap.Error(err))
		}
	}
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) RunID() string { return c.runID.String() }

// Stats is the running tally for the current attempt, as of the last
// bus dispatch.
func (c *Controller) Stats() Stats { return c.stats }

// History lists every attempt played so far.
func (c *Controller) History() []LevelReport { return c.history }

func (c *Controller) World() *world.World { return c.world }
