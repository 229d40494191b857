package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zdash/zombiedash/internal/audio"
	"github.com/zdash/zombiedash/internal/config"
	"github.com/zdash/zombiedash/internal/core/event"
	coresys "github.com/zdash/zombiedash/internal/core/system"
	"github.com/zdash/zombiedash/internal/data"
	"github.com/zdash/zombiedash/internal/game"
	"github.com/zdash/zombiedash/internal/persist"
	"github.com/zdash/zombiedash/internal/scripting"
	"github.com/zdash/zombiedash/internal/system"
	"github.com/zdash/zombiedash/internal/tui"
	"github.com/zdash/zombiedash/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println()
	fmt.Println("\033[32;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[32;1m  │\033[0m              zombiedash  v0.1.0            \033[32;1m│\033[0m")
	fmt.Println("\033[32;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	s := fmt.Sprint(value)
	dotsLen := 42 - len(label) - len(s)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), s)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  \033[33m!\033[0m %s\n", msg)
}

func run() error {
	cfgPath := "config/game.toml"
	if p := os.Getenv("ZOMBIEDASH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	printBanner()
	printSection("Levels")

	levels, err := data.NewFileSource(cfg.Game.Manifest, cfg.Game.LevelDir)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	if m := levels.Manifest(); m != nil {
		printStat("Levels in manifest", m.Count())
	} else {
		printWarn("no manifest, using " + cfg.Game.LevelDir + "/levelNN.txt")
	}

	printSection("Rules")

	luaEngine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	scores := luaEngine.ScoreTable(world.DefaultScoreTable())
	printStat("Citizen saved", scores.CitizenSaved)
	printStat("Smart zombie killed", scores.SmartZombieKilled)
	printOK("Lua rules loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		db  *persist.DB
		rec game.Recorder
	)
	if cfg.Database.Enabled {
		printSection("Database")
		db, err = persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		rec = persist.NewRecorder(db)
		printOK("PostgreSQL connected, migrations applied")
	}

	var sound world.SoundPlayer = world.NopSound{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio, log)
		if err := sm.Initialize(); err != nil {
			// the game runs fine without sound
			log.Warn("audio unavailable", zap.Error(err))
			printWarn("audio unavailable, continuing silently")
		} else {
			defer sm.Close()
			sound = sm
		}
	}

	screen, err := tui.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	bus := event.NewBus()
	w := world.New(world.Deps{
		Levels:   levels,
		Progress: &world.Progress{Level: 1, Lives: cfg.Game.StartLives},
		Scores:   scores,
		Rand:     rand.New(rand.NewSource(seed)),
		Input:    screen,
		Sound:    sound,
		Bus:      bus,
		Log:      log,
	})
	ctrl := game.NewController(w, bus, game.Options{
		Player:   cfg.Game.PlayerName,
		Seed:     seed,
		Recorder: rec,
		Log:      log,
	})

	sound.Play(world.SoundTheme)
	ctrl.Start(ctx)

	runner := coresys.NewRunner()
	runner.Register(system.NewDispatchSystem(bus))
	runner.Register(system.NewSimulationSystem(ctx, ctrl, log))
	runner.Register(system.NewRenderSystem(ctrl, screen))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			if ctrl.Phase().Over() {
				// keep the end banner on screen until the player quits
				runner.TickPhase(coresys.PhaseOutput, cfg.Game.TickRate)
				continue
			}
			runner.Tick(cfg.Game.TickRate)
		case <-screen.Quit():
			break loop
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			break loop
		}
	}

	ctrl.Quit(ctx)
	screen.Close()
	printSummary(ctx, ctrl, db)
	return nil
}

func printSummary(ctx context.Context, ctrl *game.Controller, db *persist.DB) {
	p := ctrl.World().Progress()
	printSection("Run over")
	printStat("Outcome", ctrl.Phase())
	printStat("Score", p.Score)
	printStat("Level reached", p.Level)
	for _, r := range ctrl.History() {
		printStat(fmt.Sprintf("Level %d try %d", r.Level, r.Attempt), r.Outcome)
	}
	if db == nil {
		return
	}
	top, err := persist.NewRunRepo(db).Top(ctx, 5)
	if err != nil {
		printWarn("could not load the leaderboard: " + err.Error())
		return
	}
	printSection("Best runs")
	for i, r := range top {
		printStat(fmt.Sprintf("%d. %s", i+1, r.Player), r.Score)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the terminal belongs to the game, so logs go to a file
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
