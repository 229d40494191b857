// Package world is the tick-driven simulation: it loads a level into live
// entities, advances them one tick at a time, answers their spatial queries
// and retires the dead.
package world

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/zdash/zombiedash/internal/core/ecs"
	"github.com/zdash/zombiedash/internal/core/event"
	"github.com/zdash/zombiedash/internal/data"
)

// Deps bundles what a World needs from the outside. Only Levels and
// Progress are required.
type Deps struct {
	Levels   data.LevelSource
	Progress *Progress
	Scores   ScoreTable
	Rand     Rand
	Input    KeySource
	Sound    SoundPlayer
	Bus      *event.Bus // optional
	Log      *zap.Logger
}

// World owns every entity of the current level. It is driven from a
// single goroutine and is not safe for concurrent use.
type World struct {
	levels   data.LevelSource
	progress *Progress
	scores   ScoreTable
	rng      Rand
	input    KeySource
	sound    SoundPlayer
	bus      *event.Bus
	log      *zap.Logger

	player     *Protagonist
	actors     *ecs.Arena[Actor]
	citizens   int
	ticks      int
	levelName  string
	statusLine string
}

// New builds an empty world. Call Init to load the current level.
func New(d Deps) *World {
	w := &World{
		levels:   d.Levels,
		progress: d.Progress,
		scores:   d.Scores,
		rng:      d.Rand,
		input:    d.Input,
		sound:    d.Sound,
		bus:      d.Bus,
		log:      d.Log,
		actors:   ecs.NewArena[Actor](),
	}
	if w.progress == nil {
		w.progress = &Progress{Level: 1, Lives: 3}
	}
	if w.scores == (ScoreTable{}) {
		w.scores = DefaultScoreTable()
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if w.input == nil {
		w.input = NoInput{}
	}
	if w.sound == nil {
		w.sound = NopSound{}
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	return w
}

// Init loads the level named by Progress.Level. Running out of levels is a
// win; any other load failure is a level error and leaves the world empty.
func (w *World) Init() Status {
	w.TearDown()

	lvl, err := w.levels.Load(w.progress.Level)
	if errors.Is(err, data.ErrNoMoreLevels) {
		w.log.Info("no more levels", zap.Int("level", w.progress.Level))
		return StatusPlayerWon
	}
	if err != nil {
		w.log.Error("level load failed", zap.Int("level", w.progress.Level), zap.Error(err))
		return StatusLevelError
	}

	w.populate(lvl)
	w.levelName = lvl.Name
	w.refreshStatusLine()
	w.log.Info("level loaded",
		zap.Int("level", w.progress.Level),
		zap.String("name", lvl.Name),
		zap.Int("entities", w.actors.Len()),
		zap.Int("citizens", w.citizens),
	)
	return StatusContinue
}

func (w *World) populate(lvl *data.Level) {
	for x := 0; x < data.LevelWidth; x++ {
		for y := 0; y < data.LevelHeight; y++ {
			cell := lvl.At(x, y)
			px, py := x*TileSize, y*TileSize
			switch cell {
			case data.CellEmpty:
				continue
			case data.CellPlayer:
				w.player = newProtagonist(w, px, py)
			case data.CellWall:
				w.actors.Add(newWall(w, px, py))
			case data.CellExit:
				w.actors.Add(newExit(w, px, py))
			case data.CellPit:
				w.actors.Add(newPit(w, px, py))
			case data.CellVaccineGoodie:
				w.actors.Add(newGoodie(w, KindVaccineGoodie, px, py))
			case data.CellGasCanGoodie:
				w.actors.Add(newGoodie(w, KindGasCanGoodie, px, py))
			case data.CellLandmineGoodie:
				w.actors.Add(newGoodie(w, KindLandmineGoodie, px, py))
			case data.CellCitizen:
				w.actors.Add(newCitizen(w, px, py))
				w.citizens++
			case data.CellDumbZombie:
				w.actors.Add(newDumbZombie(w, px, py))
			case data.CellSmartZombie:
				w.actors.Add(newSmartZombie(w, px, py))
			}
			w.log.Debug("placed", zap.Int("x", x), zap.Int("y", y), zap.Stringer("cell", cell))
		}
	}
}

// Tick advances the level by one step. The protagonist acts first, then
// every entity that was alive when the tick began, in insertion order.
// Entities spawned during the tick first act on the next one.
func (w *World) Tick() Status {
	if w.player == nil {
		return StatusLevelError
	}
	w.ticks++
	n := w.actors.Len()

	w.player.Act()
	if s, done := w.checkPlayer(); done {
		return s
	}
	for i := 0; i < n; i++ {
		a := w.actors.At(i)
		if !a.Alive() {
			continue
		}
		a.Act()
		if s, done := w.checkPlayer(); done {
			return s
		}
	}

	w.actors.Sweep(func(a Actor) bool { return a.Alive() })
	w.refreshStatusLine()
	return StatusContinue
}

// checkPlayer ends the tick early if the protagonist died or got out.
func (w *World) checkPlayer() (Status, bool) {
	switch {
	case !w.player.alive:
		w.progress.Lives--
		event.Emit(w.bus, event.PlayerDied{Level: w.progress.Level})
		w.log.Info("player died", zap.Int("level", w.progress.Level), zap.Int("lives", w.progress.Lives))
		return StatusPlayerDied, true
	case w.player.exited:
		w.play(SoundLevelFinished)
		event.Emit(w.bus, event.LevelFinished{Level: w.progress.Level})
		w.log.Info("level finished", zap.Int("level", w.progress.Level), zap.Int("ticks", w.ticks))
		return StatusFinishedLevel, true
	}
	return StatusContinue, false
}

// TearDown discards every entity. Safe to call more than once.
func (w *World) TearDown() {
	w.actors.Clear()
	w.player = nil
	w.citizens = 0
	w.ticks = 0
	w.levelName = ""
}

// AdvanceLevel moves the run on to the next level. Init loads it.
func (w *World) AdvanceLevel() { w.progress.Level++ }

// Spawn adds an entity to the live collection. It first acts on the tick
// after the one it was spawned in.
func (w *World) Spawn(a Actor) { w.actors.Add(a) }

func (w *World) play(s Sound) { w.sound.Play(s) }

func (w *World) addScore(delta int) { w.progress.Score += delta }

func (w *World) recordCitizenGone() { w.citizens-- }

// Player returns the protagonist, or nil between levels.
func (w *World) Player() *Protagonist { return w.player }

// CitizensLeft is the number of citizens still alive and inside.
func (w *World) CitizensLeft() int { return w.citizens }

func (w *World) Progress() *Progress { return w.progress }

// Ticks is the number of ticks run since the level was loaded.
func (w *World) Ticks() int { return w.ticks }

func (w *World) LevelName() string { return w.levelName }

// StatusLine is the summary text produced at the end of the last full tick.
func (w *World) StatusLine() string { return w.statusLine }

// Population counts live entities of kind k, the protagonist included.
func (w *World) Population(k Kind) int {
	n := 0
	if w.player != nil && w.player.alive && k == KindPlayer {
		n++
	}
	w.actors.Each(func(_ ecs.EntityID, a Actor) {
		if a.Alive() && a.Kind() == k {
			n++
		}
	})
	return n
}
