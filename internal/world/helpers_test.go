package world

import (
	"math/rand"
	"strings"

	"github.com/zdash/zombiedash/internal/core/event"
	"github.com/zdash/zombiedash/internal/data"
)

// levelStub serves levels from in-memory grids keyed by level number.
type levelStub map[int][]string

func (s levelStub) Load(level int) (*data.Level, error) {
	rows, ok := s[level]
	if !ok {
		return nil, data.ErrNoMoreLevels
	}
	return data.Decode(strings.NewReader(strings.Join(rows, "\n") + "\n"))
}

// soundLog records every cue played.
type soundLog struct {
	played []Sound
}

func (l *soundLog) Play(s Sound) { l.played = append(l.played, s) }

func (l *soundLog) count(s Sound) int {
	n := 0
	for _, p := range l.played {
		if p == s {
			n++
		}
	}
	return n
}

// seqRand replays a fixed sequence of Intn results, then repeats the last.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v % n
}

type testWorld struct {
	*World
	keys   *KeyQueue
	sounds *soundLog
	bus    *event.Bus
}

// newTestWorld builds an empty world with a protagonist at (px, py).
func newTestWorld(px, py int) *testWorld {
	tw := &testWorld{keys: &KeyQueue{}, sounds: &soundLog{}, bus: event.NewBus()}
	tw.World = New(Deps{
		Levels:   levelStub{},
		Progress: &Progress{Level: 1, Lives: 3},
		Rand:     rand.New(rand.NewSource(1)),
		Input:    tw.keys,
		Sound:    tw.sounds,
		Bus:      tw.bus,
	})
	tw.player = newProtagonist(tw.World, px, py)
	return tw
}

func (tw *testWorld) addCitizen(x, y int) *Citizen {
	c := newCitizen(tw.World, x, y)
	tw.Spawn(c)
	tw.citizens++
	return c
}

// countEvents runs emit, drains the bus and returns how many events of type T were emitted.
func countEvents[T any](b *event.Bus, emit func()) int {
	n := 0
	event.Subscribe(b, func(T) { n++ })
	emit()
	b.Flush()
	return n
}

var openRows = []string{
	"################",
	"#@            X#",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"################",
}
