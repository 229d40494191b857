// Package tui puts the world on a terminal and reads the player's keys.
package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/zdash/zombiedash/internal/world"
)

const keyBuffer = 16

// Screen wraps a tcell screen. It is a world.KeySource: a background
// goroutine turns terminal events into keys and PollKey drains them
// without blocking.
type Screen struct {
	screen tcell.Screen
	keys   chan world.Key
	quit   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// New opens the real terminal.
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(sc)
}

// NewWithScreen initialises sc and starts reading events from it.
func NewWithScreen(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, err
	}
	sc.SetStyle(tcell.StyleDefault)
	sc.HideCursor()

	s := &Screen{
		screen: sc,
		keys:   make(chan world.Key, keyBuffer),
		quit:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.poll()
	return s, nil
}

func (s *Screen) poll() {
	defer s.wg.Done()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				s.requestQuit()
				continue
			}
			if k, ok := keyFor(ev); ok {
				select {
				case s.keys <- k:
				default: // drop when the game is not keeping up
				}
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func keyFor(ev *tcell.EventKey) (world.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return world.KeyLeft, true
	case tcell.KeyRight:
		return world.KeyRight, true
	case tcell.KeyUp:
		return world.KeyUp, true
	case tcell.KeyDown:
		return world.KeyDown, true
	case tcell.KeyTab:
		return world.KeyLandmine, true
	case tcell.KeyEnter:
		return world.KeyVaccine, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return world.KeyFlame, true
		case 'a', 'A', '4':
			return world.KeyLeft, true
		case 'd', 'D', '6':
			return world.KeyRight, true
		case 'w', 'W', '8':
			return world.KeyUp, true
		case 's', 'S', '2':
			return world.KeyDown, true
		}
	}
	return world.KeyNone, false
}

func (s *Screen) requestQuit() {
	s.once.Do(func() { close(s.quit) })
}

// PollKey returns the oldest unread key, if any.
func (s *Screen) PollKey() (world.Key, bool) {
	select {
	case k := <-s.keys:
		return k, true
	default:
		return world.KeyNone, false
	}
}

// Quit is closed once the player asks to leave.
func (s *Screen) Quit() <-chan struct{} { return s.quit }

// Close restores the terminal and waits for the event reader to stop.
func (s *Screen) Close() {
	s.requestQuit()
	s.screen.Fini()
	s.wg.Wait()
}
