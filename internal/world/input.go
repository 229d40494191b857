package world

// Key is a player command sampled once per tick.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFlame    // space
	KeyLandmine // tab
	KeyVaccine  // enter
)

// KeySource is polled by the protagonist once per tick. PollKey never
// blocks; ok is false when no key is waiting, which is the common case.
type KeySource interface {
	PollKey() (key Key, ok bool)
}

// NoInput is a KeySource that never has a key.
type NoInput struct{}

func (NoInput) PollKey() (Key, bool) { return KeyNone, false }

// KeyQueue is a FIFO KeySource fed by the driver (or by tests).
type KeyQueue struct {
	keys []Key
}

func (q *KeyQueue) Push(keys ...Key) { q.keys = append(q.keys, keys...) }

func (q *KeyQueue) Len() int { return len(q.keys) }

func (q *KeyQueue) PollKey() (Key, bool) {
	if len(q.keys) == 0 {
		return KeyNone, false
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true
}
