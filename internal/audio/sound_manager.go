package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/zdash/zombiedash/internal/config"
	"github.com/zdash/zombiedash/internal/world"
)

// SoundManager plays world cues through the system speaker. Cues that
// arrive before Initialize or after Close are dropped.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	log         *zap.Logger
}

func NewSoundManager(cfg config.AudioConfig, log *zap.Logger) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues s on the mixer. It never blocks on playback.
func (sm *SoundManager) Play(s world.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := Cue(s, sm.rate, sm.volume)
	if st == nil {
		sm.log.Debug("unknown sound cue", zap.Stringer("cue", s))
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
