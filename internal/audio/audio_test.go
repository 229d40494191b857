package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/zdash/zombiedash/internal/config"
	"github.com/zdash/zombiedash/internal/world"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1 {
		t.Errorf("Expected samples within [-1,1], got peak %f", peak)
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("Square wave sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

func TestEveryCueIsFinite(t *testing.T) {
	rate := beep.SampleRate(22050)
	for s := world.SoundPlayerFire; s <= world.SoundTheme; s++ {
		st := Cue(s, rate, 1)
		if st == nil {
			t.Errorf("Expected a recipe for %s", s)
			continue
		}
		n, peak := drain(st)
		if n == 0 || n > rate.N(2*time.Second) {
			t.Errorf("%s: expected a short cue, got %d samples", s, n)
		}
		if peak > 1 {
			t.Errorf("%s: expected samples within [-1,1], got peak %f", s, peak)
		}
	}
}

func TestCueUnknown(t *testing.T) {
	if Cue(world.Sound(999), beep.SampleRate(44100), 1) != nil {
		t.Error("Expected nil for an unknown cue")
	}
}

func TestMutedCueIsSilent(t *testing.T) {
	_, peak := drain(Cue(world.SoundGotGoodie, beep.SampleRate(22050), 0))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestPlayBeforeInitializeIsDropped(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{SampleRate: 44100, Volume: 0.5}, zap.NewNop())
	sm.Play(world.SoundZombieBorn)
	sm.Close()
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected an empty mixer, got %d streamers", sm.mixer.Len())
	}
}
