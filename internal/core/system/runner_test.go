package system

import (
	"testing"
	"time"
)

type recordingSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s *recordingSystem) Phase() Phase { return s.phase }

func (s *recordingSystem) Update(time.Duration) { *s.log = append(*s.log, s.name) }

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordingSystem{name: "draw", phase: PhaseOutput, log: &log})
	r.Register(&recordingSystem{name: "sim", phase: PhaseUpdate, log: &log})
	r.Register(&recordingSystem{name: "events", phase: PhasePreUpdate, log: &log})
	r.Register(&recordingSystem{name: "sim2", phase: PhaseUpdate, log: &log})

	r.Tick(50 * time.Millisecond)

	want := []string{"events", "sim", "sim2", "draw"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordingSystem{name: "sim", phase: PhaseUpdate, log: &log})
	r.Register(&recordingSystem{name: "draw", phase: PhaseOutput, log: &log})

	r.TickPhase(PhaseOutput, 0)
	if len(log) != 1 || log[0] != "draw" {
		t.Errorf("Expected only draw to run, got %v", log)
	}
}
