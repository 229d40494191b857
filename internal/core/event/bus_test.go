package event

import "testing"

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	saved := 0
	Subscribe(b, func(CitizenSaved) { saved++ })

	Emit(b, CitizenSaved{})
	b.DispatchAll()
	if saved != 0 {
		t.Fatalf("Expected no delivery before swap, got %d", saved)
	}

	b.SwapBuffers()
	b.DispatchAll()
	if saved != 1 {
		t.Errorf("Expected 1 delivery after swap, got %d", saved)
	}

	b.SwapBuffers()
	b.DispatchAll()
	if saved != 1 {
		t.Errorf("Expected events to be delivered once, got %d", saved)
	}
}

func TestBusTypedPayload(t *testing.T) {
	b := NewBus()
	var smart []bool
	Subscribe(b, func(ev ZombieKilled) { smart = append(smart, ev.Smart) })

	Emit(b, ZombieKilled{Smart: true})
	Emit(b, ZombieKilled{Smart: false})
	Emit(b, CitizenSaved{})
	if b.Pending() != 3 {
		t.Errorf("Expected 3 pending events, got %d", b.Pending())
	}
	b.Flush()

	if len(smart) != 2 || !smart[0] || smart[1] {
		t.Errorf("Expected [true false], got %v", smart)
	}
}

func TestEmitOnNilBus(t *testing.T) {
	var b *Bus
	Emit(b, PlayerDied{Level: 1})
}
