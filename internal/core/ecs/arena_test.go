package ecs

import "testing"

func TestEntityPoolGenerations(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	if a.IsZero() {
		t.Fatal("Expected first handle to be non-zero")
	}
	if !p.Alive(a) {
		t.Fatal("Expected new handle to be alive")
	}

	p.Destroy(a)
	if p.Alive(a) {
		t.Error("Expected destroyed handle to be stale")
	}

	b := p.Create()
	if b.Index() != a.Index() {
		t.Errorf("Expected slot %d to be recycled, got %d", a.Index(), b.Index())
	}
	if b.Generation() == a.Generation() {
		t.Error("Expected recycled slot to carry a new generation")
	}
	if p.Alive(a) {
		t.Error("Expected old handle to stay stale after recycling")
	}
	if p.Live() != 1 {
		t.Errorf("Expected 1 live handle, got %d", p.Live())
	}
}

func TestArenaAppendDuringWalk(t *testing.T) {
	a := NewArena[int]()
	a.Add(1)
	a.Add(2)

	visited := 0
	n := a.Len()
	for i := 0; i < n; i++ {
		visited++
		a.Add(a.At(i) * 10)
	}
	if visited != 2 {
		t.Errorf("Expected walk to visit 2 values, got %d", visited)
	}
	if a.Len() != 4 {
		t.Errorf("Expected 4 values after walk, got %d", a.Len())
	}
	if a.At(2) != 10 || a.At(3) != 20 {
		t.Errorf("Expected appended values [10 20], got [%d %d]", a.At(2), a.At(3))
	}
}

func TestArenaSweepKeepsOrder(t *testing.T) {
	a := NewArena[int]()
	ids := make([]EntityID, 0, 6)
	for i := 0; i < 6; i++ {
		ids = append(ids, a.Add(i))
	}

	removed := a.Sweep(func(v int) bool { return v%2 == 0 })
	if removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
	want := []int{0, 2, 4}
	for i, w := range want {
		if a.At(i) != w {
			t.Errorf("Expected value %d at %d, got %d", w, i, a.At(i))
		}
	}
	seen := make(map[EntityID]int)
	a.Each(func(id EntityID, v int) { seen[id] = v })
	if _, ok := seen[ids[1]]; ok {
		t.Error("Expected swept handle to be gone")
	}
	if v, ok := seen[ids[4]]; !ok || v != 4 {
		t.Errorf("Expected survivor 4 to keep its handle, got %d %v", v, ok)
	}
}

func TestArenaClear(t *testing.T) {
	a := NewArena[string]()
	id := a.Add("wall")
	a.Clear()
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Expected empty arena, got %d", a.Len())
	}
	if next := a.Add("pit"); next == id {
		t.Error("Expected a fresh handle after Clear")
	}
}
