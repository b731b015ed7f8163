package automaton

import (
	"errors"
	"testing"
)

func newHistory(t *testing.T, capacity int) (*History, *Simulator, *Grid) {
	t.Helper()
	sim, g := newSim(t, Flat2D, Extents2D(8, 8), Conway())
	StampGlider(g, At(1, 1), HeadingSE)
	h, err := NewHistory(capacity, sim, g)
	if err != nil {
		t.Fatalf("NewHistory() failed: %v", err)
	}
	return h, sim, g
}

func checkInvariant(t *testing.T, h *History) {
	t.Helper()
	if h.Len() < 1 || h.Len() > h.Capacity() {
		t.Fatalf("len %d outside [1, %d]", h.Len(), h.Capacity())
	}
	if h.Index() < 0 || h.Index() >= h.Len() {
		t.Fatalf("index %d outside [0, %d)", h.Index(), h.Len())
	}
}

func TestNewHistoryCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		_, err := NewHistory(capacity, nil, nil)
		var ce *CapacityError
		if !errors.As(err, &ce) || !errors.Is(err, ErrCapacity) {
			t.Errorf("capacity %d: expected CapacityError, got %v", capacity, err)
		}
	}

	h, _, g := newHistory(t, 1)
	if h.Len() != 1 || h.Index() != 0 || h.Current().Grid != g {
		t.Error("new history should hold only the initial grid")
	}
}

func TestHistoryBackAtStartIsNoop(t *testing.T) {
	h, _, g := newHistory(t, 10)

	f := h.Back()
	if f.Grid != g || f.Generation != 0 || h.Index() != 0 {
		t.Error("Back at the oldest frame should return it unchanged")
	}
}

func TestHistoryNextExtendsTimeline(t *testing.T) {
	h, sim, g := newHistory(t, 10)

	f, err := h.Next()
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	want, _ := sim.Step(g)
	if !f.Grid.Equal(want) || f.Generation != 1 {
		t.Errorf("expected generation 1 computed from the initial grid")
	}
	if h.Len() != 2 || h.Index() != 1 {
		t.Errorf("expected len 2 index 1, got len %d index %d", h.Len(), h.Index())
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	h, _, _ := newHistory(t, 10)
	for range 5 {
		if _, err := h.Next(); err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
	}
	h.Back()
	h.Back()

	before := h.Current()
	h.Back()
	after, err := h.Next()
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if after.Grid != before.Grid || after.Generation != before.Generation {
		t.Error("Back then Next should return the same stored frame")
	}
	if h.Len() != 6 {
		t.Errorf("navigation should not grow the history, len %d", h.Len())
	}
}

func TestHistoryBranchTruncation(t *testing.T) {
	h, sim, g := newHistory(t, 10)

	stepA, _ := sim.Step(g)
	h.Record(stepA, 1)
	h.Back()

	stepB := g.Clone()
	stepB.Set(At(6, 6), true)
	stepB.Set(At(6, 7), true)
	stepB.Set(At(7, 6), true)
	h.Record(stepB, 0)

	if h.Len() != 2 || h.Index() != 1 {
		t.Fatalf("expected len 2 index 1 after branching, got len %d index %d", h.Len(), h.Index())
	}

	f, err := h.Next()
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	want, _ := sim.Step(stepB)
	if !f.Grid.Equal(want) {
		t.Error("Next after branching should step the new branch")
	}
	if f.Grid.Equal(stepA) {
		t.Error("discarded branch was resurrected")
	}
}

func TestHistoryEviction(t *testing.T) {
	const capacity = 10
	h, _, g := newHistory(t, capacity)

	for gen := 1; gen <= capacity+5; gen++ {
		h.Record(g.Clone(), gen)
		checkInvariant(t, h)
	}

	if h.Len() != capacity {
		t.Fatalf("expected len %d, got %d", capacity, h.Len())
	}
	if h.Index() != capacity-1 || h.Current().Generation != capacity+5 {
		t.Errorf("index should point at the latest frame, got index %d gen %d",
			h.Index(), h.Current().Generation)
	}

	for range capacity + 3 {
		h.Back()
	}
	if got := h.Current().Generation; got != 6 {
		t.Errorf("oldest remaining frame: expected generation 6, got %d", got)
	}
}

func TestHistoryInvariantUnderRandomOps(t *testing.T) {
	h, _, g := newHistory(t, 7)
	rng := NewRNG(42)

	for i := range 500 {
		switch rng.IntN(4) {
		case 0:
			h.Record(g.Clone(), h.Current().Generation+1)
		case 1:
			h.Back()
		case 2:
			if _, err := h.Next(); err != nil {
				t.Fatalf("op %d: Next() failed: %v", i, err)
			}
		case 3:
			if rng.IntN(20) == 0 {
				h.Reset(g)
			} else {
				h.Back()
			}
		}
		checkInvariant(t, h)
	}
}

func TestHistoryReset(t *testing.T) {
	h, _, g := newHistory(t, 5)
	for range 3 {
		h.Next()
	}

	seed := g.Clone()
	seed.Clear()
	h.Reset(seed)
	if h.Len() != 1 || h.Index() != 0 || h.Current().Grid != seed || h.Current().Generation != 0 {
		t.Error("Reset should leave exactly the seed grid at generation 0")
	}
}

type failingStepper struct{}

func (failingStepper) Step(*Grid) (*Grid, error) { return nil, ErrShapeMismatch }

func TestHistoryNextPropagatesStepError(t *testing.T) {
	h, _, g := newHistory(t, 5)
	h.SetStepper(failingStepper{})

	f, err := h.Next()
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected step error, got %v", err)
	}
	if f.Grid != g || h.Len() != 1 {
		t.Error("failed Next should leave the history untouched")
	}
}
