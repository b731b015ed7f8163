package session

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

func TestFromSnapshot(t *testing.T) {
	src := newLife(t, 0)
	src.Clear()
	if _, err := src.Run(3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data := src.Snapshot()

	s, err := FromSnapshot(data, "B36/S23", Options{})
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if s.Kind() != automaton.Flat2D || s.Dimensions() != automaton.Extents2D(12, 12) {
		t.Errorf("shape = %s %s", s.Kind(), s.Dimensions())
	}
	if s.CurrentGeneration() != 3 {
		t.Errorf("generation = %d, expected 3", s.CurrentGeneration())
	}
	if !s.Current().Grid.Equal(src.Current().Grid) {
		t.Error("restored grid differs from the source")
	}
	if got := s.Rules().String(); got != "B36/S23" {
		t.Errorf("rule = %q, expected B36/S23", got)
	}
	if s.HistoryLen() != 1 {
		t.Errorf("history should hold only the restored frame, has %d", s.HistoryLen())
	}
}

func TestFromSnapshotDefaultsRules(t *testing.T) {
	g, _ := automaton.NewGrid(automaton.Flat3D, automaton.Extents3D(4, 4, 4))
	data := automaton.EncodeSnapshot(automaton.Frame{Grid: g, Generation: 9})

	// Conway rules cannot drive a 26-neighbor world, so the 3D default applies.
	s, err := FromSnapshot(data, "", Options{Rules: automaton.Conway()})
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if s.Rules().MaxNeighbors() != 26 {
		t.Errorf("rules max neighbors = %d, expected 26", s.Rules().MaxNeighbors())
	}
}

func TestFromSnapshotErrors(t *testing.T) {
	if _, err := FromSnapshot([]byte("nope"), "", Options{}); !errors.Is(err, automaton.ErrSnapshotFormat) {
		t.Errorf("expected ErrSnapshotFormat, got %v", err)
	}

	data := newLife(t, 0).Snapshot()
	if _, err := FromSnapshot(data, "B9/S23", Options{}); !errors.Is(err, automaton.ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
}
