package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/session"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestWorld(t *testing.T, kind automaton.Kind, ext automaton.Extents, opts WorldOptions) WorldModel {
	t.Helper()
	rules := automaton.Conway()
	if kind == automaton.Flat3D {
		rules = automaton.MustRuleSet([]int{4, 5, 6}, []int{5}, 26)
	}
	sess, err := session.New(session.Options{Kind: kind, Extents: ext, Rules: rules}, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	sess.StampGlider(automaton.Coord{}, automaton.HeadingSE)
	if opts.VariantID == "" {
		opts.VariantID = "test"
	}
	return NewWorldModel(sess, opts)
}

func update(t *testing.T, m WorldModel, msg tea.Msg) (WorldModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(WorldModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return wm, cmd
}

func TestWorldNavigation(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(10, 10), WorldOptions{})
	s := m.Session()

	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := s.CurrentGeneration(); got != 2 {
		t.Fatalf("after two next, generation = %d, expected 2", got)
	}

	m, _ = update(t, m, runes("b"))
	if got := s.CurrentGeneration(); got != 1 {
		t.Errorf("after back, generation = %d, expected 1", got)
	}

	// Step from the middle branches off and drops the future.
	m, _ = update(t, m, runes("s"))
	if s.HistoryLen() != 3 || s.CurrentGeneration() != 2 {
		t.Errorf("after branch: len %d gen %d, expected 3 and 2", s.HistoryLen(), s.CurrentGeneration())
	}

	m, _ = update(t, m, runes("r"))
	if s.HistoryLen() != 1 || s.CurrentGeneration() != 0 {
		t.Errorf("after clear: len %d gen %d", s.HistoryLen(), s.CurrentGeneration())
	}
	if s.Current().Grid.Population() != 0 {
		t.Errorf("clear without a starter should leave an empty grid")
	}
	_ = m
}

func TestWorldRunLoop(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(10, 10), WorldOptions{TickRate: 20})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.running || cmd == nil {
		t.Fatal("space should start the tick loop")
	}
	seq := m.tickSeq

	m, cmd = update(t, m, TickMsg{Seq: seq})
	if m.Session().CurrentGeneration() != 1 || cmd == nil {
		t.Errorf("tick should advance and reschedule, gen %d", m.Session().CurrentGeneration())
	}

	// A stale loop is dropped.
	m, cmd = update(t, m, TickMsg{Seq: seq - 1})
	if m.Session().CurrentGeneration() != 1 || cmd != nil {
		t.Error("stale tick should be ignored")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd = update(t, m, TickMsg{Seq: seq})
	if m.running || cmd != nil || m.Session().CurrentGeneration() != 1 {
		t.Error("paused world should not advance")
	}

	// Resuming starts a fresh loop; ticks from the old one are ignored.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.tickSeq == seq {
		t.Error("resume should start a new tick sequence")
	}
	m, _ = update(t, m, TickMsg{Seq: seq})
	if m.Session().CurrentGeneration() != 1 {
		t.Error("tick from the old loop advanced the world")
	}
}

func TestWorldTickRateBounds(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(8, 8), WorldOptions{TickRate: 1})
	m, _ = update(t, m, runes("-"))
	if m.tickRate != minTickRate {
		t.Errorf("tick rate = %d, expected %d", m.tickRate, minTickRate)
	}
	for range 100 {
		m, _ = update(t, m, runes("+"))
	}
	if m.tickRate != maxTickRate {
		t.Errorf("tick rate = %d, expected %d", m.tickRate, maxTickRate)
	}
}

func TestWorldLayers(t *testing.T) {
	m := newTestWorld(t, automaton.Flat3D, automaton.Extents3D(6, 6, 4), WorldOptions{})
	for range 10 {
		m, _ = update(t, m, runes("]"))
	}
	if m.layer != 3 {
		t.Errorf("layer = %d, expected clamp at 3", m.layer)
	}
	for range 10 {
		m, _ = update(t, m, runes("["))
	}
	if m.layer != 0 {
		t.Errorf("layer = %d, expected clamp at 0", m.layer)
	}

	flat := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(6, 6), WorldOptions{})
	flat, _ = update(t, flat, runes("]"))
	if flat.layer != 0 {
		t.Errorf("2D world should stay on layer 0, got %d", flat.layer)
	}
}

func TestWorldScatterAndFill(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(20, 20), WorldOptions{Seed: 7, Gliders: 3, Density: 0.5})
	s := m.Session()
	before := s.HistoryLen()

	m, _ = update(t, m, runes("g"))
	if s.HistoryLen() != before+1 || s.CurrentGeneration() != 0 {
		t.Errorf("scatter should record an edit at the same generation")
	}
	if !strings.HasPrefix(m.status, "scattered 3") {
		t.Errorf("status = %q", m.status)
	}

	m, _ = update(t, m, runes("f"))
	if s.Current().Grid.Population() == 0 {
		t.Error("fill at density 0.5 left the grid empty")
	}
	_ = m
}

func TestWorldSaveSnapshot(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "life.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(10, 10), WorldOptions{VariantID: "life2d", Store: store})
	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.err != nil {
		t.Fatalf("save failed: %v", m.err)
	}

	snaps, err := store.ListSnapshots("life2d", 10)
	if err != nil || len(snaps) != 1 {
		t.Fatalf("ListSnapshots = %v, %v", snaps, err)
	}
	if snaps[0].Generation != 1 || snaps[0].Rule != "B3/S23" || snaps[0].Kind != "torus2d" {
		t.Errorf("unexpected snapshot row %+v", snaps[0])
	}

	// Without a store the save reports an error instead of panicking.
	bare := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(10, 10), WorldOptions{})
	bare, _ = update(t, bare, tea.KeyMsg{Type: tea.KeyCtrlS})
	if bare.err == nil {
		t.Error("expected an error without a store")
	}
}

func TestWorldMenuAndQuit(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(8, 8), WorldOptions{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone world should ignore esc")
	}

	e := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(8, 8), WorldOptions{Embedded: true})
	e, _ = update(t, e, tea.KeyMsg{Type: tea.KeyEsc})
	if !e.BackToMenu() {
		t.Error("embedded world should return to the menu on esc")
	}

	m, cmd := update(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestWorldView(t *testing.T) {
	m := newTestWorld(t, automaton.Flat2D, automaton.Extents2D(5, 8), WorldOptions{Title: "Flat"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	v := m.View()
	for _, want := range []string{"Flat", "gen", "B3/S23", "paused", string(cellGlyphs.Alive)} {
		if !strings.Contains(v, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	// A short terminal clips the grid.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 5})
	m.View()
	if m.screen.Width() != 4 || m.screen.Height() != 2 {
		t.Errorf("clipped screen = %dx%d, expected 4x2", m.screen.Width(), m.screen.Height())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionSnapshots},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}
