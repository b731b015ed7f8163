// Package session owns one running automaton: its topology, simulator,
// rule set and history. It is the single controller a driver (the TUI, the
// SSH server, the headless runner) talks to; all mutation of simulation
// state goes through it.
//
// A Session is not safe for concurrent use. Each driver owns its own.
package session

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// Options configures a new Session.
type Options struct {
	Kind    automaton.Kind
	Extents automaton.Extents
	Rules   automaton.RuleSet

	// HistoryCapacity defaults to automaton.DefaultHistoryCapacity.
	HistoryCapacity int

	// Workers is the goroutine count per step; < 1 uses GOMAXPROCS.
	Workers int

	// OnClear, if set, decorates the blank grid produced by Clear.
	OnClear func(g *automaton.Grid)

	Logger *log.Logger
}

// Session is the simulation controller.
type Session struct {
	kind    automaton.Kind
	topo    automaton.Topology
	sim     *automaton.Simulator
	hist    *automaton.History
	onClear func(g *automaton.Grid)
	logger  *log.Logger
}

// Stats is a read-only summary of the active frame.
type Stats struct {
	Generation   int
	Population   int
	HistoryIndex int
	HistoryLen   int
	Rule         string
}

// New builds a session. A nil seed starts from an empty grid.
func New(opts Options, seed *automaton.Grid) (*Session, error) {
	topo, err := automaton.NewTopology(opts.Kind, opts.Extents)
	if err != nil {
		return nil, err
	}
	sim, err := automaton.NewSimulator(topo, opts.Rules, automaton.WithWorkers(opts.Workers))
	if err != nil {
		return nil, err
	}

	if seed == nil {
		seed, err = automaton.NewGrid(opts.Kind, opts.Extents)
		if err != nil {
			return nil, err
		}
	} else if err := matches(topo, seed); err != nil {
		return nil, err
	} else {
		seed = seed.Clone()
	}

	capacity := opts.HistoryCapacity
	if capacity == 0 {
		capacity = automaton.DefaultHistoryCapacity
	}
	hist, err := automaton.NewHistory(capacity, sim, seed)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		kind:    opts.Kind,
		topo:    topo,
		sim:     sim,
		hist:    hist,
		onClear: opts.OnClear,
		logger:  logger,
	}, nil
}

func matches(topo automaton.Topology, g *automaton.Grid) error {
	if g.Kind() != topo.Kind() || g.Extents() != topo.Extents() {
		return fmt.Errorf("%w: grid %s %s, session %s %s", automaton.ErrShapeMismatch,
			g.Kind(), g.Extents(), topo.Kind(), topo.Extents())
	}
	return nil
}

// Step computes the generation after the active frame and records it,
// discarding any frames ahead of the cursor.
func (s *Session) Step() (automaton.Frame, error) {
	cur := s.hist.Current()
	next, err := s.sim.Step(cur.Grid)
	if err != nil {
		return cur, err
	}
	f := s.hist.Record(next, cur.Generation+1)
	s.logger.Debug("step", "generation", f.Generation, "population", f.Grid.Population())
	return f, nil
}

// Run performs n steps and returns the final frame.
func (s *Session) Run(n int) (automaton.Frame, error) {
	f := s.hist.Current()
	for range n {
		var err error
		if f, err = s.Step(); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Back rewinds one frame. At the oldest frame it is a no-op.
func (s *Session) Back() automaton.Frame {
	f := s.hist.Back()
	s.logger.Debug("back", "generation", f.Generation, "index", s.hist.Index())
	return f
}

// Next replays one frame forward, computing a new generation at the end
// of the timeline.
func (s *Session) Next() (automaton.Frame, error) {
	f, err := s.hist.Next()
	if err != nil {
		return f, err
	}
	s.logger.Debug("next", "generation", f.Generation, "index", s.hist.Index())
	return f, nil
}

// Reset discards all history and starts from a copy of seed.
func (s *Session) Reset(seed *automaton.Grid) error {
	if err := matches(s.topo, seed); err != nil {
		return err
	}
	s.hist.Reset(seed.Clone())
	s.logger.Info("reset", "population", seed.Population())
	return nil
}

// Clear discards all history and starts from a blank grid, decorated by
// the OnClear hook when one was configured.
func (s *Session) Clear() {
	g := s.hist.Current().Grid.Clone()
	g.Clear()
	if s.onClear != nil {
		s.onClear(g)
	}
	s.hist.Reset(g)
	s.logger.Info("cleared", "population", g.Population())
}

// Restore replaces the history with a decoded snapshot frame.
func (s *Session) Restore(f automaton.Frame) error {
	if err := matches(s.topo, f.Grid); err != nil {
		return err
	}
	s.hist.Restore(automaton.Frame{Grid: f.Grid.Clone(), Generation: f.Generation})
	s.logger.Info("restored snapshot", "generation", f.Generation)
	return nil
}

// ApplyRules parses and installs a new rule set between generations.
// On error the active rules are left unchanged.
func (s *Session) ApplyRules(survival, birth string) (automaton.RuleSet, error) {
	rules, err := automaton.ParseRuleSet(survival, birth, s.topo.MaxNeighbors())
	if err != nil {
		return automaton.RuleSet{}, err
	}
	return rules, s.SetRules(rules)
}

// SetRules installs an already validated rule set.
func (s *Session) SetRules(rules automaton.RuleSet) error {
	if err := s.sim.SetRules(rules); err != nil {
		return err
	}
	s.logger.Info("rules changed", "rule", rules.String())
	return nil
}

// Rules returns the active rule set.
func (s *Session) Rules() automaton.RuleSet {
	return s.sim.Rules()
}

// edit records a modified copy of the active frame at the same generation.
func (s *Session) edit(fn func(g *automaton.Grid)) automaton.Frame {
	cur := s.hist.Current()
	g := cur.Grid.Clone()
	fn(g)
	return s.hist.Record(g, cur.Generation)
}

// StampGlider stamps the default glider at origin. Cells falling outside
// the grid (or off the origin's face) are skipped.
func (s *Session) StampGlider(origin automaton.Coord, o automaton.Orientation) automaton.Frame {
	return s.edit(func(g *automaton.Grid) {
		automaton.StampGlider(g, origin, o)
	})
}

// ScatterGliders stamps count gliders at random using a generator seeded
// with seed. The count is clamped to the per-kind limits.
func (s *Session) ScatterGliders(count int, seed int64) []automaton.Placement {
	return s.Scatter(automaton.DefaultGlider(s.kind), count, automaton.NewRNG(seed))
}

// Scatter stamps count copies of p drawn from rng.
func (s *Session) Scatter(p automaton.Pattern, count int, rng *rand.Rand) []automaton.Placement {
	count = automaton.ClampGliderCount(s.kind, count)
	var placed []automaton.Placement
	s.edit(func(g *automaton.Grid) {
		placed = automaton.ScatterPattern(g, p, count, rng)
	})
	s.logger.Info("scattered gliders", "pattern", p.Name, "count", count)
	return placed
}

// FillRandom sets each cell alive with the given probability.
func (s *Session) FillRandom(density float64, rng *rand.Rand) int {
	var n int
	s.edit(func(g *automaton.Grid) {
		n = automaton.FillRandom(g, density, rng)
	})
	s.logger.Info("random fill", "density", density, "cells", n)
	return n
}

// SetCell writes one cell as a new history entry.
func (s *Session) SetCell(c automaton.Coord, alive bool) error {
	if err := s.check(c); err != nil {
		return err
	}
	s.edit(func(g *automaton.Grid) { g.Set(c, alive) })
	return nil
}

// Toggle flips one cell as a new history entry.
func (s *Session) Toggle(c automaton.Coord) error {
	if err := s.check(c); err != nil {
		return err
	}
	s.edit(func(g *automaton.Grid) { g.Toggle(c) })
	return nil
}

func (s *Session) check(c automaton.Coord) error {
	if !s.topo.Extents().Contains(c) {
		return &automaton.CoordinateError{Coord: c, Extents: s.topo.Extents()}
	}
	return nil
}

// CellAt reports whether a cell of the active frame is alive.
func (s *Session) CellAt(c automaton.Coord) (bool, error) {
	if err := s.check(c); err != nil {
		return false, err
	}
	return s.hist.Current().Grid.Alive(c), nil
}

// Kind returns the topology kind.
func (s *Session) Kind() automaton.Kind { return s.kind }

// Topology returns the neighbor topology.
func (s *Session) Topology() automaton.Topology { return s.topo }

// Dimensions returns the grid extents.
func (s *Session) Dimensions() automaton.Extents { return s.topo.Extents() }

// Current returns the active frame. Its grid must not be modified.
func (s *Session) Current() automaton.Frame { return s.hist.Current() }

// CurrentGeneration returns the generation number of the active frame.
func (s *Session) CurrentGeneration() int { return s.hist.Current().Generation }

// HistoryIndex returns the cursor position within the history.
func (s *Session) HistoryIndex() int { return s.hist.Index() }

// HistoryLen returns the number of stored frames.
func (s *Session) HistoryLen() int { return s.hist.Len() }

// Stats summarizes the active frame.
func (s *Session) Stats() Stats {
	f := s.hist.Current()
	return Stats{
		Generation:   f.Generation,
		Population:   f.Grid.Population(),
		HistoryIndex: s.hist.Index(),
		HistoryLen:   s.hist.Len(),
		Rule:         s.sim.Rules().String(),
	}
}

// Snapshot encodes the active frame.
func (s *Session) Snapshot() []byte {
	return automaton.EncodeSnapshot(s.hist.Current())
}
