package automaton

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minCellsPerWorker keeps small grids on a single goroutine.
const minCellsPerWorker = 4096

// Simulator advances grids of one topology by whole generations.
// It precomputes the neighborhood of every cell once, so Step is a flat
// gather over the previous generation.
type Simulator struct {
	topo      Topology
	rules     RuleSet
	neighbors []int32
	per       int
	workers   int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWorkers sets the number of goroutines used per step.
// Values < 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// NewSimulator builds a simulator for a topology and rule set. The rules
// must have been validated for the topology's neighborhood size.
func NewSimulator(topo Topology, rules RuleSet, opts ...Option) (*Simulator, error) {
	if rules.MaxNeighbors() != topo.MaxNeighbors() {
		return nil, fmt.Errorf("%w: rule validated for %d neighbors, topology has %d",
			ErrInvalidRule, rules.MaxNeighbors(), topo.MaxNeighbors())
	}
	s := &Simulator{
		topo:      topo,
		rules:     rules,
		neighbors: neighborTable(topo),
		per:       topo.MaxNeighbors(),
		workers:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Topology returns the simulator's topology.
func (s *Simulator) Topology() Topology {
	return s.topo
}

// Rules returns the active rule set.
func (s *Simulator) Rules() RuleSet {
	return s.rules
}

// SetRules replaces the rule set. Must not be called during Step.
func (s *Simulator) SetRules(rules RuleSet) error {
	if rules.MaxNeighbors() != s.per {
		return fmt.Errorf("%w: rule validated for %d neighbors, topology has %d",
			ErrInvalidRule, rules.MaxNeighbors(), s.per)
	}
	s.rules = rules
	return nil
}

// Step returns the next generation of g. The input grid is never modified.
func (s *Simulator) Step(g *Grid) (*Grid, error) {
	if g.Kind() != s.topo.Kind() || g.Extents() != s.topo.Extents() {
		return nil, fmt.Errorf("%w: grid %s %s, topology %s %s", ErrShapeMismatch,
			g.Kind(), g.Extents(), s.topo.Kind(), s.topo.Extents())
	}
	out := &Grid{kind: g.kind, ext: g.ext, cells: make([]uint8, len(g.cells))}

	total := len(g.cells)
	workers := s.workers
	if limit := total / minCellsPerWorker; workers > limit {
		workers = max(limit, 1)
	}
	if workers == 1 {
		s.stepRange(g.cells, out.cells, 0, total)
		return out, nil
	}

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		start := bandStart(total, workers, w)
		end := bandStart(total, workers, w+1)
		eg.Go(func() error {
			s.stepRange(g.cells, out.cells, start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// stepRange writes next-generation states for cells [start, end).
// Workers write disjoint ranges of dst and only read src.
func (s *Simulator) stepRange(src, dst []uint8, start, end int) {
	for idx := start; idx < end; idx++ {
		base := idx * s.per
		live := 0
		for _, n := range s.neighbors[base : base+s.per] {
			live += int(src[n])
		}
		dst[idx] = bit(s.rules.Next(src[idx] != 0, live))
	}
}

// bandStart splits total cells into near-equal contiguous bands.
func bandStart(total, bands, i int) int {
	return total * i / bands
}

// Run advances g by n generations and returns the final grid.
func (s *Simulator) Run(g *Grid, n int) (*Grid, error) {
	cur := g
	for i := 0; i < n; i++ {
		next, err := s.Step(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
