// Package variants registers the three world variants: a flat torus, a 3D
// torus and a cube-mapped sphere. Each one turns a config.WorldConfig into a
// seeded session.
package variants

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/session"
)

// starterFunc stamps a variant's fixed starting pattern onto a blank grid.
type starterFunc func(g *automaton.Grid, p automaton.Pattern)

// variant implements registry.Variant for one topology.
type variant struct {
	id      string
	title   string
	kind    automaton.Kind
	starter starterFunc
}

func (v *variant) ID() string    { return v.id }
func (v *variant) Title() string { return v.title }

// Build validates cfg and builds the seeded session. The initial grid is
// the starter pattern, then cfg.Seed.Gliders scattered copies of the seed
// pattern, then a random fill at cfg.Seed.Density, all drawn from one
// generator seeded with cfg.Seed.Value.
func (v *variant) Build(cfg config.WorldConfig, logger *log.Logger) (*session.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("variants: %s: %w", v.id, err)
	}
	kind, _ := cfg.Kind()
	if kind != v.kind {
		return nil, fmt.Errorf("variants: %s expects topology %s, config has %s", v.id, v.kind, kind)
	}
	ext, _ := cfg.Extents()
	rules, _ := cfg.RuleSet()
	pattern, _ := automaton.LookupPattern(kind, cfg.Seed.Pattern)

	starter := func(g *automaton.Grid) { v.starter(g, pattern) }
	seed, _ := automaton.NewGrid(kind, ext)
	starter(seed)

	rng := automaton.NewRNG(cfg.Seed.Value)
	if cfg.Seed.Gliders > 0 {
		n := automaton.ClampGliderCount(kind, cfg.Seed.Gliders)
		automaton.ScatterPattern(seed, pattern, n, rng)
	}
	if cfg.Seed.Density > 0 {
		automaton.FillRandom(seed, cfg.Seed.Density, rng)
	}

	if logger != nil {
		logger = logger.With("variant", v.id)
	}
	s, err := session.New(session.Options{
		Kind:            kind,
		Extents:         ext,
		Rules:           rules,
		HistoryCapacity: cfg.History.Capacity,
		Workers:         cfg.Sim.Workers,
		OnClear:         starter,
		Logger:          logger,
	}, seed)
	if err != nil {
		return nil, fmt.Errorf("variants: %s: %w", v.id, err)
	}
	return s, nil
}
