// Package config provides YAML-based world configuration loading and
// rule presets for the automaton variants.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// WorldConfig contains all configuration for one simulated world.
type WorldConfig struct {
	Topology string        `yaml:"topology"` // torus2d, torus3d or cubesphere
	Size     SizeConfig    `yaml:"size"`
	Rules    RulesConfig   `yaml:"rules"`
	History  HistoryConfig `yaml:"history"`
	Seed     SeedConfig    `yaml:"seed"`
	Sim      SimConfig     `yaml:"sim"`
}

// SizeConfig defines grid extents. Which fields apply depends on topology:
// torus2d uses rows/cols, torus3d adds depth, cubesphere uses face only.
type SizeConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Depth int `yaml:"depth"`
	Face  int `yaml:"face"`
}

// RulesConfig holds survival/birth count lists ("2,3", "4-6", "[]").
// A non-empty preset overrides the explicit lists.
type RulesConfig struct {
	Preset   string `yaml:"preset"`
	Survival string `yaml:"survival"`
	Birth    string `yaml:"birth"`
}

// HistoryConfig bounds the time-travel buffer.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// SeedConfig defines the initial population.
type SeedConfig struct {
	Gliders int     `yaml:"gliders"` // random gliders to scatter, 0 for none
	Pattern string  `yaml:"pattern"` // glider, glider3d, glider3d-compact
	Density float64 `yaml:"density"` // random fill probability, 0 for none
	Value   int64   `yaml:"value"`   // RNG seed, 0 picks one at startup
}

// SimConfig defines runtime parameters.
type SimConfig struct {
	Workers  int `yaml:"workers"`   // goroutines per step, 0 = GOMAXPROCS
	TickRate int `yaml:"tick_rate"` // generations per second while running
}

// Kind parses the topology name.
func (c WorldConfig) Kind() (automaton.Kind, error) {
	return automaton.ParseKind(c.Topology)
}

// Extents derives grid extents for the configured topology.
func (c WorldConfig) Extents() (automaton.Extents, error) {
	kind, err := c.Kind()
	if err != nil {
		return automaton.Extents{}, err
	}
	var ext automaton.Extents
	switch kind {
	case automaton.Flat2D:
		ext = automaton.Extents2D(c.Size.Rows, c.Size.Cols)
	case automaton.Flat3D:
		ext = automaton.Extents3D(c.Size.Cols, c.Size.Rows, c.Size.Depth)
	case automaton.CubeSphere:
		ext = automaton.ExtentsSphere(c.Size.Face)
	}
	return ext, ext.Validate(kind)
}

// RuleSet resolves the preset or explicit count lists into a validated
// rule set for the configured topology.
func (c WorldConfig) RuleSet() (automaton.RuleSet, error) {
	kind, err := c.Kind()
	if err != nil {
		return automaton.RuleSet{}, err
	}
	rules := c.Rules
	if rules.Preset != "" {
		p, ok := LookupRulePreset(RulePreset(rules.Preset))
		if !ok {
			return automaton.RuleSet{}, fmt.Errorf("config: unknown rule preset %q", rules.Preset)
		}
		rules.Survival, rules.Birth = p.Survival, p.Birth
	}
	return automaton.ParseRuleSet(rules.Survival, rules.Birth, automaton.MaxNeighbors(kind))
}

// Validate reports every problem with the configuration at once.
func (c WorldConfig) Validate() error {
	var errs []error
	if _, err := c.Extents(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.RuleSet(); err != nil {
		errs = append(errs, err)
	}
	if c.History.Capacity < 0 {
		errs = append(errs, &automaton.CapacityError{Capacity: c.History.Capacity})
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		errs = append(errs, fmt.Errorf("config: seed density %.2f outside [0, 1]", c.Seed.Density))
	}
	if c.Seed.Gliders < 0 {
		errs = append(errs, fmt.Errorf("config: negative glider count %d", c.Seed.Gliders))
	}
	if c.Sim.TickRate < 0 {
		errs = append(errs, fmt.Errorf("config: negative tick rate %d", c.Sim.TickRate))
	}
	if kind, err := c.Kind(); err == nil {
		if _, ok := automaton.LookupPattern(kind, c.Seed.Pattern); !ok {
			errs = append(errs, fmt.Errorf("config: pattern %q cannot seed %s", c.Seed.Pattern, kind))
		}
	}
	return errors.Join(errs...)
}
