package session

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// FromSnapshot builds a session whose history starts at a decoded snapshot
// record. Kind and Extents in opts are taken from the record. A non-empty
// rule string ("B3/S23") overrides opts.Rules.
func FromSnapshot(data []byte, rule string, opts Options) (*Session, error) {
	f, err := automaton.DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("session: cannot load snapshot: %w", err)
	}
	opts.Kind = f.Grid.Kind()
	opts.Extents = f.Grid.Extents()

	if rule != "" {
		rs, err := automaton.ParseRule(rule, automaton.MaxNeighbors(opts.Kind))
		if err != nil {
			return nil, fmt.Errorf("session: cannot load snapshot: %w", err)
		}
		opts.Rules = rs
	} else if opts.Rules.MaxNeighbors() != automaton.MaxNeighbors(opts.Kind) {
		opts.Rules = defaultRules(opts.Kind)
	}

	s, err := New(opts, f.Grid)
	if err != nil {
		return nil, err
	}
	if err := s.Restore(f); err != nil {
		return nil, err
	}
	return s, nil
}

func defaultRules(kind automaton.Kind) automaton.RuleSet {
	if kind == automaton.Flat3D {
		return automaton.MustRuleSet([]int{4, 5, 6}, []int{5}, 26)
	}
	return automaton.Conway()
}
