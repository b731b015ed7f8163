package variants

import (
	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func init() {
	registry.Register("life2d", func() registry.Variant { return newLife2D() })
}

// newLife2D builds Conway's Game of Life on a flat torus, starting from a glider
// in the top-left corner.
func newLife2D() *variant {
	return &variant{
		id:    "life2d",
		title: "Life on a Torus",
		kind:  automaton.Flat2D,
		starter: func(g *automaton.Grid, p automaton.Pattern) {
			automaton.StampPattern(g, p, automaton.At(0, 0))
		},
	}
}
