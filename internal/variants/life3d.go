package variants

import (
	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func init() {
	registry.Register("life3d", func() registry.Variant { return newLife3D() })
}

// newLife3D runs a 26-neighbor rule in a toroidal volume. The starter shape
// sits one layer deep so its lowest slice is not on the wrap seam.
func newLife3D() *variant {
	return &variant{
		id:    "life3d",
		title: "Life in a 3D Torus",
		kind:  automaton.Flat3D,
		starter: func(g *automaton.Grid, p automaton.Pattern) {
			automaton.StampPattern(g, p, automaton.At3(0, 0, 1))
		},
	}
}
