package variants

import (
	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func init() {
	registry.Register("sphere", func() registry.Variant { return newSphere() })
}

// newSphere runs life on six cube faces stitched into a sphere, starting from
// a glider in the middle of the +z face.
func newSphere() *variant {
	return &variant{
		id:    "sphere",
		title: "Life on a Cube Sphere",
		kind:  automaton.CubeSphere,
		starter: func(g *automaton.Grid, p automaton.Pattern) {
			n := g.Extents().Rows
			automaton.StampPattern(g, p, automaton.OnFace(automaton.FacePosZ, n/2-1, n/2-1))
		},
	}
}
