package automaton

import "math/rand/v2"

// Pattern is a set of cell offsets stamped relative to an origin.
type Pattern struct {
	Name  string
	Cells []Coord
}

// Glider2D is the Conway glider; it travels +1 row and +1 column every
// four generations.
//
//	.#.
//	..#
//	###
var Glider2D = Pattern{
	Name:  "glider",
	Cells: []Coord{At(0, 1), At(1, 2), At(2, 0), At(2, 1), At(2, 2)},
}

// Glider3D is a nine-cell glider-like shape for S456/B5 volumes.
var Glider3D = Pattern{
	Name: "glider3d",
	Cells: []Coord{
		{0, 0, 1}, {0, 1, 2}, {0, 2, 0}, {0, 2, 1}, {0, 2, 2},
		{1, 1, 1}, {1, 2, 2}, {2, 1, 2}, {2, 2, 1},
	},
}

// Glider3DCompact is a five-cell seed for S45/B4 volumes.
var Glider3DCompact = Pattern{
	Name:  "glider3d-compact",
	Cells: []Coord{At3(0, 0, 0), At3(1, 0, 0), At3(0, 1, 0), At3(0, 0, 1), At3(1, 1, 0)},
}

var patterns = map[string]Pattern{
	Glider2D.Name:        Glider2D,
	Glider3D.Name:        Glider3D,
	Glider3DCompact.Name: Glider3DCompact,
}

// DefaultGlider returns the glider used for a kind.
func DefaultGlider(kind Kind) Pattern {
	if kind == Flat3D {
		return Glider3D
	}
	return Glider2D
}

// LookupPattern resolves a pattern name for a kind. An empty name or
// "glider" selects DefaultGlider. Flat patterns cannot seed volumes and
// volume patterns cannot seed flat grids.
func LookupPattern(kind Kind, name string) (Pattern, bool) {
	if name == "" || name == Glider2D.Name {
		return DefaultGlider(kind), true
	}
	p, ok := patterns[name]
	if !ok || (kind == Flat3D) != p.isVolume() {
		return Pattern{}, false
	}
	return p, true
}

func (p Pattern) isVolume() bool {
	for _, c := range p.Cells {
		if c.Layer != 0 {
			return true
		}
	}
	return false
}

// Span returns the bounding box size of the pattern per axis.
func (p Pattern) Span() Coord {
	var s Coord
	for _, c := range p.Cells {
		s.Layer = max(s.Layer, c.Layer+1)
		s.Row = max(s.Row, c.Row+1)
		s.Col = max(s.Col, c.Col+1)
	}
	return s
}

// Orientation selects a symmetry of a pattern. Flat grids and cube faces
// use the four glider headings; volumes use the three plane permutations.
type Orientation uint8

// Flat headings, named by direction of travel for Glider2D.
const (
	HeadingSE Orientation = iota
	HeadingSW
	HeadingNE
	HeadingNW
)

// Volume planes: the pattern's (x, y, z) offsets are permuted so that its
// xy plane lands in the named plane.
const (
	PlaneXY Orientation = iota
	PlaneXZ
	PlaneYZ
)

// Orientations returns how many orientations a kind supports.
func Orientations(kind Kind) int {
	if kind == Flat3D {
		return 3
	}
	return 4
}

// Oriented returns a copy of p transformed for the given kind.
func (p Pattern) Oriented(kind Kind, o Orientation) Pattern {
	span := p.Span()
	out := Pattern{Name: p.Name, Cells: make([]Coord, len(p.Cells))}
	for i, c := range p.Cells {
		if kind == Flat3D {
			x, y, z := c.Col, c.Row, c.Layer
			switch o {
			case PlaneXZ:
				c = At3(x, z, y)
			case PlaneYZ:
				c = At3(z, x, y)
			}
		} else {
			if o == HeadingSW || o == HeadingNW {
				c.Col = span.Col - 1 - c.Col
			}
			if o == HeadingNE || o == HeadingNW {
				c.Row = span.Row - 1 - c.Row
			}
		}
		out.Cells[i] = c
	}
	return out
}

// StampPattern sets every pattern cell at origin+offset alive. Cells that
// fall outside the grid are skipped, as are cells that would leave the
// origin's cube face. Returns the number of cells written.
func StampPattern(g *Grid, p Pattern, origin Coord) int {
	written := 0
	for _, off := range p.Cells {
		c := origin.Add(off)
		if g.Kind() == CubeSphere {
			c.Layer = origin.Layer
		}
		if !g.InBounds(c) {
			continue
		}
		g.Set(c, true)
		written++
	}
	return written
}

// StampGlider stamps the default glider of the grid's kind.
func StampGlider(g *Grid, origin Coord, o Orientation) int {
	return StampPattern(g, DefaultGlider(g.Kind()).Oriented(g.Kind(), o), origin)
}

// Placement records where a pattern was stamped.
type Placement struct {
	Origin      Coord
	Orientation Orientation
}

// ScatterRandom stamps count default gliders at random origins.
func ScatterRandom(g *Grid, count int, rng *rand.Rand) []Placement {
	return ScatterPattern(g, DefaultGlider(g.Kind()), count, rng)
}

// ScatterPattern stamps up to count copies of p. For each copy it draws
// from rng the face (cube-sphere only), the orientation, then an origin in
// [0, extent-span) per axis, so every stamp is whole. A copy whose
// orientation leaves that range empty on some axis is skipped: nothing is
// stamped and no Placement is returned for it.
func ScatterPattern(g *Grid, p Pattern, count int, rng *rand.Rand) []Placement {
	kind := g.Kind()
	ext := g.Extents()
	placements := make([]Placement, 0, max(count, 0))
	for range count {
		var origin Coord
		if kind == CubeSphere {
			origin.Layer = rng.IntN(faceCount)
		}
		o := Orientation(rng.IntN(Orientations(kind)))
		q := p.Oriented(kind, o)
		span := q.Span()
		if !fits(ext.Rows, span.Row) || !fits(ext.Cols, span.Col) ||
			(kind == Flat3D && !fits(ext.Layers, span.Layer)) {
			continue
		}
		if kind == Flat3D {
			origin.Layer = rng.IntN(ext.Layers - span.Layer)
		}
		origin.Row = rng.IntN(ext.Rows - span.Row)
		origin.Col = rng.IntN(ext.Cols - span.Col)

		StampPattern(g, q, origin)
		placements = append(placements, Placement{Origin: origin, Orientation: o})
	}
	return placements
}

// fits reports whether [0, extent-span) is non-empty.
func fits(extent, span int) bool {
	return extent-span >= 1
}

// FillRandom sets each cell alive with the given probability and returns
// the number of cells set. Density is clamped to [0, 1].
func FillRandom(g *Grid, density float64, rng *rand.Rand) int {
	density = min(max(density, 0), 1)
	n := 0
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = 1
			n++
		}
	}
	return n
}

// Glider count limits per kind.
const (
	MaxGliders2D = 1000
	MaxGliders3D = 100
)

// ClampGliderCount bounds a requested scatter count to [1, max] for kind.
func ClampGliderCount(kind Kind, n int) int {
	limit := MaxGliders2D
	if kind == Flat3D {
		limit = MaxGliders3D
	}
	return min(max(n, 1), limit)
}

// NewRNG returns a deterministic generator for a seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
