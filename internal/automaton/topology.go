package automaton

// Topology maps a cell to its Moore neighborhood. Implementations are
// immutable after construction and safe for concurrent use.
//
// For a valid input coordinate the returned slice always has exactly
// MaxNeighbors entries, every one of them in bounds, in a stable order.
// An out-of-range input is a programming error and panics with a
// *CoordinateError.
type Topology interface {
	Kind() Kind
	Extents() Extents
	MaxNeighbors() int
	Neighbors(c Coord) []Coord
	// AppendNeighbors appends the neighborhood of c to dst and returns
	// the extended slice. It avoids allocation on hot paths.
	AppendNeighbors(dst []Coord, c Coord) []Coord
}

// NewTopology builds the topology for a grid kind and its extents.
func NewTopology(kind Kind, ext Extents) (Topology, error) {
	if err := ext.Validate(kind); err != nil {
		return nil, err
	}
	switch kind {
	case Flat2D:
		return &Torus2D{rows: ext.Rows, cols: ext.Cols}, nil
	case Flat3D:
		return &Torus3D{ext: ext}, nil
	default:
		return &Sphere{n: ext.Rows}, nil
	}
}

// TopologyFor builds the topology matching an existing grid.
func TopologyFor(g *Grid) (Topology, error) {
	return NewTopology(g.Kind(), g.Extents())
}

// offsets2D is the 2D Moore neighborhood in row-major order.
var offsets2D = func() []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, Coord{Row: dr, Col: dc})
		}
	}
	return out
}()

// offsets3D is the 3D Moore neighborhood ordered by z, then y, then x.
var offsets3D = func() []Coord {
	out := make([]Coord, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dz == 0 && dy == 0 && dx == 0 {
					continue
				}
				out = append(out, Coord{Layer: dz, Row: dy, Col: dx})
			}
		}
	}
	return out
}()

// wrap folds v+d into [0, n) for |d| <= 1.
func wrap(v, d, n int) int {
	return (v + d + n) % n
}

// neighborTable precomputes the neighborhood of every cell as flat indices.
// Row k holds the MaxNeighbors indices for the cell at storage index k.
func neighborTable(t Topology) []int32 {
	ext := t.Extents()
	per := t.MaxNeighbors()
	table := make([]int32, 0, ext.Cells()*per)
	buf := make([]Coord, 0, per)
	for idx := 0; idx < ext.Cells(); idx++ {
		buf = t.AppendNeighbors(buf[:0], ext.coord(idx))
		for _, n := range buf {
			table = append(table, int32(ext.index(n)))
		}
	}
	return table
}
