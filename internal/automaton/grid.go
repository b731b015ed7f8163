package automaton

// Grid stores one bit of state per cell for a fixed shape.
// Cells are laid out layer-major, then row-major.
type Grid struct {
	kind  Kind
	ext   Extents
	cells []uint8
}

// NewGrid allocates an all-dead grid of the given kind and extents.
func NewGrid(kind Kind, ext Extents) (*Grid, error) {
	if err := ext.Validate(kind); err != nil {
		return nil, err
	}
	return &Grid{
		kind:  kind,
		ext:   ext,
		cells: make([]uint8, ext.Cells()),
	}, nil
}

// Kind returns the grid's topology kind.
func (g *Grid) Kind() Kind {
	return g.kind
}

// Extents returns the grid dimensions.
func (g *Grid) Extents() Extents {
	return g.ext
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds checks if a coordinate is within grid bounds.
func (g *Grid) InBounds(c Coord) bool {
	return g.ext.Contains(c)
}

func (g *Grid) mustIndex(c Coord) int {
	if !g.ext.Contains(c) {
		panic(&CoordinateError{Coord: c, Extents: g.ext})
	}
	return g.ext.index(c)
}

// Alive returns the state of a cell. Panics if c is out of bounds;
// use InBounds first when the coordinate comes from outside the kernel.
func (g *Grid) Alive(c Coord) bool {
	return g.cells[g.mustIndex(c)] != 0
}

// Set writes the state of a cell. Panics if c is out of bounds.
func (g *Grid) Set(c Coord, alive bool) {
	g.cells[g.mustIndex(c)] = bit(alive)
}

// Toggle flips the state of a cell. Panics if c is out of bounds.
func (g *Grid) Toggle(c Coord) {
	g.cells[g.mustIndex(c)] ^= 1
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{kind: g.kind, ext: g.ext, cells: cells}
}

// Equal checks if two grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.kind != other.kind || g.ext != other.ext {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// AliveCoords returns the coordinates of all live cells in storage order.
func (g *Grid) AliveCoords() []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v != 0 {
			out = append(out, g.ext.coord(i))
		}
	}
	return out
}

// LayerPopulation counts live cells in one layer (a z-slice or a face).
func (g *Grid) LayerPopulation(layer int) int {
	if layer < 0 || layer >= g.ext.Layers {
		return 0
	}
	size := g.ext.Rows * g.ext.Cols
	n := 0
	for _, v := range g.cells[layer*size : (layer+1)*size] {
		n += int(v)
	}
	return n
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
