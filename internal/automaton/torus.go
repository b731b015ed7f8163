package automaton

// Torus2D wraps both axes of a flat grid. Neighbors are distinct and never
// include the cell itself when both extents are at least 3; smaller extents
// alias under modular wrapping but stay in bounds.
type Torus2D struct {
	rows, cols int
}

func (t *Torus2D) Kind() Kind        { return Flat2D }
func (t *Torus2D) Extents() Extents  { return Extents2D(t.rows, t.cols) }
func (t *Torus2D) MaxNeighbors() int { return 8 }

func (t *Torus2D) Neighbors(c Coord) []Coord {
	return t.AppendNeighbors(make([]Coord, 0, 8), c)
}

func (t *Torus2D) AppendNeighbors(dst []Coord, c Coord) []Coord {
	if c.Layer != 0 || c.Row < 0 || c.Row >= t.rows || c.Col < 0 || c.Col >= t.cols {
		panic(&CoordinateError{Coord: c, Extents: t.Extents()})
	}
	for _, d := range offsets2D {
		dst = append(dst, Coord{
			Row: wrap(c.Row, d.Row, t.rows),
			Col: wrap(c.Col, d.Col, t.cols),
		})
	}
	return dst
}

// Torus3D wraps all three axes of a volume.
type Torus3D struct {
	ext Extents
}

func (t *Torus3D) Kind() Kind        { return Flat3D }
func (t *Torus3D) Extents() Extents  { return t.ext }
func (t *Torus3D) MaxNeighbors() int { return 26 }

func (t *Torus3D) Neighbors(c Coord) []Coord {
	return t.AppendNeighbors(make([]Coord, 0, 26), c)
}

func (t *Torus3D) AppendNeighbors(dst []Coord, c Coord) []Coord {
	if !t.ext.Contains(c) {
		panic(&CoordinateError{Coord: c, Extents: t.ext})
	}
	for _, d := range offsets3D {
		dst = append(dst, Coord{
			Layer: wrap(c.Layer, d.Layer, t.ext.Layers),
			Row:   wrap(c.Row, d.Row, t.ext.Rows),
			Col:   wrap(c.Col, d.Col, t.ext.Cols),
		})
	}
	return dst
}
