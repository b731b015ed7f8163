package automaton

import "fmt"

// Coord addresses a single cell. Its meaning depends on the grid kind:
//
//	Flat2D:     (Row, Col), Layer is always 0
//	Flat3D:     x=Col, y=Row, z=Layer
//	CubeSphere: face=Layer, i=Row, j=Col
type Coord struct {
	Layer int
	Row   int
	Col   int
}

// At returns a 2D coordinate.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// At3 returns a 3D coordinate from its x, y, z components.
func At3(x, y, z int) Coord {
	return Coord{Layer: z, Row: y, Col: x}
}

// OnFace returns a cube-sphere coordinate.
func OnFace(face, i, j int) Coord {
	return Coord{Layer: face, Row: i, Col: j}
}

// Add returns the coordinate offset by another coordinate.
func (c Coord) Add(o Coord) Coord {
	return Coord{Layer: c.Layer + o.Layer, Row: c.Row + o.Row, Col: c.Col + o.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Layer, c.Row, c.Col)
}

// Extents are the fixed dimensions of a grid.
// Flat2D uses one layer; CubeSphere uses six square layers.
type Extents struct {
	Layers int
	Rows   int
	Cols   int
}

// Extents2D returns extents for a rows×cols flat grid.
func Extents2D(rows, cols int) Extents {
	return Extents{Layers: 1, Rows: rows, Cols: cols}
}

// Extents3D returns extents for an x×y×z volume.
func Extents3D(x, y, z int) Extents {
	return Extents{Layers: z, Rows: y, Cols: x}
}

// ExtentsSphere returns extents for a cube-sphere with N×N faces.
func ExtentsSphere(n int) Extents {
	return Extents{Layers: faceCount, Rows: n, Cols: n}
}

// Cells returns the total number of cells.
func (e Extents) Cells() int {
	return e.Layers * e.Rows * e.Cols
}

// Contains reports whether c lies inside the extents.
func (e Extents) Contains(c Coord) bool {
	return c.Layer >= 0 && c.Layer < e.Layers &&
		c.Row >= 0 && c.Row < e.Rows &&
		c.Col >= 0 && c.Col < e.Cols
}

func (e Extents) String() string {
	return fmt.Sprintf("%dx%dx%d", e.Layers, e.Rows, e.Cols)
}

// Validate checks that the extents describe a legal grid of the given kind.
func (e Extents) Validate(kind Kind) error {
	fail := func(reason string) error {
		return &ExtentsError{Kind: kind, Extents: e, Reason: reason}
	}
	switch kind {
	case Flat2D:
		if e.Layers != 1 {
			return fail("flat 2D grid must have exactly one layer")
		}
	case Flat3D:
		if e.Layers < 1 {
			return fail("z extent must be at least 1")
		}
	case CubeSphere:
		if e.Layers != faceCount {
			return fail("cube-sphere must have exactly 6 faces")
		}
		if e.Rows != e.Cols {
			return fail("cube-sphere faces must be square")
		}
	default:
		return fail("unknown topology kind")
	}
	if e.Rows < 1 || e.Cols < 1 {
		return fail("every extent must be at least 1")
	}
	return nil
}

// index converts an in-bounds coordinate into a flat storage offset.
func (e Extents) index(c Coord) int {
	return (c.Layer*e.Rows+c.Row)*e.Cols + c.Col
}

// coord is the inverse of index.
func (e Extents) coord(idx int) Coord {
	col := idx % e.Cols
	idx /= e.Cols
	return Coord{Layer: idx / e.Rows, Row: idx % e.Rows, Col: col}
}
