package render

import (
	"github.com/vovakirdan/tui-life/internal/automaton"
)

// Glyphs are the runes used for cell states.
type Glyphs struct {
	Alive rune
	Dead  rune
}

// DefaultGlyphs render live cells as blocks on a dotted background.
var DefaultGlyphs = Glyphs{Alive: '█', Dead: '·'}

// DrawLayer draws one layer (a z-slice, or one cube face) with its top-left
// cell at (x, y). Row maps to screen y and column to screen x.
func DrawLayer(dst *Screen, g *automaton.Grid, layer, x, y int, gl Glyphs) {
	ext := g.Extents()
	if layer < 0 || layer >= ext.Layers {
		return
	}
	for r := 0; r < ext.Rows; r++ {
		for c := 0; c < ext.Cols; c++ {
			ch := gl.Dead
			if g.Alive(automaton.Coord{Layer: layer, Row: r, Col: c}) {
				ch = gl.Alive
			}
			dst.Set(x+c, y+r, ch)
		}
	}
}

// netFace places one cube face in the unfolded cross:
//
//	    +y
//	-x  +z  +x  -z
//	    -y
//
// Faces in the middle band are drawn with j increasing upwards so that
// every seam of the cross joins cells that are neighbors on the cube.
type netFace struct {
	col, row int // block position in face units
	flipRow  bool
}

var cubeNet = [6]netFace{
	automaton.FacePosZ: {col: 1, row: 1, flipRow: true},
	automaton.FaceNegZ: {col: 3, row: 1, flipRow: true},
	automaton.FacePosY: {col: 1, row: 0},
	automaton.FaceNegY: {col: 1, row: 2},
	automaton.FacePosX: {col: 2, row: 1, flipRow: true},
	automaton.FaceNegX: {col: 0, row: 1, flipRow: true},
}

// CubeNetSize returns the character size of the unfolded net for N×N faces.
func CubeNetSize(n int) (width, height int) {
	return 4 * n, 3 * n
}

// NetPosition maps a cube-sphere cell to its character position in the net.
func NetPosition(n int, c automaton.Coord) (x, y int) {
	f := cubeNet[c.Layer]
	row := c.Col
	if f.flipRow {
		row = n - 1 - c.Col
	}
	return f.col*n + c.Row, f.row*n + row
}

// DrawCubeNet draws all six faces of a cube-sphere grid as an unfolded
// cross with its top-left corner at (x, y).
func DrawCubeNet(dst *Screen, g *automaton.Grid, x, y int, gl Glyphs) {
	n := g.Extents().Rows
	for face := range cubeNet {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				c := automaton.OnFace(face, i, j)
				ch := gl.Dead
				if g.Alive(c) {
					ch = gl.Alive
				}
				px, py := NetPosition(n, c)
				dst.Set(x+px, y+py, ch)
			}
		}
	}
}

// Size returns the character size that Draw needs for g.
func Size(g *automaton.Grid) (width, height int) {
	ext := g.Extents()
	if g.Kind() == automaton.CubeSphere {
		return CubeNetSize(ext.Rows)
	}
	return ext.Cols, ext.Rows
}

// Draw renders the natural view of a grid: the cube net for spheres, the
// given layer otherwise.
func Draw(dst *Screen, g *automaton.Grid, layer, x, y int, gl Glyphs) {
	if g.Kind() == automaton.CubeSphere {
		DrawCubeNet(dst, g, x, y, gl)
		return
	}
	DrawLayer(dst, g, layer, x, y, gl)
}

// String renders a grid view into a fresh buffer.
func String(g *automaton.Grid, layer int, gl Glyphs) string {
	w, h := Size(g)
	s := NewScreen(w, h)
	Draw(s, g, layer, 0, 0, gl)
	return s.String()
}
