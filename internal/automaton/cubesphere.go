package automaton

// Face indices of the cube-sphere. Each face carries a right-handed frame
// (normal, i axis, j axis) in cube space:
//
//	0: +z  i=+x  j=+y
//	1: -z  i=-x  j=+y
//	2: +y  i=+x  j=+z
//	3: -y  i=+x  j=-z
//	4: +x  i=-z  j=+y
//	5: -x  i=+z  j=+y
const (
	FacePosZ = iota
	FaceNegZ
	FacePosY
	FaceNegY
	FacePosX
	FaceNegX

	faceCount = 6
)

// FaceNames labels faces by their outward normal.
var FaceNames = [faceCount]string{"+z", "-z", "+y", "-y", "+x", "-x"}

type edge uint8

const (
	edgeILow  edge = iota // i < 0
	edgeIHigh             // i >= N
	edgeJLow              // j < 0
	edgeJHigh             // j >= N
)

// edgeLink describes where stepping off one edge of a face lands.
// The coordinate running along the crossed edge is carried over (reversed
// when flip is set) and the other coordinate is pinned to the near (0) or
// far (N-1) row/column of the destination face.
type edgeLink struct {
	face     int
	depthOnI bool // the pinned coordinate is i (otherwise j)
	far      bool
	flip     bool
}

// cubeAdjacency is the face × edge stitching table. Every link has a
// matching reverse link on the destination face.
var cubeAdjacency = [faceCount][4]edgeLink{
	FacePosZ: {
		edgeILow:  {face: FaceNegX, depthOnI: true, far: true},
		edgeIHigh: {face: FacePosX, depthOnI: true},
		edgeJLow:  {face: FaceNegY},
		edgeJHigh: {face: FacePosY, far: true},
	},
	FaceNegZ: {
		edgeILow:  {face: FacePosX, depthOnI: true, far: true},
		edgeIHigh: {face: FaceNegX, depthOnI: true},
		edgeJLow:  {face: FaceNegY, far: true, flip: true},
		edgeJHigh: {face: FacePosY, flip: true},
	},
	FacePosY: {
		edgeILow:  {face: FaceNegX, far: true},
		edgeIHigh: {face: FacePosX, far: true, flip: true},
		edgeJLow:  {face: FaceNegZ, far: true, flip: true},
		edgeJHigh: {face: FacePosZ, far: true},
	},
	FaceNegY: {
		edgeILow:  {face: FaceNegX, flip: true},
		edgeIHigh: {face: FacePosX},
		edgeJLow:  {face: FacePosZ},
		edgeJHigh: {face: FaceNegZ, flip: true},
	},
	FacePosX: {
		edgeILow:  {face: FacePosZ, depthOnI: true, far: true},
		edgeIHigh: {face: FaceNegZ, depthOnI: true},
		edgeJLow:  {face: FaceNegY, depthOnI: true, far: true},
		edgeJHigh: {face: FacePosY, depthOnI: true, far: true, flip: true},
	},
	FaceNegX: {
		edgeILow:  {face: FaceNegZ, depthOnI: true, far: true},
		edgeIHigh: {face: FacePosZ, depthOnI: true},
		edgeJLow:  {face: FaceNegY, depthOnI: true, flip: true},
		edgeJHigh: {face: FacePosY, depthOnI: true},
	},
}

// Sphere is the cube-mapped sphere topology: six N×N faces stitched by
// cubeAdjacency.
//
// A diagonal offset that leaves the face through both axes is resolved
// one axis at a time, row first. At the 24 face-corner cells, where three
// faces meet, the diagonal lands on the same cell as the orthogonal column
// crossing, so those cells see 7 distinct neighbors with one repeated.
// This is a known approximation of the corner geometry.
type Sphere struct {
	n int
}

func (t *Sphere) Kind() Kind        { return CubeSphere }
func (t *Sphere) Extents() Extents  { return ExtentsSphere(t.n) }
func (t *Sphere) MaxNeighbors() int { return 8 }

// FaceSize returns N.
func (t *Sphere) FaceSize() int { return t.n }

func (t *Sphere) Neighbors(c Coord) []Coord {
	return t.AppendNeighbors(make([]Coord, 0, 8), c)
}

func (t *Sphere) AppendNeighbors(dst []Coord, c Coord) []Coord {
	if c.Layer < 0 || c.Layer >= faceCount || c.Row < 0 || c.Row >= t.n || c.Col < 0 || c.Col >= t.n {
		panic(&CoordinateError{Coord: c, Extents: t.Extents()})
	}
	for _, d := range offsets2D {
		dst = append(dst, t.Resolve(c.Layer, c.Row+d.Row, c.Col+d.Col))
	}
	return dst
}

// Resolve maps a possibly off-face position (i or j within one step of
// the face) onto the cell it denotes.
func (t *Sphere) Resolve(face, i, j int) Coord {
	n := t.n
	for range 3 {
		var e edge
		var along int
		switch {
		case i < 0:
			e, along = edgeILow, j
		case i >= n:
			e, along = edgeIHigh, j
		case j < 0:
			e, along = edgeJLow, i
		case j >= n:
			e, along = edgeJHigh, i
		default:
			return OnFace(face, i, j)
		}

		link := cubeAdjacency[face][e]
		if link.flip {
			along = n - 1 - along
		}
		depth := 0
		if link.far {
			depth = n - 1
		}
		face = link.face
		if link.depthOnI {
			i, j = depth, along
		} else {
			i, j = along, depth
		}
	}
	panic(&CoordinateError{Coord: OnFace(face, i, j), Extents: t.Extents()})
}
