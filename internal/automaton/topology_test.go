package automaton

import (
	"errors"
	"testing"
)

// checkNeighborhoods verifies count, bounds, self-exclusion and (unless
// skipped for a cell) distinctness for every cell of a topology.
func checkNeighborhoods(t *testing.T, topo Topology, allowRepeat func(Coord) bool) {
	t.Helper()
	ext := topo.Extents()
	for idx := 0; idx < ext.Cells(); idx++ {
		c := ext.coord(idx)
		nbs := topo.Neighbors(c)
		if len(nbs) != topo.MaxNeighbors() {
			t.Fatalf("%v: expected %d neighbors, got %d", c, topo.MaxNeighbors(), len(nbs))
		}
		seen := make(map[Coord]bool, len(nbs))
		for _, n := range nbs {
			if !ext.Contains(n) {
				t.Fatalf("%v: neighbor %v out of bounds", c, n)
			}
			if n == c {
				t.Fatalf("%v: reported as its own neighbor", c)
			}
			seen[n] = true
		}
		if len(seen) != len(nbs) && (allowRepeat == nil || !allowRepeat(c)) {
			t.Fatalf("%v: expected distinct neighbors, got %v", c, nbs)
		}
	}
}

func TestTorusNeighborhoods(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ext  Extents
	}{
		{"2D 3x3", Flat2D, Extents2D(3, 3)},
		{"2D 4x7", Flat2D, Extents2D(4, 7)},
		{"2D 10x10", Flat2D, Extents2D(10, 10)},
		{"3D 3x3x3", Flat3D, Extents3D(3, 3, 3)},
		{"3D 5x4x3", Flat3D, Extents3D(5, 4, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topo, err := NewTopology(tc.kind, tc.ext)
			if err != nil {
				t.Fatalf("NewTopology() failed: %v", err)
			}
			checkNeighborhoods(t, topo, nil)
		})
	}
}

func TestTorusSmallExtentsStayInBounds(t *testing.T) {
	for _, ext := range []Extents{Extents2D(1, 1), Extents2D(2, 2), Extents2D(1, 5)} {
		topo, _ := NewTopology(Flat2D, ext)
		for idx := 0; idx < ext.Cells(); idx++ {
			nbs := topo.Neighbors(ext.coord(idx))
			if len(nbs) != 8 {
				t.Fatalf("%v: expected 8 neighbors, got %d", ext, len(nbs))
			}
			for _, n := range nbs {
				if !ext.Contains(n) {
					t.Fatalf("%v: neighbor %v out of bounds", ext, n)
				}
			}
		}
	}
}

func TestTorus2DWraps(t *testing.T) {
	topo, _ := NewTopology(Flat2D, Extents2D(5, 6))
	got := topo.Neighbors(At(0, 0))
	want := []Coord{
		At(4, 5), At(4, 0), At(4, 1),
		At(0, 5), At(0, 1),
		At(1, 5), At(1, 0), At(1, 1),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTorus3DWraps(t *testing.T) {
	topo, _ := NewTopology(Flat3D, Extents3D(4, 4, 4))
	nbs := topo.Neighbors(At3(3, 3, 3))
	found := false
	for _, n := range nbs {
		if n == At3(0, 0, 0) {
			found = true
		}
	}
	if !found {
		t.Error("far corner should wrap to the origin")
	}
}

func TestTopologyPanicsOnInvalidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		ext   Extents
		coord Coord
	}{
		{"2D row", Flat2D, Extents2D(4, 4), At(4, 0)},
		{"2D layer", Flat2D, Extents2D(4, 4), Coord{Layer: 1}},
		{"3D z", Flat3D, Extents3D(3, 3, 3), At3(0, 0, -1)},
		{"sphere face", CubeSphere, ExtentsSphere(3), OnFace(6, 0, 0)},
		{"sphere j", CubeSphere, ExtentsSphere(3), OnFace(0, 0, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topo, _ := NewTopology(tc.kind, tc.ext)
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrInvalidCoordinate) {
					t.Fatalf("expected ErrInvalidCoordinate panic, got %v", err)
				}
			}()
			topo.Neighbors(tc.coord)
		})
	}
}

func isFaceCorner(n int) func(Coord) bool {
	return func(c Coord) bool {
		return (c.Row == 0 || c.Row == n-1) && (c.Col == 0 || c.Col == n-1)
	}
}

func TestSphereNeighborhoods(t *testing.T) {
	for _, n := range []int{3, 4, 7} {
		topo, _ := NewTopology(CubeSphere, ExtentsSphere(n))
		checkNeighborhoods(t, topo, isFaceCorner(n))
	}
}

// At a face corner three faces meet; the diagonal that leaves through both
// edges coincides with the orthogonal column crossing. Accepted limitation.
func TestSphereCornerRepeatsOneNeighbor(t *testing.T) {
	const n = 5
	topo, _ := NewTopology(CubeSphere, ExtentsSphere(n))
	for face := range faceCount {
		for _, ij := range [][2]int{{0, 0}, {0, n - 1}, {n - 1, 0}, {n - 1, n - 1}} {
			c := OnFace(face, ij[0], ij[1])
			seen := map[Coord]bool{}
			for _, nb := range topo.Neighbors(c) {
				seen[nb] = true
			}
			if len(seen) != 7 {
				t.Errorf("%v: expected 7 distinct neighbors at a cube corner, got %d", c, len(seen))
			}
		}
	}

	// +z (0,0) diagonal up-left lands where the left crossing lands.
	nbs := topo.Neighbors(OnFace(FacePosZ, 0, 0))
	if nbs[0] != OnFace(FaceNegY, 0, 0) || nbs[3] != OnFace(FaceNegY, 0, 0) {
		t.Errorf("expected both the diagonal and the left neighbor at -y(0,0), got %v and %v", nbs[0], nbs[3])
	}
}

func TestSphereEdgeCrossings(t *testing.T) {
	const n = 5
	topo, _ := NewTopology(CubeSphere, ExtentsSphere(n))
	sphere := topo.(*Sphere)

	// Middle-ish cell on each edge of every face, stepped one cell outward.
	tests := []struct {
		face   int
		edge   string
		i, j   int
		di, dj int
		want   Coord
	}{
		{FacePosZ, "i low", 0, 1, -1, 0, OnFace(FaceNegX, 4, 1)},
		{FacePosZ, "i high", 4, 1, 1, 0, OnFace(FacePosX, 0, 1)},
		{FacePosZ, "j low", 1, 0, 0, -1, OnFace(FaceNegY, 1, 0)},
		{FacePosZ, "j high", 1, 4, 0, 1, OnFace(FacePosY, 1, 4)},
		{FaceNegZ, "i low", 0, 1, -1, 0, OnFace(FacePosX, 4, 1)},
		{FaceNegZ, "i high", 4, 1, 1, 0, OnFace(FaceNegX, 0, 1)},
		{FaceNegZ, "j low", 1, 0, 0, -1, OnFace(FaceNegY, 3, 4)},
		{FaceNegZ, "j high", 1, 4, 0, 1, OnFace(FacePosY, 3, 0)},
		{FacePosY, "i low", 0, 1, -1, 0, OnFace(FaceNegX, 1, 4)},
		{FacePosY, "i high", 4, 1, 1, 0, OnFace(FacePosX, 3, 4)},
		{FacePosY, "j low", 1, 0, 0, -1, OnFace(FaceNegZ, 3, 4)},
		{FacePosY, "j high", 1, 4, 0, 1, OnFace(FacePosZ, 1, 4)},
		{FaceNegY, "i low", 0, 1, -1, 0, OnFace(FaceNegX, 3, 0)},
		{FaceNegY, "i high", 4, 1, 1, 0, OnFace(FacePosX, 1, 0)},
		{FaceNegY, "j low", 1, 0, 0, -1, OnFace(FacePosZ, 1, 0)},
		{FaceNegY, "j high", 1, 4, 0, 1, OnFace(FaceNegZ, 3, 0)},
		{FacePosX, "i low", 0, 1, -1, 0, OnFace(FacePosZ, 4, 1)},
		{FacePosX, "i high", 4, 1, 1, 0, OnFace(FaceNegZ, 0, 1)},
		{FacePosX, "j low", 1, 0, 0, -1, OnFace(FaceNegY, 4, 1)},
		{FacePosX, "j high", 1, 4, 0, 1, OnFace(FacePosY, 4, 3)},
		{FaceNegX, "i low", 0, 1, -1, 0, OnFace(FaceNegZ, 4, 1)},
		{FaceNegX, "i high", 4, 1, 1, 0, OnFace(FacePosZ, 0, 1)},
		{FaceNegX, "j low", 1, 0, 0, -1, OnFace(FaceNegY, 0, 3)},
		{FaceNegX, "j high", 1, 4, 0, 1, OnFace(FacePosY, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(FaceNames[tc.face]+" "+tc.edge, func(t *testing.T) {
			got := sphere.Resolve(tc.face, tc.i+tc.di, tc.j+tc.dj)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}

			// The crossing is reported by Neighbors too.
			found := false
			for _, nb := range topo.Neighbors(OnFace(tc.face, tc.i, tc.j)) {
				if nb == tc.want {
					found = true
				}
			}
			if !found {
				t.Errorf("Neighbors(%v) does not include %v", OnFace(tc.face, tc.i, tc.j), tc.want)
			}
		})
	}
}

// Every orthogonal crossing must be undone by a crossing back.
func TestSphereAdjacencyIsSymmetric(t *testing.T) {
	const n = 6
	topo, _ := NewTopology(CubeSphere, ExtentsSphere(n))
	sphere := topo.(*Sphere)
	steps := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for face := range faceCount {
		for i := range n {
			for j := range n {
				c := OnFace(face, i, j)
				for _, s := range steps {
					nb := sphere.Resolve(face, i+s[0], j+s[1])
					if nb.Layer == face {
						continue
					}
					back := false
					for _, r := range steps {
						if sphere.Resolve(nb.Layer, nb.Row+r[0], nb.Col+r[1]) == c {
							back = true
						}
					}
					if !back {
						t.Fatalf("%v -> %v has no orthogonal way back", c, nb)
					}
				}
			}
		}
	}
}

func TestSphereSmallFacesStayInBounds(t *testing.T) {
	for _, n := range []int{1, 2} {
		topo, _ := NewTopology(CubeSphere, ExtentsSphere(n))
		ext := topo.Extents()
		for idx := 0; idx < ext.Cells(); idx++ {
			for _, nb := range topo.Neighbors(ext.coord(idx)) {
				if !ext.Contains(nb) {
					t.Fatalf("N=%d: neighbor %v out of bounds", n, nb)
				}
			}
		}
	}
}
