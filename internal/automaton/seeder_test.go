package automaton

import (
	"slices"
	"testing"
)

func TestStampGliderSkipsOutOfBounds(t *testing.T) {
	g, _ := NewGrid(Flat2D, Extents2D(5, 5))

	if n := StampGlider(g, At(3, 3), HeadingSE); n != 1 {
		t.Errorf("expected 1 cell inside the grid, got %d", n)
	}
	if !g.Alive(At(3, 4)) || g.Population() != 1 {
		t.Errorf("expected only (3,4) alive, got %v", g.AliveCoords())
	}

	g.Clear()
	if n := StampGlider(g, At(-1, -1), HeadingSE); n != 3 {
		t.Errorf("expected 3 cells for a negative origin, got %d", n)
	}
}

func TestStampGliderStaysOnFace(t *testing.T) {
	g, _ := NewGrid(CubeSphere, ExtentsSphere(4))

	n := StampGlider(g, OnFace(FacePosX, 2, 2), HeadingSE)
	if n != 1 {
		t.Errorf("expected 1 cell on face, got %d", n)
	}
	if g.LayerPopulation(FacePosX) != g.Population() {
		t.Error("partial stamp leaked onto another face")
	}
}

func TestPatternOrientations(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		o    Orientation
		want []Coord
	}{
		{"2D SW mirrors columns", Flat2D, HeadingSW, []Coord{At(0, 1), At(1, 0), At(2, 2), At(2, 1), At(2, 0)}},
		{"2D NE mirrors rows", Flat2D, HeadingNE, []Coord{At(2, 1), At(1, 2), At(0, 0), At(0, 1), At(0, 2)}},
		{"3D xz plane", Flat3D, PlaneXZ, []Coord{At3(0, 0, 0), At3(1, 0, 0), At3(0, 0, 1), At3(0, 1, 0), At3(1, 0, 1)}},
		{"3D yz plane", Flat3D, PlaneYZ, []Coord{At3(0, 0, 0), At3(0, 1, 0), At3(0, 0, 1), At3(1, 0, 0), At3(0, 1, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Glider2D
			if tc.kind == Flat3D {
				p = Glider3DCompact
			}
			got := p.Oriented(tc.kind, tc.o).Cells
			if !slices.Equal(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLookupPattern(t *testing.T) {
	if p, ok := LookupPattern(Flat3D, ""); !ok || p.Name != Glider3D.Name {
		t.Errorf("default 3D pattern: got %q", p.Name)
	}
	if p, ok := LookupPattern(CubeSphere, "glider"); !ok || p.Name != Glider2D.Name {
		t.Errorf("sphere glider: got %q", p.Name)
	}
	if _, ok := LookupPattern(Flat3D, "glider3d-compact"); !ok {
		t.Error("compact 3D glider should be available for volumes")
	}
	if _, ok := LookupPattern(Flat2D, "glider3d"); ok {
		t.Error("3D pattern should not seed a flat grid")
	}
	if _, ok := LookupPattern(Flat2D, "spaceship"); ok {
		t.Error("unknown pattern should not resolve")
	}
}

func TestScatterRandomDeterministic(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ext  Extents
	}{
		{"2D", Flat2D, Extents2D(40, 30)},
		{"3D", Flat3D, Extents3D(12, 10, 8)},
		{"sphere", CubeSphere, ExtentsSphere(10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := NewGrid(tc.kind, tc.ext)
			b, _ := NewGrid(tc.kind, tc.ext)

			pa := ScatterRandom(a, 20, NewRNG(1234))
			pb := ScatterRandom(b, 20, NewRNG(1234))

			if !a.Equal(b) || !slices.Equal(pa, pb) {
				t.Fatal("same seed produced different scatters")
			}
			if a.Population() == 0 {
				t.Fatal("scatter stamped nothing")
			}

			c, _ := NewGrid(tc.kind, tc.ext)
			ScatterRandom(c, 20, NewRNG(99))
			if c.Equal(a) {
				t.Error("different seeds produced identical scatters")
			}
		})
	}
}

func TestScatterRandomStampsWholePatterns(t *testing.T) {
	tests := []struct {
		kind Kind
		ext  Extents
	}{
		{Flat2D, Extents2D(6, 7)},
		{Flat3D, Extents3D(5, 5, 5)},
		{CubeSphere, ExtentsSphere(5)},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g, _ := NewGrid(tc.kind, tc.ext)
			rng := NewRNG(5)
			p := DefaultGlider(tc.kind)
			for range 50 {
				g.Clear()
				placed := ScatterRandom(g, 1, rng)
				q := p.Oriented(tc.kind, placed[0].Orientation)
				for _, off := range q.Cells {
					c := placed[0].Origin.Add(off)
					if !g.InBounds(c) {
						t.Fatalf("origin %v: cell %v out of bounds", placed[0].Origin, c)
					}
				}
				if g.Population() != len(p.Cells) {
					t.Fatalf("expected a whole %d-cell stamp, got %d", len(p.Cells), g.Population())
				}
			}
		})
	}
}

func TestScatterRandomSkipsGridsSmallerThanPattern(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ext  Extents
	}{
		{"2x2", Flat2D, Extents2D(2, 2)},
		{"3x3", Flat2D, Extents2D(3, 3)},
		{"1x20", Flat2D, Extents2D(1, 20)},
		{"20x1", Flat2D, Extents2D(20, 1)},
		{"3d_2x2x2", Flat3D, Extents3D(2, 2, 2)},
		{"3d_thin", Flat3D, Extents3D(10, 10, 1)},
		{"sphere_3", CubeSphere, ExtentsSphere(3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.kind, tc.ext)
			if err != nil {
				t.Fatalf("NewGrid() failed: %v", err)
			}
			for seed := range int64(20) {
				placed := ScatterRandom(g, 5, NewRNG(seed))
				if len(placed) != 0 {
					t.Fatalf("seed %d: expected no placements, got %v", seed, placed)
				}
			}
			if g.Population() != 0 {
				t.Errorf("expected population 0, got %d", g.Population())
			}
		})
	}
}

func TestScatterRandomSmallestFittingGrid(t *testing.T) {
	tests := []struct {
		kind Kind
		ext  Extents
	}{
		{Flat2D, Extents2D(4, 4)},
		{Flat3D, Extents3D(4, 4, 4)},
		{CubeSphere, ExtentsSphere(4)},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g, _ := NewGrid(tc.kind, tc.ext)
			p := DefaultGlider(tc.kind)
			placed := ScatterRandom(g, 1, NewRNG(8))
			if len(placed) != 1 {
				t.Fatalf("expected 1 placement, got %d", len(placed))
			}
			if o := placed[0].Origin; o.Row != 0 || o.Col != 0 {
				t.Errorf("expected origin at row 0 col 0, got %v", o)
			}
			if g.Population() != len(p.Cells) {
				t.Errorf("expected a whole %d-cell stamp, got %d", len(p.Cells), g.Population())
			}
		})
	}
}

func TestFillRandom(t *testing.T) {
	g, _ := NewGrid(Flat2D, Extents2D(100, 100))

	n := FillRandom(g, 0.2, NewRNG(3))
	if n != g.Population() {
		t.Errorf("returned %d but population is %d", n, g.Population())
	}
	if n < 1700 || n > 2300 {
		t.Errorf("expected roughly 2000 live cells at 20%%, got %d", n)
	}

	g.Clear()
	if FillRandom(g, -1, NewRNG(3)) != 0 {
		t.Error("negative density should fill nothing")
	}
	if FillRandom(g, 2, NewRNG(3)) != g.Len() {
		t.Error("density above 1 should fill everything")
	}
}

func TestClampGliderCount(t *testing.T) {
	tests := []struct {
		kind Kind
		in   int
		want int
	}{
		{Flat2D, 0, 1},
		{Flat2D, 50, 50},
		{Flat2D, 5000, 1000},
		{CubeSphere, 2000, 1000},
		{Flat3D, 500, 100},
		{Flat3D, -4, 1},
	}

	for _, tc := range tests {
		if got := ClampGliderCount(tc.kind, tc.in); got != tc.want {
			t.Errorf("ClampGliderCount(%s, %d): expected %d, got %d", tc.kind, tc.in, tc.want, got)
		}
	}
}
