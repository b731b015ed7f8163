package automaton

import (
	"errors"
	"fmt"
	"testing"
)

func newSim(t testing.TB, kind Kind, ext Extents, rules RuleSet, opts ...Option) (*Simulator, *Grid) {
	t.Helper()
	g, err := NewGrid(kind, ext)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	topo, err := TopologyFor(g)
	if err != nil {
		t.Fatalf("TopologyFor() failed: %v", err)
	}
	sim, err := NewSimulator(topo, rules, opts...)
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	return sim, g
}

// shifted returns coords translated by (dr, dc) on a rows×cols torus, keeping
// the layer. Results are in storage order to compare with AliveCoords.
func shifted(cells []Coord, dr, dc int, ext Extents) *Grid {
	g := &Grid{kind: Flat2D, ext: ext, cells: make([]uint8, ext.Cells())}
	for _, c := range cells {
		c.Row = ((c.Row+dr)%ext.Rows + ext.Rows) % ext.Rows
		c.Col = ((c.Col+dc)%ext.Cols + ext.Cols) % ext.Cols
		g.Set(c, true)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	sim, g := newSim(t, Flat2D, Extents2D(5, 5), Conway())
	g.Set(At(1, 2), true)
	g.Set(At(2, 2), true)
	g.Set(At(3, 2), true)

	next, err := sim.Step(g)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	for _, c := range []Coord{At(2, 1), At(2, 2), At(2, 3)} {
		if !next.Alive(c) {
			t.Errorf("expected %v alive after one step", c)
		}
	}
	if next.Population() != 3 {
		t.Errorf("expected population 3, got %d", next.Population())
	}

	back, _ := sim.Step(next)
	if !back.Equal(g) {
		t.Error("blinker should return to its start after two steps")
	}
}

func TestGliderTranslates(t *testing.T) {
	tests := []struct {
		name    string
		origin  Coord
		heading Orientation
		dr, dc  int
	}{
		{"interior south-east", At(3, 3), HeadingSE, 1, 1},
		{"wraps across both edges", At(8, 8), HeadingSE, 1, 1},
		{"south-west", At(4, 4), HeadingSW, 1, -1},
		{"north-east", At(4, 4), HeadingNE, -1, 1},
		{"north-west", At(0, 0), HeadingNW, -1, -1},
	}
	ext := Extents2D(10, 10)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim, g := newSim(t, Flat2D, ext, Conway())
			for _, off := range Glider2D.Oriented(Flat2D, tc.heading).Cells {
				c := tc.origin.Add(off)
				g.Set(At(c.Row%ext.Rows, c.Col%ext.Cols), true)
			}

			got, err := sim.Run(g, 4)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			want := shifted(g.AliveCoords(), tc.dr, tc.dc, ext)
			if !got.Equal(want) {
				t.Errorf("expected %v, got %v", want.AliveCoords(), got.AliveCoords())
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	sim, g := newSim(t, Flat2D, Extents2D(8, 8), Conway())
	StampGlider(g, At(2, 2), HeadingSE)
	before := g.Clone()

	if _, err := sim.Step(g); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if !g.Equal(before) {
		t.Error("Step modified its input grid")
	}
}

func TestStep3DNeighborhood(t *testing.T) {
	// Birth on exactly one neighbor grows a lone cell into its full shell.
	rules := MustRuleSet(nil, []int{1}, 26)
	sim, g := newSim(t, Flat3D, Extents3D(5, 5, 5), rules)
	g.Set(At3(2, 2, 2), true)

	next, err := sim.Step(g)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if next.Population() != 26 {
		t.Errorf("expected 26 live cells, got %d", next.Population())
	}
	if next.Alive(At3(2, 2, 2)) {
		t.Error("center should die with an empty survival set")
	}
}

func TestStepSphereCrossesFaces(t *testing.T) {
	rules := MustRuleSet(nil, []int{1}, 8)
	sim, g := newSim(t, CubeSphere, ExtentsSphere(4), rules)

	g.Set(OnFace(FacePosZ, 0, 2), true)
	next, _ := sim.Step(g)
	if next.Population() != 8 {
		t.Errorf("edge cell: expected 8 births, got %d", next.Population())
	}
	if next.LayerPopulation(FaceNegX) != 3 {
		t.Errorf("expected 3 births on -x, got %d", next.LayerPopulation(FaceNegX))
	}

	// -y(0,0) sees the +z corner twice, counts 2 and stays dead.
	g.Clear()
	g.Set(OnFace(FacePosZ, 0, 0), true)
	next, _ = sim.Step(g)
	if next.Population() != 6 {
		t.Errorf("corner cell: expected 6 births, got %d", next.Population())
	}
	if next.Alive(OnFace(FaceNegY, 0, 0)) {
		t.Error("-y(0,0) counts the corner twice and should not be born")
	}
}

func TestSphereGliderOnFace(t *testing.T) {
	sim, g := newSim(t, CubeSphere, ExtentsSphere(16), Conway())
	StampGlider(g, OnFace(FacePosY, 4, 4), HeadingSE)

	got, err := sim.Run(g, 4)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	want := g.Clone()
	want.Clear()
	StampGlider(want, OnFace(FacePosY, 5, 5), HeadingSE)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want.AliveCoords(), got.AliveCoords())
	}
}

func TestParallelStepMatchesSequential(t *testing.T) {
	ext := Extents2D(128, 96)
	seq, g := newSim(t, Flat2D, ext, Conway())
	par, _ := newSim(t, Flat2D, ext, Conway(), WithWorkers(4))
	FillRandom(g, 0.35, NewRNG(7))

	a, b := g, g
	for i := 0; i < 10; i++ {
		a, _ = seq.Step(a)
		b, _ = par.Step(b)
		if !a.Equal(b) {
			t.Fatalf("generation %d differs between sequential and parallel step", i+1)
		}
	}
}

func TestStepRejectsMismatchedGrid(t *testing.T) {
	sim, _ := newSim(t, Flat2D, Extents2D(5, 5), Conway())
	other, _ := NewGrid(Flat2D, Extents2D(5, 6))

	if _, err := sim.Step(other); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestSimulatorRuleMustMatchTopology(t *testing.T) {
	topo, _ := NewTopology(Flat3D, Extents3D(3, 3, 3))
	if _, err := NewSimulator(topo, Conway()); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule for 8-neighbor rule on 3D, got %v", err)
	}

	sim, err := NewSimulator(topo, MustRuleSet([]int{4, 5, 6}, []int{5}, 26))
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	if err := sim.SetRules(Conway()); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("SetRules: expected ErrInvalidRule, got %v", err)
	}
}

func BenchmarkStep(b *testing.B) {
	ext := Extents2D(512, 512)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("%d_workers", workers), func(b *testing.B) {
			sim, g := newSim(b, Flat2D, ext, Conway(), WithWorkers(workers))
			FillRandom(g, 0.3, NewRNG(1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, _ = sim.Step(g)
			}
		})
	}
}
