// Package automaton implements a discrete cellular automaton kernel that is
// generic over its neighbor topology: flat 2D and 3D tori and a six-face
// cube-mapped sphere. It contains pure logic only (no rendering, no I/O, no
// logging) so every operation is deterministic and directly testable.
package automaton

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a grid and the topology that wraps it.
type Kind uint8

const (
	// Flat2D is a rows×cols torus with an 8-cell Moore neighborhood.
	Flat2D Kind = iota + 1
	// Flat3D is an x×y×z torus with a 26-cell Moore neighborhood.
	Flat3D
	// CubeSphere is six N×N faces stitched along the edges of a cube.
	CubeSphere
)

// String returns the canonical configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Flat2D:
		return "torus2d"
	case Flat3D:
		return "torus3d"
	case CubeSphere:
		return "cubesphere"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Flat2D && k <= CubeSphere
}

// ParseKind converts a configuration name into a Kind.
// Accepts the canonical names plus a few common aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "torus2d", "flat2d", "2d":
		return Flat2D, nil
	case "torus3d", "flat3d", "3d":
		return Flat3D, nil
	case "cubesphere", "sphere", "cube":
		return CubeSphere, nil
	}
	return 0, fmt.Errorf("automaton: unknown topology %q", s)
}

// MaxNeighbors returns the size of the Moore neighborhood for a kind.
func MaxNeighbors(k Kind) int {
	switch k {
	case Flat3D:
		return 26
	case Flat2D, CubeSphere:
		return 8
	}
	return 0
}
