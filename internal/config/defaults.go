package config

import (
	_ "embed"
)

//go:embed defaults/life2d.yaml
var defaultLife2DYAML []byte

//go:embed defaults/life3d.yaml
var defaultLife3DYAML []byte

//go:embed defaults/sphere.yaml
var defaultSphereYAML []byte

// DefaultLife2DConfig returns the default flat torus configuration.
func DefaultLife2DConfig() WorldConfig {
	return WorldConfig{
		Topology: "torus2d",
		Size:     SizeConfig{Rows: 40, Cols: 60},
		Rules:    RulesConfig{Preset: string(PresetConway)},
		History:  HistoryConfig{Capacity: 1000},
		Seed:     SeedConfig{Gliders: 10, Pattern: "glider"},
		Sim:      SimConfig{TickRate: 10},
	}
}

// DefaultLife3DConfig returns the default volume configuration.
func DefaultLife3DConfig() WorldConfig {
	return WorldConfig{
		Topology: "torus3d",
		Size:     SizeConfig{Rows: 20, Cols: 20, Depth: 20},
		Rules:    RulesConfig{Preset: string(PresetLife3D)},
		History:  HistoryConfig{Capacity: 1000},
		Seed:     SeedConfig{Gliders: 5, Pattern: "glider3d"},
		Sim:      SimConfig{TickRate: 5},
	}
}

// DefaultSphereConfig returns the default cube-sphere configuration.
func DefaultSphereConfig() WorldConfig {
	return WorldConfig{
		Topology: "cubesphere",
		Size:     SizeConfig{Face: 40},
		Rules:    RulesConfig{Preset: string(PresetConway)},
		History:  HistoryConfig{Capacity: 1000},
		Seed:     SeedConfig{Density: 0.2, Pattern: "glider"},
		Sim:      SimConfig{TickRate: 10},
	}
}

// Default returns the hardcoded default for a variant.
func Default(variant string) (WorldConfig, bool) {
	switch variant {
	case "life2d":
		return DefaultLife2DConfig(), true
	case "life3d":
		return DefaultLife3DConfig(), true
	case "sphere":
		return DefaultSphereConfig(), true
	default:
		return WorldConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "life2d":
		return defaultLife2DYAML
	case "life3d":
		return defaultLife3DYAML
	case "sphere":
		return defaultSphereYAML
	default:
		return nil
	}
}
