package config

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// RulePreset names a well-known rule.
type RulePreset string

const (
	PresetConway        RulePreset = "conway"
	PresetHighLife      RulePreset = "highlife"
	PresetSeeds         RulePreset = "seeds"
	PresetLife3D        RulePreset = "life3d"
	PresetLife3DCompact RulePreset = "life3d-compact"
)

var rulePresets = map[RulePreset]RulesConfig{
	PresetConway:        {Survival: "2,3", Birth: "3"},
	PresetHighLife:      {Survival: "2,3", Birth: "3,6"},
	PresetSeeds:         {Survival: "[]", Birth: "2"},
	PresetLife3D:        {Survival: "4-6", Birth: "5"},
	PresetLife3DCompact: {Survival: "4-5", Birth: "4"},
}

// RulePresets returns the preset names in display order.
func RulePresets() []RulePreset {
	return []RulePreset{PresetConway, PresetHighLife, PresetSeeds, PresetLife3D, PresetLife3DCompact}
}

// PresetsFor returns the presets meant for a topology kind, in display
// order. The 3D presets are tuned for 26 neighbors.
func PresetsFor(kind automaton.Kind) []RulePreset {
	var out []RulePreset
	for _, p := range RulePresets() {
		is3D := p == PresetLife3D || p == PresetLife3DCompact
		if is3D == (kind == automaton.Flat3D) {
			out = append(out, p)
		}
	}
	return out
}

// LookupRulePreset returns the count lists for a preset.
func LookupRulePreset(p RulePreset) (RulesConfig, bool) {
	r, ok := rulePresets[p]
	if !ok {
		return RulesConfig{}, false
	}
	r.Preset = string(p)
	return r, true
}

// ApplyRulePreset modifies the config to use a named rule.
// The compact 3D rule also switches to the seed shape it was tuned for.
func ApplyRulePreset(cfg *WorldConfig, preset RulePreset) error {
	r, ok := LookupRulePreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown rule preset %q", preset)
	}
	cfg.Rules = r

	switch preset {
	case PresetLife3DCompact:
		cfg.Seed.Pattern = "glider3d-compact"
	case PresetLife3D:
		if cfg.Seed.Pattern == "glider3d-compact" {
			cfg.Seed.Pattern = "glider3d"
		}
	}
	return nil
}
