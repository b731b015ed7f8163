package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a variant's world configuration.
// Search order: customPath -> ~/.life/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
func Load(variant, customPath string) (WorldConfig, error) {
	fallback, ok := Default(variant)
	if !ok {
		return WorldConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, fallback)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, fallback); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", file)); err == nil {
		if cfg, err := parse(data, fallback); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(GetDefaultYAML(variant), fallback)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over a copy of base, so omitted keys keep defaults.
// Explicit survival/birth lists without a preset drop the inherited preset.
func parse(data []byte, base WorldConfig) (WorldConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}

	var probe struct {
		Rules *RulesConfig `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &probe); err == nil && probe.Rules != nil {
		r := probe.Rules
		if r.Preset == "" && (r.Survival != "" || r.Birth != "") {
			cfg.Rules.Preset = ""
		}
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg WorldConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}
