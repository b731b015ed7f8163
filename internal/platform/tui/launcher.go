package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/session"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Launcher builds sessions for the interactive flows. It is shared by the
// local menu and every SSH connection.
type Launcher struct {
	// ConfigPath is a custom YAML file; empty uses the search chain.
	ConfigPath string

	// Seed overrides the configured seed value when non-zero.
	Seed int64

	// TickRate overrides the configured tick rate when non-zero.
	TickRate int

	Store  *storage.Store
	Logger *log.Logger
}

// Build loads the variant's config and builds a seeded session. A non-empty
// preset replaces the configured rule.
func (l Launcher) Build(variantID string, preset config.RulePreset, width, height int) (*session.Session, WorldOptions, error) {
	v, err := registry.Create(variantID)
	if err != nil {
		return nil, WorldOptions{}, err
	}
	cfg, err := config.Load(variantID, l.ConfigPath)
	if err != nil {
		return nil, WorldOptions{}, err
	}
	switch {
	case l.Seed != 0:
		cfg.Seed.Value = l.Seed
	case cfg.Seed.Value == 0:
		cfg.Seed.Value = time.Now().UnixNano()
	}
	if preset != "" {
		if err := config.ApplyRulePreset(&cfg, preset); err != nil {
			return nil, WorldOptions{}, err
		}
	}

	sess, err := v.Build(cfg, l.Logger)
	if err != nil {
		return nil, WorldOptions{}, err
	}
	pattern, _ := automaton.LookupPattern(sess.Kind(), cfg.Seed.Pattern)

	return sess, WorldOptions{
		VariantID: variantID,
		Title:     v.Title(),
		TickRate:  l.tickRate(cfg),
		Pattern:   pattern,
		Gliders:   cfg.Seed.Gliders,
		Density:   cfg.Seed.Density,
		Seed:      cfg.Seed.Value,
		Width:     width,
		Height:    height,
		Store:     l.Store,
		Logger:    l.Logger,
	}, nil
}

// Open loads a stored snapshot into a new session. The snapshot's variant
// config supplies history and worker settings; its own rule and shape win.
func (l Launcher) Open(name string, width, height int) (*session.Session, WorldOptions, error) {
	if l.Store == nil {
		return nil, WorldOptions{}, fmt.Errorf("tui: no snapshot database open")
	}
	snap, err := l.Store.LoadSnapshot(name)
	if err != nil {
		return nil, WorldOptions{}, err
	}
	if snap == nil {
		return nil, WorldOptions{}, fmt.Errorf("tui: snapshot %q not found", name)
	}

	cfg, err := config.Load(snap.Variant, l.ConfigPath)
	if err != nil {
		return nil, WorldOptions{}, err
	}
	logger := l.Logger
	if logger != nil {
		logger = logger.With("variant", snap.Variant, "snapshot", snap.Name)
	}
	sess, err := session.FromSnapshot(snap.Data, snap.Rule, session.Options{
		HistoryCapacity: cfg.History.Capacity,
		Workers:         cfg.Sim.Workers,
		Logger:          logger,
	})
	if err != nil {
		return nil, WorldOptions{}, err
	}
	pattern, _ := automaton.LookupPattern(sess.Kind(), cfg.Seed.Pattern)

	title := snap.Name
	if info, ok := variantInfo(snap.Variant); ok {
		title = info.Title + " · " + snap.Name
	}
	return sess, WorldOptions{
		VariantID: snap.Variant,
		Title:     title,
		TickRate:  l.tickRate(cfg),
		Pattern:   pattern,
		Gliders:   cfg.Seed.Gliders,
		Density:   cfg.Seed.Density,
		Seed:      l.Seed,
		Width:     width,
		Height:    height,
		Store:     l.Store,
		Logger:    l.Logger,
	}, nil
}

func (l Launcher) tickRate(cfg config.WorldConfig) int {
	if l.TickRate != 0 {
		return l.TickRate
	}
	return cfg.Sim.TickRate
}

func variantInfo(id string) (registry.VariantInfo, bool) {
	for _, v := range registry.List() {
		if v.ID == id {
			return v, true
		}
	}
	return registry.VariantInfo{}, false
}
