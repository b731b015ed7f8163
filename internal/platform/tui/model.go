package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/render"
	"github.com/vovakirdan/tui-life/internal/session"
	"github.com/vovakirdan/tui-life/internal/storage"
)

const (
	minTickRate = 1
	maxTickRate = 60

	// HUD line, status line and help line.
	chromeLines = 3
)

// WorldOptions configures a world view.
type WorldOptions struct {
	VariantID string
	Title     string

	// TickRate is generations per second while running.
	TickRate int

	// Pattern and Gliders drive the scatter key, Density the fill key.
	Pattern automaton.Pattern
	Gliders int
	Density float64

	// Seed feeds the generator behind scatter and fill. 0 picks one from
	// the clock.
	Seed int64

	Width  int
	Height int

	// Embedded views hand control back to a menu on esc.
	Embedded bool

	Store  *storage.Store
	Logger *log.Logger
}

// WorldModel is the Bubble Tea model that drives one session.
type WorldModel struct {
	sess   *session.Session
	opts   WorldOptions
	screen *render.Screen
	keys   WorldKeyMap
	help   help.Model
	theme  Theme
	rng    *rand.Rand
	logger *log.Logger

	layer    int
	running  bool
	tickSeq  int
	tickRate int
	status   string
	err      error

	quitting   bool
	backToMenu bool
}

// NewWorldModel creates a world view over sess.
func NewWorldModel(sess *session.Session, opts WorldOptions) WorldModel {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate == 0 {
		opts.TickRate = 10
	}
	if opts.Pattern.Name == "" {
		opts.Pattern = automaton.DefaultGlider(sess.Kind())
	}
	if opts.Gliders == 0 {
		opts.Gliders = 5
	}
	if opts.Density == 0 {
		opts.Density = 0.2
	}
	if opts.Title == "" {
		opts.Title = opts.VariantID
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return WorldModel{
		sess:     sess,
		opts:     opts,
		screen:   render.NewScreen(0, 0),
		keys:     DefaultWorldKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		rng:      automaton.NewRNG(opts.Seed),
		logger:   logger,
		tickRate: clampTickRate(opts.TickRate),
	}
}

func clampTickRate(r int) int {
	return min(max(r, minTickRate), maxTickRate)
}

// Init starts paused; no tick loop runs until the user presses run.
func (m WorldModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m WorldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WorldModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		if m.opts.Embedded {
			m.running = false
			m.backToMenu = true
			return m, nil
		}

	case key.Matches(msg, m.keys.Run):
		m.running = !m.running
		if m.running {
			m.tickSeq++
			m.status = "running"
			return m, tickCmd(m.tickSeq, m.tickRate)
		}
		m.status = "paused"

	case key.Matches(msg, m.keys.Next):
		m.running = false
		if _, err := m.sess.Next(); err != nil {
			m.err = err
		}
		m.status = ""

	case key.Matches(msg, m.keys.Back):
		m.running = false
		m.sess.Back()
		m.status = ""

	case key.Matches(msg, m.keys.Step):
		m.running = false
		if _, err := m.sess.Step(); err != nil {
			m.err = err
		}
		m.status = "branched"

	case key.Matches(msg, m.keys.Clear):
		m.running = false
		m.sess.Clear()
		m.status = "cleared"

	case key.Matches(msg, m.keys.Scatter):
		placed := m.sess.Scatter(m.opts.Pattern, m.opts.Gliders, m.rng)
		m.status = fmt.Sprintf("scattered %d × %s", len(placed), m.opts.Pattern.Name)

	case key.Matches(msg, m.keys.Fill):
		n := m.sess.FillRandom(m.opts.Density, m.rng)
		m.status = fmt.Sprintf("filled %d cells", n)

	case key.Matches(msg, m.keys.LayerUp):
		m.layer = m.clampLayer(m.layer + 1)

	case key.Matches(msg, m.keys.LayerDown):
		m.layer = m.clampLayer(m.layer - 1)

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = clampTickRate(m.tickRate + 1)
		m.status = fmt.Sprintf("%d gen/s", m.tickRate)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = clampTickRate(m.tickRate - 1)
		m.status = fmt.Sprintf("%d gen/s", m.tickRate)

	case key.Matches(msg, m.keys.Save):
		m.saveSnapshot()

	case key.Matches(msg, m.keys.Dump):
		m.writeDump()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// clampLayer keeps the z-slice in range. Sphere views show every face at
// once, so they have a single layer index.
func (m WorldModel) clampLayer(l int) int {
	if m.sess.Kind() != automaton.Flat3D {
		return 0
	}
	return min(max(l, 0), m.sess.Dimensions().Layers-1)
}

// handleTick advances one generation while running.
func (m WorldModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.running || msg.Seq != m.tickSeq {
		return m, nil
	}
	if _, err := m.sess.Next(); err != nil {
		m.running = false
		m.err = err
		return m, nil
	}
	return m, tickCmd(m.tickSeq, m.tickRate)
}

// saveSnapshot stores the active frame under a generated name.
func (m *WorldModel) saveSnapshot() {
	if m.opts.Store == nil {
		m.err = errors.New("no snapshot database open")
		return
	}
	st := m.sess.Stats()
	name := fmt.Sprintf("%s-g%d-%s", m.opts.VariantID, st.Generation, time.Now().Format("20060102-150405"))
	_, err := m.opts.Store.SaveSnapshot(storage.Snapshot{
		Name:       name,
		Variant:    m.opts.VariantID,
		Kind:       m.sess.Kind().String(),
		Generation: st.Generation,
		Population: st.Population,
		Rule:       st.Rule,
		Data:       m.sess.Snapshot(),
	})
	if err != nil {
		m.err = err
		m.logger.Error("snapshot save failed", "error", err)
		return
	}
	m.status = "saved " + name
	m.logger.Info("snapshot saved", "name", name, "generation", st.Generation)
}

// writeDump writes the current view as plain text to ~/.life/dumps.
func (m *WorldModel) writeDump() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.err = err
		return
	}
	dir := filepath.Join(home, ".life", "dumps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.err = err
		return
	}

	st := m.sess.Stats()
	filename := fmt.Sprintf("%s_g%d_%s.txt", m.opts.VariantID, st.Generation, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	text := render.String(m.sess.Current().Grid, m.layer, render.DefaultGlyphs)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		m.err = err
		return
	}
	m.status = "wrote " + path
}

// View renders the HUD, the world and the help bar.
func (m WorldModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")

	g := m.sess.Current().Grid
	w, h := render.Size(g)
	if m.opts.Width > 0 {
		w = min(w, m.opts.Width)
	}
	if m.opts.Height > 0 {
		h = min(h, max(m.opts.Height-chromeLines, 1))
	}
	m.screen.Resize(w, h)
	m.screen.Clear()
	render.Draw(m.screen, g, m.layer, 0, 0, cellGlyphs)
	b.WriteString(RenderScreen(m.screen, m.theme))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.Error.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// hud renders the one-line status header.
func (m WorldModel) hud() string {
	st := m.sess.Stats()
	sep := m.theme.HUDSeparator.Render(" │ ")
	field := func(label string, value any) string {
		return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		m.theme.HUDTitle.Render(m.opts.Title),
		field("gen", st.Generation),
		field("pop", st.Population),
		field("rule", st.Rule),
		field("hist", fmt.Sprintf("%d/%d", st.HistoryIndex+1, st.HistoryLen)),
	}
	if m.sess.Kind() == automaton.Flat3D {
		parts = append(parts, field("z", fmt.Sprintf("%d/%d", m.layer+1, m.sess.Dimensions().Layers)))
	}
	if m.running {
		parts = append(parts, m.theme.HUDRunning.Render(fmt.Sprintf("▶ %d/s", m.tickRate)))
	} else {
		parts = append(parts, m.theme.HUDPaused.Render("❚❚ paused"))
	}
	return strings.Join(parts, sep)
}

// Session returns the driven session.
func (m WorldModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m WorldModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m WorldModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a full-screen Bubble Tea program for one session.
func Run(sess *session.Session, opts WorldOptions) error {
	model := NewWorldModel(sess, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
