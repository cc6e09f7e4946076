package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ttfe/internal/config"
	"github.com/vovakirdan/ttfe/internal/engine"
	"github.com/vovakirdan/ttfe/internal/storage"
)

// Options configures a game model.
type Options struct {
	// Store records finished games. Nil disables history.
	Store *storage.Store

	// Player is the name stored with each result.
	Player string

	// Logger receives engine traces at debug level. Nil disables tracing.
	Logger *log.Logger

	// Renderer builds the styles. Nil uses the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	engine   *engine.Engine
	cfg      config.Config
	store    *storage.Store
	feedback *feedback
	theme    theme
	keys     KeyMap
	help     help.Model
	best     int
	width    int
	height   int
	err      error
	quitting bool
}

// NewModel wires the engine to the UI and starts the first game.
// The engine's listener is replaced.
func NewModel(e *engine.Engine, cfg config.Config, opts Options) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	fb := &feedback{}
	listeners := []engine.Listener{fb}
	if opts.Store != nil {
		listeners = append(listeners, storage.NewRecorder(opts.Store, e, opts.Player, opts.Logger))
	}
	if opts.Logger != nil {
		listeners = append(listeners, engine.NewLogListener(opts.Logger))
	}
	e.SetListener(engine.Listeners(listeners...))

	m := Model{
		engine:   e,
		cfg:      cfg,
		store:    opts.Store,
		feedback: fb,
		theme:    newTheme(r),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.loadBest()
	m.err = cfg.Reset(e)
	return m
}

// loadBest refreshes the best recorded score.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.BestScore(); err == nil {
		m.best = best
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.loadBest()
		m.err = m.cfg.Reset(m.engine)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.engine.Play(dir, false)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.title.Render("2048"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.theme.lose.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	tiles, err := m.engine.Tiles()
	if err != nil {
		b.WriteString(m.theme.status.Render("Game not prepared. Press r to start"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.theme.renderHUD(m.engine.Snapshot(), m.best))
	b.WriteString("\n")
	b.WriteString(m.theme.renderBoard(tiles))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.theme.help.Render(m.help.View(m.keys)))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// statusLine renders the latest feedback.
func (m Model) statusLine() string {
	switch {
	case m.feedback.finished && m.feedback.victory:
		return m.theme.win.Render(m.feedback.status)
	case m.feedback.finished:
		return m.theme.lose.Render(m.feedback.status)
	default:
		return m.theme.status.Render(m.feedback.status)
	}
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.feedback.status
}

// Engine returns the engine the model drives.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
