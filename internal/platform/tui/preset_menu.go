package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ttfe/internal/config"
)

// MenuKeyMap defines the key bindings for the preset menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// menuEntry is one selectable game setup.
type menuEntry struct {
	label string
	cfg   config.Config
}

// PresetMenuModel lets users pick the board before a game starts.
// The first entry is the loaded config, the rest are the presets.
type PresetMenuModel struct {
	entries  []menuEntry
	cursor   int
	keys     MenuKeyMap
	theme    theme
	width    int
	height   int
	selected *config.Config
	quitting bool
}

// NewPresetMenuModel creates a menu around base. Presets keep base's spawn
// values and seed.
func NewPresetMenuModel(base config.Config, r *lipgloss.Renderer) PresetMenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	entries := []menuEntry{{label: "Current settings", cfg: base}}
	for _, p := range config.Presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		entries = append(entries, menuEntry{label: strings.ToUpper(string(p[:1])) + string(p[1:]), cfg: cfg})
	}

	return PresetMenuModel{
		entries: entries,
		keys:    DefaultMenuKeyMap(),
		theme:   newTheme(r),
	}
}

// Init initializes the model.
func (m PresetMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PresetMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		cfg := m.entries[m.cursor].cfg
		m.selected = &cfg
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m PresetMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.title.Render("2 0 4 8"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.hud.Render("Select a board:"))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-18s %dx%d, goal %d", cursor, entry.label,
			entry.cfg.Board.Rows, entry.cfg.Board.Columns, entry.cfg.WinValue)
		if i == m.cursor {
			line = m.theme.status.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.help.Render("enter: play  |  ↑/↓: choose  |  q: quit"))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Selected returns the chosen config, or nil while still choosing.
func (m PresetMenuModel) Selected() *config.Config {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PresetMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunPresetMenu shows the menu and returns the chosen config, or nil if the
// user quit.
func RunPresetMenu(base config.Config) (*config.Config, error) {
	p := tea.NewProgram(
		NewPresetMenuModel(base, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PresetMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
