package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ttfe/internal/engine"
)

const (
	cellWidth  = 8 // Width of each tile
	cellHeight = 3 // Height of each tile
)

// tileColor is a background/foreground pair in ANSI 256-color codes.
type tileColor struct {
	bg, fg string
}

// tileColors maps tile values to colors. Larger values use bigTileColor.
var tileColors = map[int]tileColor{
	engine.VoidValue: {"237", "240"},
	2:                {"255", "238"},
	4:                {"230", "238"},
	8:                {"215", "231"},
	16:               {"209", "231"},
	32:               {"203", "231"},
	64:               {"196", "231"},
	128:              {"222", "238"},
	256:              {"221", "238"},
	512:              {"220", "238"},
	1024:             {"214", "231"},
	2048:             {"208", "231"},
}

var bigTileColor = tileColor{"57", "231"}

// theme holds the styles for one terminal. SSH sessions get their own so
// color detection follows the client, not the server.
type theme struct {
	title  lipgloss.Style
	hud    lipgloss.Style
	board  lipgloss.Style
	tiles  map[int]lipgloss.Style
	big    lipgloss.Style
	status lipgloss.Style
	win    lipgloss.Style
	lose   lipgloss.Style
	help   lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	tile := func(c tileColor) lipgloss.Style {
		return r.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Background(lipgloss.Color(c.bg)).
			Foreground(lipgloss.Color(c.fg)).
			Bold(true)
	}

	t := theme{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		hud:   r.NewStyle().Foreground(lipgloss.Color("250")),
		board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		tiles:  make(map[int]lipgloss.Style, len(tileColors)),
		big:    tile(bigTileColor),
		status: r.NewStyle().Foreground(lipgloss.Color("214")),
		win:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		lose:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for v, c := range tileColors {
		t.tiles[v] = tile(c)
	}
	return t
}

// tileStyle returns the style for a tile value.
func (t theme) tileStyle(value int) lipgloss.Style {
	if s, ok := t.tiles[value]; ok {
		return s
	}
	return t.big
}

// renderTile draws one tile. Just-spawned tiles are underlined.
func (t theme) renderTile(tile engine.Tile) string {
	style := t.tileStyle(tile.Value())
	if tile.IsVoid() {
		return style.Render("·")
	}
	if tile.IsJustCreated() {
		style = style.Underline(true)
	}
	return style.Render(strconv.Itoa(tile.Value()))
}

// renderBoard draws the grid with tiles.
func (t theme) renderBoard(tiles [][]engine.Tile) string {
	rows := make([]string, len(tiles))
	for r := range tiles {
		cells := make([]string, len(tiles[r]))
		for c, tile := range tiles[r] {
			cells[c] = t.renderTile(tile)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return t.board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the score line above the board.
func (t theme) renderHUD(snap engine.Snapshot, best int) string {
	parts := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Moves: %d", snap.Movements),
		fmt.Sprintf("Max: %d", snap.MaxTile),
		fmt.Sprintf("Goal: %d", snap.WinValue),
	}
	if best > 0 {
		parts = append(parts, fmt.Sprintf("Best: %d", max(best, snap.Score)))
	}
	return t.hud.Render(strings.Join(parts, "  "))
}
