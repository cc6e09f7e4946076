package engine

import (
	"fmt"
	"strings"
)

// String renders the board as plain text. Just-created tiles are shown in
// brackets and empty cells as underscores.
func (e *Engine) String() string {
	if e.board == nil {
		return "Game not prepared"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "========== TURN : %4d | SCORE : %6d ==========\n\n", e.movements+1, e.score)

	for r := range e.board.tiles {
		for _, t := range e.board.tiles[r] {
			sb.WriteString("  ")
			switch {
			case t.IsVoid():
				sb.WriteString(" ____  ")
			case t.IsJustCreated():
				fmt.Fprintf(&sb, "[%04d] ", t.value)
			default:
				fmt.Fprintf(&sb, " %04d  ", t.value)
			}
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteByte('\n')
	return sb.String()
}
