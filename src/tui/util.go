package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().
	Faint(true)

//tableFocusCursor makes sure that cursor of a table.Model is visible
func tableFocusCursor(t *table.Model) {
	// Setting the cursor with t.SetCursor() may leave it off screen
	t.MoveUp(0)
	t.MoveDown(0)
}
