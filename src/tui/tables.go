package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const NUM_COL_WIDTH = 4

var numberStyle lipgloss.Style = lipgloss.NewStyle().
	Width(NUM_COL_WIDTH).
	AlignHorizontal(lipgloss.Right)

// historyTable lists all snapshots of a history, with the cursor on the current one
type historyTable struct {
	table.Model
	styles table.Styles
}

func newHistoryTable(styles table.Styles, options ...table.Option) historyTable {
	return historyTable{
		Model:  table.New(append(options, table.WithStyles(styles))...),
		styles: styles,
	}
}

// Resize sets the number column to a fixed width and lets the value column fill the rest
func (t *historyTable) Resize(width, height int) {
	t.SetWidth(width)
	t.SetHeight(height)
	frameWidth, _ := t.styles.Header.GetFrameSize()

	t.SetColumns([]table.Column{
		{Title: "#", Width: NUM_COL_WIDTH},
		{Title: "Snapshot", Width: width - 2*frameWidth - NUM_COL_WIDTH},
	})
}

func (t *historyTable) Load(snapshots []string, position int) {
	rows := make([]table.Row, 0, len(snapshots))
	for i, s := range snapshots {
		rows = append(rows, table.Row{numberStyle.Render(fmt.Sprint(i)), s})
	}
	t.SetRows(rows)
	t.SetCursor(position)
}
