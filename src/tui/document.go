package tui

import (
	"github.com/Zaphoood/easyundo/src/undo"
)

const EMPTY_PLACEH = "(Empty)"

// document is the text being edited together with its history. It is shared
// between copies of Editor, so the history's provider always reads the live text.
type document struct {
	text    string
	history *undo.History[string]
	// Set by the history whenever it changes, cleared once the table has been reloaded
	stale bool
}

func newDocument(initial string, capacity int) *document {
	d := &document{text: initial}
	d.history = undo.New(undo.Options[string]{
		Provider: func() (string, error) { return d.text, nil },
		Capacity: capacity,
		OnUpdate: func() { d.stale = true },
	})
	d.history.Initialize(initial)
	return d
}

// snapshots returns the display value of every snapshot in the history
func (d *document) snapshots() []string {
	result := make([]string, 0, d.history.Len())
	for i := 0; i < d.history.Len(); i++ {
		item, _ := d.history.At(i)
		value, ok := item.Get()
		if !ok || len(value) == 0 {
			value = EMPTY_PLACEH
		}
		result = append(result, value)
	}
	return result
}
