package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func scheduleClearClipboard(delay int, notify <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-notify:
			return nil
		case <-time.After(time.Duration(delay) * time.Second):
			return clearClipboardMsg{}
		}
	}
}

type clipboardCopiedMsg struct {
	clearDelay int
	// Receives once the clipboard is overwritten by someone else
	changed <-chan struct{}
}

type clearClipboardMsg struct{}

type clearClipboardAndQuitMsg struct{}

type setCommandLineMessageMsg struct {
	msg string
}

type commandInputMsg struct {
	cmd []string
}
