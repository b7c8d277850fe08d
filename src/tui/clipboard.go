package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

func copyToClipboardCmd(value string, clearClipboardDelay int) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Init(); err != nil {
			return setCommandLineMessageMsg{fmt.Sprintf("Error: Clipboard unavailable: %s", err)}
		}
		notifyChangeChan := clipboard.Write(clipboard.FmtText, []byte(value))
		return clipboardCopiedMsg{clearClipboardDelay, notifyChangeChan}
	}
}

func clearClipboard() {
	if err := clipboard.Init(); err != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(""))
}
