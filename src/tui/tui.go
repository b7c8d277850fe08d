package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/Zaphoood/easyundo/src/config"
	"github.com/Zaphoood/easyundo/src/undo"
	"github.com/Zaphoood/easyundo/src/util"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/* Model for editing a line of text while recording its history */

// Lines taken up by the input, the status line and the table header
const CHROME_HEIGHT = 3

type Editor struct {
	doc     *document
	input   textinput.Model
	table   historyTable
	cmdLine CommandLine

	clearClipboardDelay int
	// Whether anything was copied, so the clipboard is only cleared on exit if needed
	copied bool

	windowWidth  int
	windowHeight int
}

func NewEditor(cfg *config.Config) Editor {
	tableStyles := table.Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Cell:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Reverse(true).
			Bold(true).
			Foreground(lipgloss.Color("#9dcbf4")),
	}
	e := Editor{
		doc:                 newDocument(cfg.Initial, cfg.Capacity),
		input:               textinput.New(),
		table:               newHistoryTable(tableStyles),
		cmdLine:             NewCommandLine(),
		clearClipboardDelay: cfg.GetClearClipboardDelay(),
		windowWidth:         80,
		windowHeight:        24,
	}
	e.input.Prompt = "> "
	e.input.Placeholder = "Type here, press <Enter> to save"
	e.input.SetValue(cfg.Initial)

	e.resize()
	e.loadTable()

	return e
}

func (e Editor) Init() tea.Cmd {
	return nil
}

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := e.update(msg)
	if e.doc.stale {
		e.loadTable()
	}
	return e, cmd
}

func (e *Editor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.windowWidth = msg.Width
		e.windowHeight = msg.Height
		e.resize()
		return nil
	case commandInputMsg:
		return e.handleCommand(msg.cmd)
	case setCommandLineMessageMsg:
		e.cmdLine.SetMessage(msg.msg)
		return nil
	case clipboardCopiedMsg:
		e.copied = true
		message := "Copied to clipboard."
		if msg.clearDelay <= 0 {
			e.cmdLine.SetMessage(message)
			return nil
		}
		e.cmdLine.SetMessage(message + fmt.Sprintf(" (Clearing in %d seconds)", msg.clearDelay))
		return scheduleClearClipboard(msg.clearDelay, msg.changed)
	case clearClipboardMsg:
		clearClipboard()
		return nil
	case clearClipboardAndQuitMsg:
		if e.copied {
			clearClipboard()
		}
		return tea.Quit
	case tea.KeyMsg:
		if e.cmdLine.Focused() {
			e.cmdLine, cmd = e.cmdLine.Update(msg)
			return cmd
		}
		if e.input.Focused() {
			return e.handleKeyInsert(msg)
		}
		return e.handleKeyNormal(msg)
	}

	if e.input.Focused() {
		e.input, cmd = e.input.Update(msg)
		return cmd
	}
	return nil
}

// handleKeyInsert handles key events while the text input is focused
func (e *Editor) handleKeyInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		e.input.Blur()
		return nil
	case "enter":
		e.input.Blur()
		e.save()
		return nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.doc.text = e.input.Value()
	return cmd
}

// handleKeyNormal handles key events when neither the text input nor the command line is focused
func (e *Editor) handleKeyNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		e.cmdLine.SetMessage("Type  :q  and press <Enter> to exit")
	case PROMPT_COMMAND:
		return e.cmdLine.StartInput()
	case "i", "a":
		e.input.CursorEnd()
		return e.input.Focus()
	case "s":
		e.save()
	case "u":
		e.undo()
	case "ctrl+r", "r":
		e.redo()
	case "C":
		e.clear()
	case "y":
		return e.copyToClipboard()
	}
	return nil
}

func (e *Editor) handleCommand(cmd []string) tea.Cmd {
	if len(cmd) == 0 {
		return nil
	}
	switch cmd[0] {
	case "q", "quit":
		if len(cmd) > 1 {
			e.cmdLine.SetMessage("Error: Too many arguments")
			return nil
		}
		return func() tea.Msg { return clearClipboardAndQuitMsg{} }
	case "w", "save":
		e.save()
	case "u", "undo":
		e.undo()
	case "redo":
		e.redo()
	case "clear":
		e.clear()
	case "y", "copy":
		return e.copyToClipboard()
	case "init":
		e.initialize(strings.Join(cmd[1:], " "))
	default:
		e.cmdLine.SetMessage(fmt.Sprintf("Not a command: %s", cmd[0]))
	}
	return nil
}

func (e *Editor) save() {
	if err := e.doc.history.Save(); err != nil {
		log.Printf("ERROR: Failed to save snapshot: %s\n", err)
		e.cmdLine.SetMessage(fmt.Sprintf("Error: %s", err))
		return
	}
	e.cmdLine.SetMessage(fmt.Sprintf("Saved snapshot %d", e.doc.history.Position()))
}

func (e *Editor) undo() {
	item, ok := e.doc.history.Undo()
	if !ok {
		e.cmdLine.SetMessage("Already at oldest change")
		return
	}
	e.setText(item)
}

func (e *Editor) redo() {
	item, ok := e.doc.history.Redo()
	if !ok {
		e.cmdLine.SetMessage("Already at newest change")
		return
	}
	e.setText(item)
}

func (e *Editor) clear() {
	e.doc.history.Clear()
	e.setText(e.doc.history.Current())
	e.cmdLine.SetMessage("History cleared")
}

func (e *Editor) initialize(text string) {
	e.doc.history.Initialize(text)
	// Initialize does not notify, but the first row has changed
	e.doc.stale = true
	e.cmdLine.SetMessage(fmt.Sprintf("Initial snapshot set to '%s'", text))
}

func (e *Editor) setText(item undo.Snapshot[string]) {
	e.doc.text = item.OrElse("")
	e.input.SetValue(e.doc.text)
}

func (e *Editor) copyToClipboard() tea.Cmd {
	return copyToClipboardCmd(e.doc.history.Current().OrElse(""), e.clearClipboardDelay)
}

func (e *Editor) resize() {
	e.input.Width = e.windowWidth - len(e.input.Prompt) - 1
	e.table.Resize(e.windowWidth, util.Max(e.windowHeight-CHROME_HEIGHT-e.cmdLine.GetHeight(), 1))
}

func (e *Editor) loadTable() {
	e.table.Load(e.doc.snapshots(), e.doc.history.Position())
	tableFocusCursor(&e.table.Model)
	e.doc.stale = false
}

func (e Editor) status() string {
	h := e.doc.history
	capacity := "unbounded"
	if h.Capacity() > 0 {
		capacity = fmt.Sprint(h.Capacity())
	}
	return fmt.Sprintf("Snapshot %d/%d, capacity %s", h.Position(), h.LastIndex(), capacity)
}

func (e Editor) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		e.input.View(),
		statusStyle.Render(e.status()),
		e.table.View(),
		e.cmdLine.View(),
	)
}
