package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DEFAULT_MESSAGE = "Ready."
	PROMPT_COMMAND  = ":"
)

type CommandLine struct {
	input   textinput.Model
	focused bool
	message string
}

func NewCommandLine() CommandLine {
	input := textinput.New()
	input.Prompt = ""
	return CommandLine{
		input:   input,
		message: DEFAULT_MESSAGE,
	}
}

func (c CommandLine) Init() tea.Cmd {
	return nil
}

func (c CommandLine) Update(msg tea.Msg) (CommandLine, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok && c.focused {
		switch msg.String() {
		case "esc", "ctrl+c":
			c.endInput()
			return c, nil
		case "enter":
			return c, c.onEnter()
		}

		c.input, cmd = c.input.Update(msg)

		switch msg.String() {
		case "backspace":
			if len(c.input.Value()) == 0 {
				c.endInput()
				return c, nil
			}
		case "ctrl+w":
			if len(c.input.Value()) == 0 {
				c.resetPrompt()
				return c, nil
			}
		}

		return c, cmd
	}
	return c, nil
}

func (c *CommandLine) StartInput() tea.Cmd {
	c.focused = true
	c.resetPrompt()
	return c.input.Focus()
}

func (c *CommandLine) resetPrompt() {
	c.input.SetValue(PROMPT_COMMAND)
	c.input.SetCursor(len(PROMPT_COMMAND))
}

func (c *CommandLine) onEnter() tea.Cmd {
	value := c.input.Value()
	c.endInput()
	c.message = value
	cmdAsStrings, err := parseInputAsCommand(value)
	if err != nil {
		c.message = err.Error()
		return nil
	}
	return func() tea.Msg { return commandInputMsg{cmdAsStrings} }
}

func parseInputAsCommand(input string) ([]string, error) {
	if !strings.HasPrefix(input, PROMPT_COMMAND) {
		return nil, fmt.Errorf("Error: Commands must start with '%s', got '%s'", PROMPT_COMMAND, input)
	}
	// strings.Fields drops the empty strings between repeated spaces
	return strings.Fields(input[len(PROMPT_COMMAND):]), nil
}

func (c *CommandLine) endInput() {
	c.focused = false
	c.input.Blur()
	c.message = DEFAULT_MESSAGE
}

func (c CommandLine) View() string {
	if c.focused {
		return c.input.View()
	}
	return c.message
}

func (c *CommandLine) SetMessage(msg string) {
	c.message = msg
}

func (c CommandLine) Message() string {
	return c.message
}

func (c CommandLine) Focused() bool {
	return c.focused
}

func (c CommandLine) GetHeight() int {
	return 1
}
