package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyNameHint = "Oops, the theme needs a name (you can change it later)."

type nameInputModel struct {
	input textinput.Model
	hint  string
	done  bool
	quit  bool
}

func newNameInputModel() nameInputModel {
	input := textinput.New()
	input.Placeholder = "My theme"
	input.CharLimit = 255
	input.Width = 50
	input.Focus()

	return nameInputModel{input: input}
}

func (m nameInputModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m nameInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m nameInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.value() == "" {
				m.hint = emptyNameHint
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), keyMsg.Type == tea.KeyCtrlC:
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.value() != "" {
		m.hint = ""
	}
	return m, cmd
}

func (m nameInputModel) View() string {
	body := "Name: [" + m.input.View() + "]"
	if m.hint != "" {
		body += "\n\n" + errorStyle.Render(m.hint)
	}
	return renderPage("What would you like to name your theme?", body, "enter: create │ esc: cancel")
}
