package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxListedPaths limits how many paths the confirmation box shows.
const maxListedPaths = 10

type confirmModel struct {
	paths     []string
	confirmed bool
}

func newConfirmModel(paths []string) confirmModel {
	return confirmModel{paths: paths}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.confirmed = false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder

	b.WriteString(warnStyle.Render("Are you sure you want to completely replace your site theme assets?"))
	b.WriteString("\n")
	b.WriteString(warnStyle.Render("This is not undoable."))
	b.WriteString("\n")

	if len(m.paths) > 0 {
		b.WriteString("\n")
		for i, p := range m.paths {
			if i == maxListedPaths {
				b.WriteString(helpStyle.Render("  ... and more"))
				b.WriteString("\n")
				break
			}
			b.WriteString("  " + p + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y continue    n cancel"))

	return overlayBoxStyle.Render(b.String())
}
