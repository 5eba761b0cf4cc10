package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-theme-sync/models"
)

const createThemeItem = "Create a new theme"

type themeSelectModel struct {
	themes []models.Theme
	idx    int
	chosen bool
	quit   bool
}

func newThemeSelectModel(themes []models.Theme) themeSelectModel {
	return themeSelectModel{themes: themes}
}

func (m themeSelectModel) Init() tea.Cmd {
	return nil
}

// items counts the create entry plus every theme.
func (m themeSelectModel) items() int {
	return len(m.themes) + 1
}

func (m themeSelectModel) choice() ThemeChoice {
	if m.idx == 0 {
		return ThemeChoice{Create: true}
	}
	return ThemeChoice{Theme: m.themes[m.idx-1]}
}

func (m themeSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.items()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

func (m themeSelectModel) View() string {
	var b strings.Builder

	for i := range m.items() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		label := createThemeItem
		if i > 0 {
			theme := m.themes[i-1]
			label = fmt.Sprintf("%s %s", theme.Name, helpStyle.Render(fmt.Sprintf("#%d", theme.ID)))
		}
		b.WriteString(cursor + label + "\n")
	}

	return renderPage("Configure the theme to edit", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate")
}
