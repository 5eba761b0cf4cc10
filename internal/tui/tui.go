// Package tui holds the interactive prompts and the progress printer of the
// themesync command line.
package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-theme-sync/models"
)

// ErrUserQuit is returned when a prompt is left without an answer.
var ErrUserQuit = errors.New("prompt cancelled by user")

// TUI runs bubbletea prompts on the given terminal streams.
type TUI struct {
	opts []tea.ProgramOption
}

// New builds prompts reading keys from in and drawing on out.
func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{opts: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, t.opts...).Run()
}

// ConfirmReplace asks whether the remote theme may be replaced. paths are
// listed when the replace is limited to them.
func (t *TUI) ConfirmReplace(paths []string) (bool, error) {
	final, err := t.run(newConfirmModel(paths))
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.confirmed, nil
}

// ThemeChoice is the answer of [TUI.SelectTheme]: either a request to create
// a new theme or an existing theme.
type ThemeChoice struct {
	Create bool
	Theme  models.Theme
}

// SelectTheme offers "Create a new theme" followed by themes, in the given
// order.
func (t *TUI) SelectTheme(themes []models.Theme) (ThemeChoice, error) {
	final, err := t.run(newThemeSelectModel(themes))
	if err != nil {
		return ThemeChoice{}, err
	}

	result, ok := final.(themeSelectModel)
	if !ok {
		return ThemeChoice{}, tea.ErrProgramKilled
	}
	if result.quit {
		return ThemeChoice{}, ErrUserQuit
	}
	return result.choice(), nil
}

// PromptThemeName asks for the name of a new theme until a non-blank one is
// entered.
func (t *TUI) PromptThemeName() (string, error) {
	final, err := t.run(newNameInputModel())
	if err != nil {
		return "", err
	}

	result, ok := final.(nameInputModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit {
		return "", ErrUserQuit
	}
	return result.value(), nil
}
