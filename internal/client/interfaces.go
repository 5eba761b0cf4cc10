// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-theme-sync/internal/tui"
	"github.com/MKhiriev/go-theme-sync/models"
)

// Client defines the lifecycle contract of a runnable command line.
type Client interface {
	// Run executes the command described by args and blocks until it
	// finished or ctx was cancelled.
	Run(ctx context.Context, args []string) error
}

// Prompter asks the user the interactive questions of replace and configure.
// [tui.TUI] is the terminal implementation.
type Prompter interface {
	ConfirmReplace(paths []string) (bool, error)
	SelectTheme(themes []models.Theme) (tui.ThemeChoice, error)
	PromptThemeName() (string, error)
}
