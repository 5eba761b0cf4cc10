// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/models"
)

type verbs struct {
	progress string
	done     string
	noun     string
}

var operationVerbs = map[models.Operation]verbs{
	models.OperationUpload:   {progress: "Uploading", done: "Uploaded", noun: "save"},
	models.OperationDelete:   {progress: "Removing", done: "Removed", noun: "delete"},
	models.OperationDownload: {progress: "Downloading", done: "Downloaded", noun: "download"},
}

// Printer writes timestamped progress lines of asset operations. It is safe
// for concurrent use.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	styles printerStyles
	quiet  bool
	now    func() time.Time
}

// NewPrinter returns a printer writing to out. A quiet printer only writes
// failures and warnings.
func NewPrinter(out io.Writer, quiet bool) *Printer {
	return &Printer{
		out:    out,
		styles: newPrinterStyles(lipgloss.NewRenderer(out)),
		quiet:  quiet,
		now:    time.Now,
	}
}

func (p *Printer) Start(op models.Operation, path string) {
	if p.quiet {
		return
	}
	p.line(p.styles.info, fmt.Sprintf("%s: %s", verbsOf(op).progress, path))
}

func (p *Printer) Result(res models.SyncResult) {
	v := verbsOf(res.Operation)

	switch res.Outcome {
	case models.OutcomeSuccess:
		if !p.quiet {
			p.line(p.styles.success, fmt.Sprintf("%s: %s", v.done, res.Path))
		}
	case models.OutcomeSkipped:
		if errors.Is(res.Err, catalog.ErrInvalidAssetPath) {
			p.plain(p.styles.warn, fmt.Sprintf("'%s' is not in a valid file for theme uploads", res.Path))
			p.plain(p.styles.warn, "Files need to be in one of the following subdirectories: "+strings.Join(config.ThemeRoots, " "))
			return
		}
		p.plain(p.styles.warn, fmt.Sprintf("Skipped %s: %v", res.Path, res.Err))
	case models.OutcomeFailure:
		p.line(p.styles.failure, fmt.Sprintf("Error: Could not %s %s", v.noun, res.Path))
		if res.Err != nil {
			p.plain(p.styles.warn, "Error Details: "+HumanizeError(res.Err))
		}
	}
}

func (p *Printer) Warn(path, message string) {
	p.line(p.styles.warn, fmt.Sprintf("Warning: %s: %s", path, message))
}

func (p *Printer) Done(op models.Operation, report models.SyncReport) {
	if p.quiet {
		return
	}
	if report.Len() == 0 {
		p.plain(p.styles.success, "Done.")
		return
	}

	summary := fmt.Sprintf("Done. %s %d, failed %d, skipped %d.",
		strings.ToLower(verbsOf(op).done), report.Succeeded(), report.Failed(), report.Skipped())

	style := p.styles.success
	if report.Failed() > 0 {
		style = p.styles.failure
	}
	p.plain(style, summary)
}

// Error prints a fatal error of a command.
func (p *Printer) Error(err error) {
	p.line(p.styles.failure, "Error: "+HumanizeError(err))
}

// Info prints a message that is not tied to an asset.
func (p *Printer) Info(message string) {
	p.plain(lipgloss.NewStyle(), message)
}

// Failure prints message in the failure colour.
func (p *Printer) Failure(message string) {
	p.plain(p.styles.failure, message)
}

// Success prints message in the success colour.
func (p *Printer) Success(message string) {
	p.plain(p.styles.success, message)
}

func (p *Printer) line(style lipgloss.Style, text string) {
	p.plain(style, fmt.Sprintf("[%s] %s", p.now().Format(time.TimeOnly), text))
}

func (p *Printer) plain(style lipgloss.Style, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.out, style.Render(text))
}

func verbsOf(op models.Operation) verbs {
	if v, ok := operationVerbs[op]; ok {
		return v
	}
	return verbs{progress: string(op), done: string(op), noun: string(op)}
}
