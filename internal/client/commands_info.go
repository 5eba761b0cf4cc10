package client

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-theme-sync/internal/tui"
)

// reportedModules are the libraries listed by systeminfo.
var reportedModules = []struct {
	name string
	path string
}{
	{name: "cobra", path: "github.com/spf13/cobra"},
	{name: "resty", path: "github.com/go-resty/resty/v2"},
	{name: "fsnotify", path: "github.com/fsnotify/fsnotify"},
	{name: "bubbletea", path: "github.com/charmbracelet/bubbletea"},
}

func (a *App) newSystemInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "systeminfo",
		Short: "Print runtime and library versions for bug reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, _ := debug.ReadBuildInfo()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Go: %s\n", runtime.Version())
			fmt.Fprintf(out, "Operating System: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			for _, m := range reportedModules {
				fmt.Fprintf(out, "%s: %s\n", m.name, moduleVersion(info, m.path))
			}

			return nil
		},
	}
}

func moduleVersion(info *debug.BuildInfo, path string) string {
	if info == nil {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderBuildInfo(a.opts.BuildInfo))
			return err
		},
	}
}
