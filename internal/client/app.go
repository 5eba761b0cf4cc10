package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-theme-sync/internal/adapter"
	"github.com/MKhiriev/go-theme-sync/internal/app"
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/service"
	"github.com/MKhiriev/go-theme-sync/internal/tui"
	"github.com/MKhiriev/go-theme-sync/internal/watcher"
	"github.com/MKhiriev/go-theme-sync/models"
)

const appName = "themesync"

type (
	ThemeStoreFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ThemeStoreAdapter, error)
	WatcherFactory    func(root string, debounce time.Duration, logger *logger.Logger) (watcher.ChangeWatcher, error)
)

// Options configures an [App]. Zero fields fall back to the real terminal,
// HTTP adapter, filesystem watcher and system clipboard.
type Options struct {
	BuildInfo models.AppBuildInfo

	In  io.Reader
	Out io.Writer
	Err io.Writer

	Prompter        Prompter
	NewThemeStore   ThemeStoreFactory
	NewWatcher      WatcherFactory
	CopyToClipboard func(text string) error
}

type globalFlags struct {
	dir      string
	config   string
	logLevel string
}

// App is the cobra based themesync command line.
type App struct {
	opts  Options
	flags globalFlags
}

// NewApp returns the command line configured by opts.
func NewApp(opts Options) Client {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = tui.New(opts.In, opts.Out)
	}
	if opts.NewThemeStore == nil {
		opts.NewThemeStore = adapter.NewHTTPThemeStoreAdapter
	}
	if opts.NewWatcher == nil {
		opts.NewWatcher = watcher.NewChangeWatcher
	}
	if opts.CopyToClipboard == nil {
		opts.CopyToClipboard = clipboard.WriteAll
	}

	return &App{opts: opts}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.opts.In)
	root.SetOut(a.opts.Out)
	root.SetErr(a.opts.Err)

	return root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Synchronise a local theme directory with a remote theme store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.flags.dir, "dir", "", "theme working directory (default: current directory)")
	root.PersistentFlags().StringVar(&a.flags.config, "config", "", "path of config.yml (default: <dir>/config.yml)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.newCheckCommand(),
		a.newUploadCommand(),
		a.newReplaceCommand(),
		a.newRemoveCommand(),
		a.newDownloadCommand(),
		a.newWatchCommand(),
		a.newConfigureCommand(),
		a.newPreviewCommand(),
		a.newSystemInfoCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *App) logger() *logger.Logger {
	return logger.NewCLILogger(appName, a.opts.Err, a.flags.logLevel)
}

// session holds everything a configured command needs.
type session struct {
	cfg      *config.ClientConfig
	printer  *tui.Printer
	services *service.ClientServices
	logger   *logger.Logger
}

func (a *App) loadConfig(printer *tui.Printer) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(config.ClientOptions{
		WorkDir:    a.flags.dir,
		ConfigPath: a.flags.config,
	})
	if err != nil {
		printer.Failure(app.MsgConfigurationFail)
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}

func (a *App) openSession(cmd *cobra.Command, quiet bool) (*session, error) {
	printer := tui.NewPrinter(cmd.OutOrStdout(), quiet)

	cfg, err := a.loadConfig(printer)
	if err != nil {
		return nil, err
	}

	log := a.logger()
	themeStore, err := a.opts.NewThemeStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	services := service.NewClientServices(cfg, osfs.New(cfg.App.WorkDir), themeStore, printer, log)

	return &session{cfg: cfg, printer: printer, services: services, logger: log}, nil
}
