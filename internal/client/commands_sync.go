package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-theme-sync/internal/app"
	"github.com/MKhiriev/go-theme-sync/internal/service"
)

func (a *App) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the configured api key and theme are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(cmd, false)
			if err != nil {
				return err
			}

			if err = s.services.SyncService.Check(cmd.Context()); err != nil {
				s.printer.Failure(app.MsgConfigurationFail)
				s.printer.Error(err)
				return fmt.Errorf("%w: %w", ErrConfiguration, err)
			}

			s.printer.Success(app.MsgConfigurationOK)
			return nil
		},
	}
}

func (a *App) newUploadCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "upload [paths...]",
		Short: "Upload theme assets, every local asset when no path is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(cmd, quiet)
			if err != nil {
				return err
			}

			_, err = s.services.SyncService.Upload(cmd.Context(), args)
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures and the summary")

	return cmd
}

func (a *App) newReplaceCommand() *cobra.Command {
	var (
		quiet bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "replace [paths...]",
		Short: "Completely replace the remote theme assets with the local ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(cmd, quiet)
			if err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				if confirmed, err = a.opts.Prompter.ConfirmReplace(args); err != nil {
					return fmt.Errorf("confirm replace: %w", err)
				}
			}

			_, err = s.services.SyncService.Replace(cmd.Context(), args, confirmed)
			if errors.Is(err, service.ErrReplaceNotConfirmed) {
				s.printer.Info(app.MsgReplaceAborted)
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures and the summary")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *App) newRemoveCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "remove paths...",
		Short: "Remove theme assets from the remote theme",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(cmd, quiet)
			if err != nil {
				return err
			}

			_, err = s.services.SyncService.Remove(cmd.Context(), args)
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures and the summary")

	return cmd
}

func (a *App) newDownloadCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "download [paths...]",
		Short: "Download theme assets, every remote asset when no path is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(cmd, quiet)
			if err != nil {
				return err
			}

			_, err = s.services.SyncService.Download(cmd.Context(), args)
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures and the summary")

	return cmd
}

func (a *App) newWatchCommand() *cobra.Command {
	var (
		quiet      bool
		keepRemote bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Upload and remove theme assets as they change locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(cmd, quiet)
			if err != nil {
				return err
			}

			source, err := a.opts.NewWatcher(s.cfg.App.WorkDir, s.cfg.Sync.WatchDebounce, s.logger)
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer func() {
				if closeErr := source.Close(); closeErr != nil {
					s.logger.Warn().Err(closeErr).Msg("error closing change watcher")
				}
			}()

			s.printer.Info(app.MsgWatching)
			if err = s.services.SyncService.Watch(cmd.Context(), source, keepRemote); err != nil {
				return err
			}

			s.printer.Info(app.MsgWatchStopped)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures")
	cmd.Flags().BoolVar(&keepRemote, "keep-remote-deletes", false, "do not remove remote assets deleted locally")

	return cmd
}
