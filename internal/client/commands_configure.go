package client

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-theme-sync/internal/app"
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/service"
	"github.com/MKhiriev/go-theme-sync/internal/tui"
)

func (a *App) newConfigureCommand() *cobra.Command {
	var (
		apiURL string
		site   string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "configure API_KEY [THEME_ID]",
		Short: "Write config.yml, selecting or creating the theme to edit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := tui.NewPrinter(cmd.OutOrStdout(), false)

			file := config.ClientFile{APIKey: args[0], APIURL: apiURL, Site: site}
			if len(args) == 2 {
				id, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("%w: %q", ErrInvalidThemeIDArg, args[1])
				}
				file.ThemeID = id
			}

			address := apiURL
			if address == "" {
				address = config.DefaultAPIURL
			}

			log := a.logger()
			themeStore, err := a.opts.NewThemeStore(config.ClientAdapter{
				HTTPAddress:    address,
				APIKey:         file.APIKey,
				ThemeID:        file.ThemeID,
				RequestTimeout: config.DefaultRequestTimeout,
			}, log)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigureFailed, err)
			}
			themes := service.NewClientThemeService(themeStore)

			// listing doubles as the api key check
			existing, err := themes.ListThemes(cmd.Context())
			if err != nil {
				printer.Failure(app.MsgConfigureFailed)
				return fmt.Errorf("%w: %w", ErrConfigureFailed, err)
			}

			if file.ThemeID == 0 {
				choice, err := a.opts.Prompter.SelectTheme(existing)
				if err != nil {
					return fmt.Errorf("select theme: %w", err)
				}

				if choice.Create {
					name, err := a.opts.Prompter.PromptThemeName()
					if err != nil {
						return fmt.Errorf("theme name: %w", err)
					}

					choice.Theme, err = themes.CreateTheme(cmd.Context(), name)
					if err != nil {
						return fmt.Errorf("create theme: %w", err)
					}
					printer.Success(fmt.Sprintf("Created theme %q (#%d)", choice.Theme.Name, choice.Theme.ID))
				}
				file.ThemeID = choice.Theme.ID
			}

			path := a.configPath()
			if err = config.Save(path, file, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					printer.Failure(app.MsgConfigExistsHint)
				}
				return err
			}

			printer.Success("Wrote " + path)
			return nil
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "base url of the theme store api (default "+config.DefaultAPIURL+")")
	cmd.Flags().StringVar(&site, "site", "", "public url of the site, used by preview")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config.yml")

	return cmd
}

// configPath mirrors the lookup of the configured commands.
func (a *App) configPath() string {
	if a.flags.config != "" {
		return a.flags.config
	}
	return filepath.Join(a.flags.dir, config.DefaultConfigFileName)
}

func (a *App) newPreviewCommand() *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the url previewing the configured theme on the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := tui.NewPrinter(cmd.OutOrStdout(), false)

			cfg, err := a.loadConfig(printer)
			if err != nil {
				return err
			}

			previewURL, err := cfg.PreviewURL()
			if err != nil {
				return err
			}
			printer.Info(previewURL)

			if copyURL {
				if err = a.opts.CopyToClipboard(previewURL); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				printer.Success(app.MsgCopiedToClipboard)
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "copy the url to the clipboard")

	return cmd
}
