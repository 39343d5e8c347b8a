package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "loom",
		Short:         "Loom is a catalog of terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareApp(cmd, flags, app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", fmt.Sprintf("Settings file (default %s when present)", config.DefaultPath))

	cmd.AddCommand(newPagesCmd(app))
	cmd.AddCommand(newSlotsCmd(app))
	cmd.AddCommand(newPlaceCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// prepareApp loads the settings and builds the stderr logger.
func prepareApp(cmd *cobra.Command, flags *rootFlags, app *AppContext) error {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	app.ConfigPath = path
	app.Config = *cfg
	app.Verbose = flags.verbose

	log, err := logger.New(logger.Options{
		Level:         app.logLevel(),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log
	app.CommandLogger(cmd).WithFields(map[string]any{"config": path}).Debug("settings loaded")
	return nil
}
