package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/gallery"
	"github.com/alexisbeaulieu97/loom/internal/logger"
)

type galleryOptions struct {
	LogFile string
	Watch   bool
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse every component in an interactive catalog",
		Long: `Launch the interactive component gallery.

The terminal belongs to the gallery while it runs, so logs go to --log-file.
The settings file is watched and re-applied when it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Append logs to this file")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload the settings file when it changes")

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext, opts galleryOptions) error {
	log, closer, err := galleryLogger(opts.LogFile, app.logLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	width, height := terminalSize()
	model := gallery.New(gallery.Options{
		Config: app.Config,
		Logger: log,
		Width:  width,
		Height: height,
	})

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if opts.Watch {
		if err := watchSettings(ctx, app.ConfigPath, program); err != nil {
			log.Warn(fmt.Sprintf("settings will not reload: %v", err))
		}
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	log.Info("gallery closed")
	return nil
}

func galleryLogger(path, level string) (*logger.Logger, io.Closer, error) {
	if path == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}
	return logger.OpenFile(path, level)
}

// watchSettings feeds reloads of path into program. Nothing is watched when
// the file does not exist.
func watchSettings(ctx context.Context, path string, program *tea.Program) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return config.Watch(ctx, path, func(cfg *config.Config, err error) {
		program.Send(gallery.Reloaded(cfg, err))
	})
}
