package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/logger"
)

// AppContext bundles what every subcommand needs after flag parsing.
type AppContext struct {
	ConfigPath string
	Config     config.Config
	Logger     *logger.Logger
	Verbose    bool
}

// logLevel is the configured level, raised to debug by --verbose.
func (a *AppContext) logLevel() string {
	if a.Verbose {
		return "debug"
	}
	return a.Config.LogLevel
}

// CommandLogger tags the shared logger with the running command.
func (a *AppContext) CommandLogger(cmd *cobra.Command) *logger.Logger {
	return a.Logger.Component("command." + cmd.Name())
}
