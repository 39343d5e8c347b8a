package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// toolkitModules are the rendering modules reported by `loom version`.
var toolkitModules = []string{
	"github.com/charmbracelet/bubbletea",
	"github.com/charmbracelet/bubbles",
	"github.com/charmbracelet/lipgloss",
}

type versionPayload struct {
	Version string            `json:"version" yaml:"version"`
	Commit  string            `json:"commit" yaml:"commit"`
	Built   string            `json:"built" yaml:"built"`
	Themes  []string          `json:"themes" yaml:"themes"`
	Helpers []string          `json:"helpers" yaml:"helpers"`
	Toolkit map[string]string `json:"toolkit,omitempty" yaml:"toolkit,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			payload := versionPayload{
				Version: version,
				Commit:  commit,
				Built:   date,
				Themes:  []string{"light", "dark"},
				Helpers: helperCommands(cmd.Root()),
				Toolkit: toolkitVersions(),
			}
			if format != formatText {
				return writeStructured(cmd.OutOrStdout(), format, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loom %s\ncommit: %s\nbuilt: %s\n", payload.Version, payload.Commit, payload.Built)
			fmt.Fprintf(out, "themes: %s\n", strings.Join(payload.Themes, ", "))
			fmt.Fprintf(out, "helpers: %s\n", strings.Join(payload.Helpers, ", "))
			for _, path := range toolkitModules {
				if v, ok := payload.Toolkit[path]; ok {
					fmt.Fprintf(out, "%s %s\n", path, v)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

// helperCommands lists the layout helper subcommands, skipping the
// gallery and housekeeping commands.
func helperCommands(root *cobra.Command) []string {
	var names []string
	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "gallery", "version", "help", "completion":
			continue
		}
		names = append(names, sub.Name())
	}
	return names
}

func toolkitVersions() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	versions := make(map[string]string)
	for _, dep := range info.Deps {
		for _, path := range toolkitModules {
			if dep.Path == path {
				versions[path] = dep.Version
			}
		}
	}
	if len(versions) == 0 {
		return nil
	}
	return versions
}
