package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/timeslot"
)

type slotsOptions struct {
	Interval int
	Format   string
}

func newSlotsCmd(app *AppContext) *cobra.Command {
	opts := slotsOptions{}

	cmd := &cobra.Command{
		Use:     "slots",
		Short:   "List the time picker slots for an interval",
		Example: "  loom slots --interval 60",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				opts.Interval = app.Config.TimePicker.Interval
			}
			return runSlots(cmd, app, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Interval, "interval", "i", timeslot.DefaultInterval, "Minutes between slots (default from settings)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func runSlots(cmd *cobra.Command, app *AppContext, opts slotsOptions) error {
	if err := validateFormat(opts.Format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}
	slots, err := timeslot.Generate(opts.Interval)
	if err != nil {
		return err
	}
	app.CommandLogger(cmd).WithFields(map[string]any{
		"interval": opts.Interval,
		"slots":    len(slots),
	}).Debug("slots generated")

	if opts.Format == formatText {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(slots, "\n"))
		return err
	}
	return writeStructured(cmd.OutOrStdout(), opts.Format, map[string]any{
		"interval": opts.Interval,
		"slots":    slots,
	})
}
