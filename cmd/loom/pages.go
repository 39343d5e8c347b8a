package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
)

type pagesOptions struct {
	Current  int
	Total    int
	Siblings int
	Format   string
}

type pagesPayload struct {
	Request     pagination.Request `json:"request" yaml:"request"`
	Items       []string           `json:"items" yaml:"items"`
	HasPrevious bool               `json:"has_previous" yaml:"has_previous"`
	HasNext     bool               `json:"has_next" yaml:"has_next"`
}

func newPagesCmd(app *AppContext) *cobra.Command {
	opts := pagesOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the compressed page sequence of a pagination control",
		Example: `  loom pages --total 100 --current 50
  loom pages --total 10 --current 1 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("total") {
				opts.Total = app.Config.Pagination.TotalPages
			}
			if !cmd.Flags().Changed("siblings") {
				opts.Siblings = app.Config.Pagination.SiblingCount
			}
			return runPages(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Current, "current", 1, "Current page")
	cmd.Flags().IntVar(&opts.Total, "total", 0, "Total pages (default from settings)")
	cmd.Flags().IntVar(&opts.Siblings, "siblings", 0, "Pages shown on each side of the current one (default from settings)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func runPages(cmd *cobra.Command, app *AppContext, opts pagesOptions) error {
	if err := validateFormat(opts.Format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}
	if opts.Current < 1 || opts.Current > opts.Total {
		return fmt.Errorf("current page %d is outside 1..%d", opts.Current, opts.Total)
	}

	req := pagination.Request{
		CurrentPage:  opts.Current,
		TotalPages:   opts.Total,
		SiblingCount: opts.Siblings,
	}
	plan, err := pagination.Compress(req)
	if err != nil {
		return err
	}
	app.CommandLogger(cmd).WithFields(map[string]any{
		"total":    req.TotalPages,
		"current":  req.CurrentPage,
		"siblings": req.SiblingCount,
		"items":    len(plan),
	}).Debug("pagination compressed")

	if opts.Format == formatText {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(plan.Strings(), " "))
		return err
	}
	return writeStructured(cmd.OutOrStdout(), opts.Format, pagesPayload{
		Request:     req,
		Items:       plan.Strings(),
		HasPrevious: pagination.HasPrevious(req.CurrentPage),
		HasNext:     pagination.HasNext(req.CurrentPage, req.TotalPages),
	})
}
