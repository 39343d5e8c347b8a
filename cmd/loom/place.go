package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/placement"
)

type placeOptions struct {
	Trigger  string
	Floating string
	Side     string
	Viewport string
	Scroll   string
	Pixels   bool
	Format   string
}

type placePayload struct {
	Request placement.Request `json:"request" yaml:"request"`
	Result  placement.Result  `json:"result" yaml:"result"`
	Panel   placement.Rect    `json:"panel" yaml:"panel"`
}

func newPlaceCmd(app *AppContext) *cobra.Command {
	opts := placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a floating panel goes next to a trigger",
		Long: `Compute the position of a floating panel anchored to a trigger rectangle.

Coordinates are terminal cells unless --pixels is given. The viewport
defaults to the size of the current terminal.`,
		Example: `  loom place --trigger 1,10,8,1 --floating 30,5 --side top
  loom place --trigger 40,300,120,32 --floating 320,180 --viewport 1280,800 --pixels --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("side") {
				opts.Side = app.Config.Tooltip.Side
			}
			return runPlace(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Trigger, "trigger", "", "Trigger rectangle as top,left,width,height (required)")
	cmd.Flags().StringVar(&opts.Floating, "floating", "", "Panel size as width,height (required)")
	cmd.Flags().StringVar(&opts.Side, "side", "bottom", "Preferred side: top or bottom (default from settings)")
	cmd.Flags().StringVar(&opts.Viewport, "viewport", "", "Viewport size as width,height (default terminal size)")
	cmd.Flags().StringVar(&opts.Scroll, "scroll", "0,0", "Scroll offset as x,y")
	cmd.Flags().BoolVar(&opts.Pixels, "pixels", false, "Use pixel spacing constants instead of terminal cells")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatJSON, "Output format: json or yaml")
	_ = cmd.MarkFlagRequired("trigger")
	_ = cmd.MarkFlagRequired("floating")

	return cmd
}

func runPlace(cmd *cobra.Command, app *AppContext, opts placeOptions) error {
	if err := validateFormat(opts.Format, formatJSON, formatYAML); err != nil {
		return err
	}

	req, err := buildPlaceRequest(opts)
	if err != nil {
		return err
	}

	geometry := placement.TerminalOptions()
	if opts.Pixels {
		geometry = placement.DefaultOptions()
	}
	result := placement.Compute(req, geometry)

	app.CommandLogger(cmd).WithFields(map[string]any{
		"preferred": req.Side.String(),
		"side":      result.Side.String(),
		"top":       result.Top,
		"left":      result.Left,
	}).Debug("panel placed")

	return writeStructured(cmd.OutOrStdout(), opts.Format, placePayload{
		Request: req,
		Result:  result,
		Panel:   result.Rect(req.Floating),
	})
}

func buildPlaceRequest(opts placeOptions) (placement.Request, error) {
	trigger, err := parseRect(opts.Trigger, "trigger")
	if err != nil {
		return placement.Request{}, err
	}
	floating, err := parseSize(opts.Floating, "floating")
	if err != nil {
		return placement.Request{}, err
	}
	side, err := placement.ParseSide(opts.Side)
	if err != nil {
		return placement.Request{}, err
	}
	scroll, err := parsePoint(opts.Scroll, "scroll")
	if err != nil {
		return placement.Request{}, err
	}

	var viewport placement.Size
	if opts.Viewport == "" {
		w, h := terminalSize()
		viewport = placement.Size{Width: float64(w), Height: float64(h)}
	} else if viewport, err = parseSize(opts.Viewport, "viewport"); err != nil {
		return placement.Request{}, err
	}

	return placement.Request{
		Trigger:  trigger,
		Floating: floating,
		Side:     side,
		Viewport: viewport,
		Scroll:   scroll,
	}, nil
}
