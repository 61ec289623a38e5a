package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-neutron/chart"
)

type plotOptions struct {
	output  string
	config  string
	rescale bool
	divisor float64
	ylabel  string
	label   string
	color   string
}

func (c *CLI) plotCommand() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot <tally.csv>",
		Short: "Plot a tally spectrum on log and linear energy axes",
		Long: `Plot renders mean ± one standard deviation against energy in two panels,
one with a logarithmic and one with a linear energy axis. The output format
follows the file extension: png, svg, pdf, eps, jpg or tiff.`,
		Example: `  neutron plot flux.csv -o flux.png
  neutron plot --rescale --ylabel "Flux per lethargy" --label fuel flux.csv -o flux.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image file (required)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML run configuration")
	cmd.Flags().BoolVar(&opts.rescale, "rescale", false, "rescale to lethargy before plotting")
	cmd.Flags().Float64Var(&opts.divisor, "divisor", 0, "normalization divisor used with --rescale")
	cmd.Flags().StringVar(&opts.ylabel, "ylabel", "", "y-axis label")
	cmd.Flags().StringVar(&opts.label, "label", "", "legend label")
	cmd.Flags().StringVar(&opts.color, "color", "", "line color (hex, tab:name, C0-C9 or SVG name)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runPlot(cmd *cobra.Command, input string, opts plotOptions) error {
	cfg, err := LoadConfig(opts.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("divisor") {
		if !opts.rescale {
			return errors.New("--divisor requires --rescale")
		}
		d := opts.divisor
		cfg.Normalize = NormalizeConfig{Divisor: &d}
	}
	if flags.Changed("ylabel") {
		cfg.Plot.YLabel = opts.ylabel
	}
	if flags.Changed("label") {
		cfg.Plot.Label = opts.label
	}
	if flags.Changed("color") {
		cfg.Plot.Color = opts.color
	}

	copts, err := cfg.Plot.Options()
	if err != nil {
		return err
	}

	t, err := c.readTable(cmd, input)
	if err != nil {
		return err
	}
	if opts.rescale {
		if t, err = c.rescale(t, cfg.Normalize); err != nil {
			return err
		}
	}
	if err := checkCanceled(cmd.Context()); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	fig, err := chart.NewFigure(t, copts...)
	if err != nil {
		return err
	}
	if err := fig.Save(opts.output); err != nil {
		return err
	}
	prog.done("Wrote figure", "file", opts.output)
	return nil
}
