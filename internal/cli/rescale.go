package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-neutron/tally"
	"github.com/cwbudde/algo-neutron/tally/lethargy"
)

type rescaleOptions struct {
	output  string
	config  string
	divisor float64
}

func (c *CLI) rescaleCommand() *cobra.Command {
	var opts rescaleOptions

	cmd := &cobra.Command{
		Use:   "rescale <tally.csv>",
		Short: "Rescale a tally to per-unit-lethargy values",
		Long: `Rescale reads an energy-binned tally exported as CSV, optionally divides it
by a volume, area or explicit divisor, and divides each bin by its lethargy
width ln(E_high/E_low). Use "-" to read from stdin.`,
		Example: `  neutron rescale flux.csv -o flux_lethargy.csv
  neutron rescale --divisor 31.4 flux.csv
  neutron rescale --config cell.toml flux.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRescale(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output CSV file (default stdout)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML run configuration")
	cmd.Flags().Float64Var(&opts.divisor, "divisor", 0, "normalize every bin by this value (overrides config)")

	return cmd
}

func (c *CLI) runRescale(cmd *cobra.Command, input string, opts rescaleOptions) error {
	cfg, err := LoadConfig(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("divisor") {
		d := opts.divisor
		cfg.Normalize = NormalizeConfig{Divisor: &d}
	}

	t, err := c.readTable(cmd, input)
	if err != nil {
		return err
	}

	out, err := c.rescale(t, cfg.Normalize)
	if err != nil {
		return err
	}
	if err := checkCanceled(cmd.Context()); err != nil {
		return err
	}

	return writeTable(cmd, opts.output, out)
}

func (c *CLI) readTable(cmd *cobra.Command, input string) (tally.Table, error) {
	r, err := openInput(cmd, input)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	t, err := tally.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	c.Logger.Debug("read tally", "file", input, "bins", t.Len())
	return t, nil
}

func (c *CLI) rescale(t tally.Table, n NormalizeConfig) (tally.Table, error) {
	prog := newProgress(c.Logger)

	lopts, err := n.Options()
	if err != nil {
		return nil, err
	}
	out, err := lethargy.Rescale(t, lopts...)
	if err != nil {
		return nil, err
	}

	prog.done("Rescaled to lethargy", "bins", out.Len(), "normalize", n.Source())
	return out, nil
}

func writeTable(cmd *cobra.Command, path string, t tally.Table) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return tally.WriteCSV(w, t)
}
