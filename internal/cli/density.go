package cli

import (
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-neutron/material/salt"
)

// maxDensityRows bounds the table printed by a single density run.
const maxDensityRows = 100000

var errTooManyRows = errors.New("density: too many rows")

type densityOptions struct {
	from   float64
	to     float64
	step   float64
	licl   float64
	strict bool
}

func (c *CLI) densityCommand() *cobra.Command {
	var opts densityOptions

	cmd := &cobra.Command{
		Use:   "density",
		Short: "Tabulate LiCl–LiF melt density against temperature",
		Long: `Density evaluates the Janz et al. (1979) correlation for molten LiCl–LiF.
The fit is valid between 660 °C and 1000 °C; rows outside that window are
extrapolated with a warning, or rejected with --strict.`,
		Example: `  neutron density
  neutron density --from 700 --to 900 --step 50 --licl 0.6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDensity(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.from, "from", salt.MinTemperature, "first temperature [°C]")
	cmd.Flags().Float64Var(&opts.to, "to", salt.MaxTemperature, "last temperature [°C]")
	cmd.Flags().Float64Var(&opts.step, "step", 20, "temperature step [°C]")
	cmd.Flags().Float64Var(&opts.licl, "licl", salt.DefaultLiClFraction, "LiCl molar fraction")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject temperatures outside the validity window")

	return cmd
}

func (c *CLI) runDensity(cmd *cobra.Command, opts densityOptions) error {
	if !(opts.step > 0) {
		return errors.New("--step must be > 0")
	}
	if opts.to < opts.from {
		return fmt.Errorf("--to (%g) must not be below --from (%g)", opts.to, opts.from)
	}
	span := (opts.to-opts.from)/opts.step + 1e-9
	if math.IsNaN(span) || span >= maxDensityRows {
		return fmt.Errorf("%w: range %g..%g step %g exceeds %d", errTooManyRows, opts.from, opts.to, opts.step, maxDensityRows)
	}
	n := int(span) + 1

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Temperature [C]\tDensity [g/cm3]\n"); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		temp := opts.from + float64(i)*opts.step

		var rho float64
		if opts.strict {
			var err error
			if rho, err = salt.CheckedDensity(temp, opts.licl); err != nil {
				return err
			}
		} else {
			if !salt.InRange(temp) {
				c.Logger.Warn("temperature outside correlation range, extrapolating",
					"temp", temp, "min", salt.MinTemperature, "max", salt.MaxTemperature)
			}
			rho = salt.Density(temp, opts.licl)
		}

		if _, err := fmt.Fprintf(tw, "%.2f\t%.5f\n", temp, rho); err != nil {
			return err
		}
	}
	return tw.Flush()
}
