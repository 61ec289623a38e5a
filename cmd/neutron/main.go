// Command neutron post-processes neutron-transport tallies.
//
// Usage:
//
//	neutron rescale [flags] <tally.csv>
//	neutron plot [flags] -o <figure.png> <tally.csv>
//	neutron density [flags]
//
// Examples:
//
//	neutron rescale --divisor 31.4 flux.csv -o flux_lethargy.csv
//	neutron plot --rescale --label fuel flux.csv -o flux.svg
//	neutron density --from 700 --to 900 --step 50
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-neutron/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
