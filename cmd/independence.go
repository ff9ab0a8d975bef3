package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio"
	"github.com/avoronkov/stockfolio/renderer"
)

type independenceCmd struct {
	start  float64
	add    float64
	growth float64
	target float64
}

func (*independenceCmd) Name() string     { return "independence" }
func (*independenceCmd) Synopsis() string { return "project when the portfolio reaches a target value" }
func (*independenceCmd) Usage() string {
	return `sfo independence -target <value> [-start <value>] [-add <value>] [-growth <percent>]

  Projects year by year how the portfolio grows under a constant annual
  growth rate plus a yearly replenishment, and reports when it reaches
  the target. Without -start, the current portfolio market value is used.

Usage Examples:
$ sfo independence -target 1000000 -add 12000 -growth 8
`
}

func (c *independenceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.start, "start", 0, "Starting value (defaults to the current portfolio value)")
	f.Float64Var(&c.add, "add", 0, "Yearly replenishment")
	f.Float64Var(&c.growth, "growth", 8, "Expected yearly growth in percent")
	f.Float64Var(&c.target, "target", 0, "Target value (required)")
}

func (c *independenceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -target is required and must be positive.")
		return subcommands.ExitUsageError
	}

	start := c.start
	if start == 0 {
		value, err := currentValue(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		start = value
	}

	projection, err := stockfolio.NewIndependence(start, c.add, c.growth, c.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IndependenceMarkdown(projection))
	return subcommands.ExitSuccess
}

// currentValue prices the portfolio at current quotes.
func currentValue(ctx context.Context) (float64, error) {
	holdings, err := LoadHoldings(ctx)
	if err != nil {
		return 0, err
	}
	provider, err := NewFinnhub()
	if err != nil {
		return 0, err
	}
	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	quotes, err := provider.Quotes(ctx, symbols)
	if err != nil {
		return 0, fmt.Errorf("fetching quotes: %w", err)
	}
	report := stockfolio.NewPerformanceReport(holdings, quotes)
	value, _ := report.TotalValue.Amount().Float64()
	return value, nil
}
