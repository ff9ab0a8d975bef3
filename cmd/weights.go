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

type weightsCmd struct{}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "display the portfolio allocation by market value" }
func (*weightsCmd) Usage() string {
	return `sfo weights

  Shows what share of the portfolio's current market value each holding
  represents.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {}

func (c *weightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := LoadHoldings(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	provider, err := NewFinnhub()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	quotes, err := provider.Quotes(ctx, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WeightsMarkdown(stockfolio.NewWeightReport(holdings, quotes)))
	return subcommands.ExitSuccess
}
