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

type targetsCmd struct{}

func (*targetsCmd) Name() string     { return "targets" }
func (*targetsCmd) Synopsis() string { return "compare holdings with analyst price targets" }
func (*targetsCmd) Usage() string {
	return `sfo targets

  Shows the analyst consensus price target for each held symbol next to
  its current price, with the implied upside.
`
}

func (c *targetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	targets, err := provider.PriceTargets(ctx, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price targets: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TargetsMarkdown(stockfolio.NewTargetReport(holdings, quotes, targets)))
	return subcommands.ExitSuccess
}
