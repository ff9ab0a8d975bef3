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

type trendsCmd struct{}

func (*trendsCmd) Name() string     { return "trends" }
func (*trendsCmd) Synopsis() string { return "display analyst recommendation trends for the holdings" }
func (*trendsCmd) Usage() string {
	return `sfo trends

  Shows the latest analyst recommendation counts (strong buy through
  strong sell) for every held symbol.
`
}

func (c *trendsCmd) SetFlags(f *flag.FlagSet) {}

func (c *trendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var trends []stockfolio.Trend
	for _, h := range holdings {
		ts, err := provider.Trends(ctx, h.Symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching trends for %s: %v\n", h.Symbol, err)
			return subcommands.ExitFailure
		}
		// only the most recent month per symbol
		if len(ts) > 0 {
			trends = append(trends, ts[0])
		}
	}

	printMarkdown(renderer.TrendsMarkdown(trends))
	return subcommands.ExitSuccess
}
