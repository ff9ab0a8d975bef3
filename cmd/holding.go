package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio/renderer"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current holdings with their cost basis" }
func (*holdingCmd) Usage() string {
	return `sfo holding

  Folds the transaction history into the current positions: share count
  and weighted average purchase price per symbol. Needs no market data.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := LoadHoldings(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(holdings))
	return subcommands.ExitSuccess
}
