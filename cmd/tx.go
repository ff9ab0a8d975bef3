package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio/renderer"
	"github.com/avoronkov/stockfolio/store"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the portfolio's transactions" }
func (*txCmd) Usage() string {
	return `sfo tx

  Lists all recorded transactions of the portfolio, in storage order,
  with the ids needed by 'sfo rm'.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := s.Transactions(ctx, *portfolioName)
	if err != nil && err != store.ErrNotFound {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(*portfolioName, txs))
	return subcommands.ExitSuccess
}
