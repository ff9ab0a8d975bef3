package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio"
)

type buyCmd struct {
	symbol string
	price  string
	shares string
	date   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a stock purchase" }
func (*buyCmd) Usage() string {
	return `sfo buy -s <symbol> -p <price> -n <shares> [-d <date>]

  Records a purchase in the portfolio:
  - symbol: The ticker symbol (e.g., "AAPL"). Uppercase letters, digits and dots.
  - price: The per-share price paid, in USD.
  - shares: The number of shares bought.
  - date: The transaction date (defaults to today).

Usage Examples:
$ sfo buy -s AAPL -p 178.5 -n 10
$ sfo buy -s MSFT -p 401 -n 2 -d 2025-03-01
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol (required)")
	f.StringVar(&c.price, "p", "", "Per-share price in USD (required)")
	f.StringVar(&c.shares, "n", "", "Number of shares (required)")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(ctx, c.symbol, c.price, c.shares, "P", c.date)
}

// recordTransaction validates the raw input, stores the transaction and
// echoes the stored record. Shared by buy and sell.
func recordTransaction(ctx context.Context, symbol, price, shares, operation, date string) subcommands.ExitStatus {
	tx, err := stockfolio.CheckTransaction(symbol, price, shares, operation, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	stored, err := s.Add(ctx, *portfolioName, tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error storing transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s\n", stored)
	return subcommands.ExitSuccess
}
