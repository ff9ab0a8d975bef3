package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio"
)

type sellCmd struct {
	symbol string
	price  string
	shares string
	date   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a stock sale" }
func (*sellCmd) Usage() string {
	return `sfo sell -s <symbol> -p <price> -n <shares> [-d <date>]

  Records a sale in the portfolio. Selling more shares than are held at
  that date is rejected when the holdings are computed.

Usage Examples:
$ sfo sell -s AAPL -p 190 -n 5
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol (required)")
	f.StringVar(&c.price, "p", "", "Per-share price in USD (required)")
	f.StringVar(&c.shares, "n", "", "Number of shares (required)")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(ctx, c.symbol, c.price, c.shares, "S", c.date)
}
