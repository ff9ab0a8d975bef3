package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/avoronkov/stockfolio"
	"github.com/avoronkov/stockfolio/finnhub"
	"github.com/avoronkov/stockfolio/renderer"
)

type actualCmd struct {
	eur bool
}

func (*actualCmd) Name() string     { return "actual" }
func (*actualCmd) Synopsis() string { return "display the portfolio valued at current quotes" }
func (*actualCmd) Usage() string {
	return `sfo actual [-eur]

  Values every holding at its current market quote and shows the gain
  per position and for the whole portfolio. Symbols the quote provider
  does not support are listed but excluded from the totals.

  With -eur, the total value is also shown converted to EUR at the
  latest exchange rate.
`
}

func (c *actualCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.eur, "eur", false, "Also show the total value in EUR")
}

func (c *actualCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := stockfolio.NewPerformanceReport(holdings, quotes)
	printMarkdown(renderer.PerformanceMarkdown(report))

	if c.eur {
		rate, err := finnhub.LatestEURPerUSD(ctx)
		if err != nil || math.IsNaN(rate) {
			fmt.Fprintln(os.Stderr, "Warning: EUR rate unavailable.")
			return subcommands.ExitSuccess
		}
		inEur := report.TotalValue.MulRate(decimal.NewFromFloat(rate), "EUR")
		fmt.Printf("Total in EUR: %s\n", inEur)
	}
	return subcommands.ExitSuccess
}
