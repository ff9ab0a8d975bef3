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

// indexSymbol is the market index the portfolio beta is measured against.
const indexSymbol = "SPY"

type tendenciesCmd struct {
	days int
}

func (*tendenciesCmd) Name() string     { return "tendencies" }
func (*tendenciesCmd) Synopsis() string { return "display recent price changes and the portfolio beta" }
func (*tendenciesCmd) Usage() string {
	return `sfo tendencies [-days <n>]

  Shows how each held symbol moved over the last days, and the beta of
  the whole portfolio against SPY over the same range.
`
}

func (c *tendenciesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of calendar days to look back")
}

func (c *tendenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	to := stockfolio.Today()
	from := to.Add(-c.days)
	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	candles, err := provider.AllCandles(ctx, symbols, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching candles: %v\n", err)
		return subcommands.ExitFailure
	}

	series := make([]stockfolio.Candles, 0, len(symbols))
	for _, s := range symbols {
		series = append(series, candles[s])
	}
	tendencies := stockfolio.NewTendencies(series)

	var beta float64
	var betaErr error
	index, betaErr := provider.Candles(ctx, indexSymbol, from, to)
	if betaErr == nil {
		beta, betaErr = stockfolio.Beta(stockfolio.PortfolioSeries(holdings, candles), index.Closes)
	}

	printMarkdown(renderer.TendenciesMarkdown(tendencies, beta, betaErr))
	return subcommands.ExitSuccess
}
