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

type earningsCmd struct {
	from string
	to   string
}

func (*earningsCmd) Name() string     { return "earnings" }
func (*earningsCmd) Synopsis() string { return "display the earnings calendar for the holdings" }
func (*earningsCmd) Usage() string {
	return `sfo earnings [-from <date>] [-to <date>]

  Shows upcoming and recent earnings reports for the held symbols, and
  whether reported quarters beat the estimates. The default range is
  one week back to one month ahead.
`
}

func (c *earningsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", stockfolio.Today().Add(-7).String(), "Start of the calendar range")
	f.StringVar(&c.to, "to", stockfolio.Today().Add(31).String(), "End of the calendar range")
}

func (c *earningsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := stockfolio.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := stockfolio.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}

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
	earnings, err := provider.Earnings(ctx, from, to, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching earnings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.EarningsMarkdown(earnings))
	return subcommands.ExitSuccess
}
