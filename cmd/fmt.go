package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio"
)

type fmtCmd struct {
	file string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a transaction file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `sfo fmt [-f <file>]

  Validates and formats a transaction file. This command reads all
  transactions, checks that they fold into valid holdings (no oversells,
  no unknown operations), sorts them by date and id, and writes them
  back in a canonical JSONL form. By default it formats the current
  portfolio's file in the local store.

  This is a file-level tool: with MONGO_URI set there is no local file
  to format, so the default form is refused; an explicit -f still works.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Transaction file to format (defaults to the portfolio's store file)")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file := c.file
	if file == "" {
		// the default form edits the local store in place; with a mongo
		// store there is no such file, and writing one would diverge
		if os.Getenv("MONGO_URI") != "" {
			fmt.Fprintln(os.Stderr, "Error: the store is in MongoDB, there is no local file to format. Pass -f to format a specific file.")
			return subcommands.ExitUsageError
		}
		file = filepath.Join(*storeDir, *portfolioName+".jsonl")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)
		return subcommands.ExitFailure
	}
	txs, err := stockfolio.DecodeTransactions(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	if _, err := stockfolio.Aggregate(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q does not fold into valid holdings: %v\n", file, err)
		return subcommands.ExitFailure
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].ID < txs[j].ID
	})

	var buf bytes.Buffer
	if err := stockfolio.EncodeTransactions(&buf, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %q: %v\n", file, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q (%d transactions).\n", file, len(txs))
	return subcommands.ExitSuccess
}
