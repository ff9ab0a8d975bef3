package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio/store"
)

type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by id" }
func (*rmCmd) Usage() string {
	return `sfo rm -id <id>

  Removes the transaction with the given id from the portfolio. This is
  the only way to undo a buy or sell; ids are shown by 'sfo tx'.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Transaction id to remove (required)")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Remove(ctx, *portfolioName, c.id); err != nil {
		if err == store.ErrNotFound {
			fmt.Fprintf(os.Stderr, "Error: no transaction #%d in portfolio %q.\n", c.id, *portfolioName)
		} else {
			fmt.Fprintf(os.Stderr, "Error removing transaction: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed transaction #%d\n", c.id)
	return subcommands.ExitSuccess
}
