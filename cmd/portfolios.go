package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avoronkov/stockfolio/store"
)

type portfoliosCmd struct {
	create string
}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list or create portfolios" }
func (*portfoliosCmd) Usage() string {
	return `sfo portfolios [-create <name>]

  Lists the known portfolios, or creates an empty one. A portfolio is
  also created implicitly by the first 'sfo buy' into it.
`
}

func (c *portfoliosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "create", "", "Create an empty portfolio with this name")
}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.create != "" {
		if err := s.CreatePortfolio(ctx, c.create); err != nil {
			if err == store.ErrExist {
				fmt.Fprintf(os.Stderr, "Error: portfolio %q already exists.\n", c.create)
			} else {
				fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
			}
			return subcommands.ExitFailure
		}
		fmt.Printf("Created portfolio %q\n", c.create)
		return subcommands.ExitSuccess
	}

	names, err := s.Portfolios(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing portfolios: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
