package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/avoronkov/stockfolio/cmd"
)

func main() {
	// Shell completion; exits early when invoked by the shell.
	completion().Complete("sfo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	tx := map[string]complete.Predictor{
		"s": predict.Something,
		"p": predict.Something,
		"n": predict.Something,
		"d": predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio": predict.Something,
			"store-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"buy":          {Flags: tx},
			"sell":         {Flags: tx},
			"tx":           {},
			"rm":           {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"fmt":          {Flags: map[string]complete.Predictor{"f": predict.Files("*.jsonl")}},
			"portfolios":   {Flags: map[string]complete.Predictor{"create": predict.Something}},
			"holding":      {},
			"actual":       {Flags: map[string]complete.Predictor{"eur": predict.Nothing}},
			"targets":      {},
			"weights":      {},
			"trends":       {},
			"tendencies":   {Flags: map[string]complete.Predictor{"days": predict.Something}},
			"earnings":     {Flags: map[string]complete.Predictor{"from": predict.Something, "to": predict.Something}},
			"independence": {Flags: map[string]complete.Predictor{"start": predict.Something, "add": predict.Something, "growth": predict.Something, "target": predict.Something}},
			"topic":        {Args: predict.Set{"transactions", "reports", "independence", "configuration", "*"}},
		},
	}
}
