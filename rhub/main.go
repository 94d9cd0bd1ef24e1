package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/resalehub/resalehub/cmd"
)

func main() {
	// Handles shell completion requests and exits when serving one.
	completion().Complete("rhub")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"add-item", "edit-item", "rm-item", "inventory",
		"add-order", "edit-order", "rm-order", "orders", "order-items",
		"sell", "edit-sale", "rm-sale", "sales", "import-sales",
		"add-customer", "edit-customer", "rm-customer", "customers",
		"summary", "monthly", "platforms",
		"theme", "currency", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	sub["theme"].Args = predict.Set{"light", "dark", "system"}
	sub["currency"].Args = predict.Set{"EUR", "USD", "GBP", "CHF"}
	sub["import-sales"].Flags = map[string]complete.Predictor{
		"file": predict.Files("*.json"),
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"storage-dir": predict.Dirs("*"),
		},
	}
}
