// cmd/moneta/main.go
package main

import (
	"context"
	"flag"
	"os"

	app "moneta/internal"
	"moneta/internal/cli"

	"github.com/google/subcommands"
)

func main() {
	application := app.NewApplication()
	if err := application.Initialize(); err != nil {
		// The logger may not exist yet if initialization failed early.
		os.Stderr.WriteString("failed to initialize: " + err.Error() + "\n")
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, "moneta")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, application)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
