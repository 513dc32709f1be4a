package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"1" help:"Open the interactive team generator"`
	Generate GenerateCmd `cmd:"" help:"Generate teams once and print them"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("teamgen"),
		kong.Description("Split a list of players into random, evenly sized teams"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
