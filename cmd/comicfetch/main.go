package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/solenware/comicfetch/internal/cli/fetch"
	"github.com/solenware/comicfetch/internal/cli/initcmd"
	"github.com/solenware/comicfetch/internal/cli/list"
	"github.com/solenware/comicfetch/internal/cli/self"
)

// version is overridden at release time via -ldflags.
var version = "v0.1.0"

func main() {
	app := &cli.App{
		Name:    "comicfetch",
		Usage:   "Downloads comic page images listed in a manifest file",
		Version: version,
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			fetch.NewFetchCommand(),
			initcmd.NewInitCommand(),
			list.NewListCommand(),
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
