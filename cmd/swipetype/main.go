package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	app := &cli.App{
		Name:  "swipetype",
		Usage: "swipe-typing engine harness",
		Commands: []*cli.Command{
			loadCommand,
			swipeCommand,
			commitCommand,
			resetCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
