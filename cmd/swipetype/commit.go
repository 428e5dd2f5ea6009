package main

import (
	"fmt"

	"github.com/rbscholtus/swipetype/internal/userdata"
	"github.com/urfave/cli/v2"
)

var commitCommand = &cli.Command{
	Name:      "commit",
	Usage:     "record a committed word in the learning store",
	ArgsUsage: "<word> [previous-word]",
	Flags:     flagsSlice("userdata"),
	Action:    commitAction,
}

func commitAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("commit requires at least a word argument")
	}
	word := c.Args().Get(0)
	previous := c.Args().Get(1)

	store := userdata.Load(c.String("userdata"))
	store.RecordCommit(word, previous)
	if err := store.Save(); err != nil {
		return fmt.Errorf("save learning store: %w", err)
	}

	fmt.Printf("recorded commit: %q (previous: %q)\n", word, previous)
	return nil
}

var resetCommand = &cli.Command{
	Name:   "reset",
	Usage:  "clear the learning store",
	Flags:  flagsSlice("userdata"),
	Action: resetAction,
}

func resetAction(c *cli.Context) error {
	store := userdata.Load(c.String("userdata"))
	if err := store.Reset(); err != nil {
		return fmt.Errorf("reset learning store: %w", err)
	}
	fmt.Println("learning store reset")
	return nil
}
