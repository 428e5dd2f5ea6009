package main

import (
	"fmt"

	"github.com/rbscholtus/swipetype/internal/engine"
	"github.com/urfave/cli/v2"
)

var loadCommand = &cli.Command{
	Name:   "load",
	Usage:  "load a layout and dictionary and print summary counts",
	Flags:  flagsSlice("layout", "words", "freq", "userdata"),
	Action: loadAction,
}

func loadAction(c *cli.Context) error {
	e := engine.New(c.String("userdata"))

	if path := c.String("layout"); path != "" {
		if err := e.LoadLayout(path); err != nil {
			return err
		}
	}
	fmt.Printf("layout: %d keys (%d alphabetic)\n", len(e.Layout().Keys), len(e.Layout().AlphaKeys()))

	if err := e.LoadDictionary(c.String("words"), c.String("freq")); err != nil {
		return err
	}
	stats := e.Lexicon().Stats()
	fmt.Printf("dictionary: %s\n", stats.String())

	return nil
}
