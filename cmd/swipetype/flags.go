// Package main provides the CLI entrypoint for the swipetype engine.
//
// swipe.go implements the "swipe" command: maps a recorded path to a key
// sequence and prints ranked candidates.
//
// load.go implements the "load" command: validates layout/dictionary
// loading and prints summary counts.
package main

import (
	"github.com/urfave/cli/v2"
)

// appFlagsMap centralizes CLI flags used across commands, the way the
// reference corpus's cmd/main/main.go keeps every flag definition in one
// map so commands select only what they need via flagsSlice.
var appFlagsMap = map[string]cli.Flag{
	"layout": &cli.StringFlag{
		Name:    "layout",
		Aliases: []string{"l"},
		Usage:   "keyboard layout geometry file (defaults to the built-in QWERTY layout)",
	},
	"words": &cli.StringFlag{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "dictionary word list file",
		Value:   "words.txt",
	},
	"freq": &cli.StringFlag{
		Name:    "freq",
		Aliases: []string{"f"},
		Usage:   "tab-separated word frequency file (optional)",
	},
	"points": &cli.StringFlag{
		Name:     "points",
		Aliases:  []string{"p"},
		Usage:    "JSON file containing an array of {x,y} sample points",
		Required: true,
	},
	"prev": &cli.StringFlag{
		Name:  "prev",
		Usage: "previous committed word, used for bigram boosting",
	},
	"userdata": &cli.StringFlag{
		Name:  "userdata",
		Usage: "path to the learning store's persistence file",
		Value: "learned.dat",
	},
}

// flagsSlice returns the cli.Flag values for the given keys from
// appFlagsMap, in order, skipping any key that isn't registered.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
