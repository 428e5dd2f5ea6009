package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rbscholtus/swipetype/internal/engine"
	"github.com/rbscholtus/swipetype/internal/layout"
	"github.com/urfave/cli/v2"
)

var swipeCommand = &cli.Command{
	Name:   "swipe",
	Usage:  "map a recorded swipe path to ranked word candidates",
	Flags:  flagsSlice("layout", "words", "freq", "points", "prev", "userdata"),
	Action: swipeAction,
}

// pointDoc is the on-disk JSON shape for a single sample point.
type pointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func loadPoints(path string) ([]layout.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points file: %w", err)
	}

	var docs []pointDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse points file: %w", err)
	}

	points := make([]layout.Point, len(docs))
	for i, d := range docs {
		points[i] = layout.Point{X: d.X, Y: d.Y}
	}
	return points, nil
}

func swipeAction(c *cli.Context) error {
	e := engine.New(c.String("userdata"))

	if path := c.String("layout"); path != "" {
		if err := e.LoadLayout(path); err != nil {
			return err
		}
	}
	if err := e.LoadDictionary(c.String("words"), c.String("freq")); err != nil {
		return err
	}

	points, err := loadPoints(c.String("points"))
	if err != nil {
		return err
	}

	seq := e.MapPathToSequence(points)
	fmt.Printf("key sequence: %s\n", strings.Join(seq, ""))

	cands := e.GenerateCandidates(seq, c.String("prev"))
	if len(cands) == 0 {
		fmt.Println("no candidates")
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "word", "score", "edit dist", "bigram overlap", "freq score", "spatial score"})
	for i, cand := range cands {
		tw.AppendRow(table.Row{i + 1, cand.Word, fmt.Sprintf("%.3f", cand.Score), cand.EditDist, cand.BigramOv,
			fmt.Sprintf("%.3f", cand.FreqScore), fmt.Sprintf("%.3f", cand.SpatialSc)})
	}
	fmt.Println(tw.Render())

	return nil
}
