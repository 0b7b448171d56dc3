// Package report summarizes a finished grid row by row.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/roach88/seep/internal/engine"
)

// RowProfile counts the tiles of one grid row.
type RowProfile struct {
	Y       int `csv:"y"`
	Sand    int `csv:"sand"`
	Clay    int `csv:"clay"`
	Water   int `csv:"water"`
	Still   int `csv:"still"`
	Flowing int `csv:"flowing"`
}

// Profile returns one RowProfile per row, top to bottom.
// Still and Flowing split Water; Still stays zero until the grid is settled.
func Profile(g *engine.Grid) []RowProfile {
	rows := make([]RowProfile, 0, g.Height())
	for y := g.MinY(); y <= g.MaxY(); y++ {
		row := RowProfile{Y: y}
		for x := g.MinX(); x <= g.MaxX(); x++ {
			switch g.At(x, y) {
			case engine.Sand:
				row.Sand++
			case engine.Clay:
				row.Clay++
			case engine.Water:
				row.Water++
				if g.Still(x, y) {
					row.Still++
				} else {
					row.Flowing++
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the row profile of g as CSV with a header line.
func WriteCSV(w io.Writer, g *engine.Grid) error {
	if err := gocsv.Marshal(Profile(g), w); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// WriteFile writes the row profile of g to path, replacing any existing file.
func WriteFile(path string, g *engine.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if err := WriteCSV(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
