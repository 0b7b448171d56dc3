package store

import (
	"fmt"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
)

// NewRunRecord builds the journal entry for a finished simulation of s.
// Seq is left zero; WriteRun assigns it.
func NewRunRecord(id string, s ir.Scan, stats engine.Stats, bounds engine.Bounds) (ir.RunRecord, error) {
	hash, err := ir.ScanHash(s)
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("new run record: %w", err)
	}
	return ir.RunRecord{
		ID:            id,
		Source:        s.Source,
		ScanHash:      hash,
		Water:         stats.Water,
		Still:         stats.Still,
		Steps:         stats.Steps,
		Settled:       stats.Settled,
		MinX:          bounds.MinX,
		MinY:          bounds.MinY,
		Width:         stats.Width,
		Height:        stats.Height,
		Clay:          stats.Clay,
		EngineVersion: ir.EngineVersion,
		ScanVersion:   ir.ScanVersion,
	}, nil
}
