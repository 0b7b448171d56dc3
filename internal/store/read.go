package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/seep/internal/ir"
)

const runColumns = `id, seq, source, scan_hash, water, still, steps, settled,
	min_x, min_y, width, height, clay, engine_version, scan_version`

// RunFilter narrows ListRuns.
type RunFilter struct {
	// ScanHash keeps only runs of one scan; empty keeps all.
	ScanHash string
	// Limit keeps only the most recent N runs; zero or less keeps all.
	Limit int
}

// ReadRun retrieves a single run by ID.
// The error wraps sql.ErrNoRows if the run is not recorded.
func (s *Store) ReadRun(ctx context.Context, id string) (ir.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns journal entries oldest first.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, filter RunFilter) ([]ir.RunRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.ScanHash != "" {
		where = append(where, "scan_hash = ?")
		args = append(args, filter.ScanHash)
	}

	inner := `SELECT ` + runColumns + ` FROM runs`
	if len(where) > 0 {
		inner += " WHERE " + strings.Join(where, " AND ")
	}
	inner += " ORDER BY seq DESC"
	if filter.Limit > 0 {
		inner += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	query := `SELECT ` + runColumns + ` FROM (` + inner + `) ORDER BY seq ASC, id COLLATE BINARY ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.RunRecord{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (ir.RunRecord, error) {
	var run ir.RunRecord
	err := row.Scan(
		&run.ID,
		&run.Seq,
		&run.Source,
		&run.ScanHash,
		&run.Water,
		&run.Still,
		&run.Steps,
		&run.Settled,
		&run.MinX,
		&run.MinY,
		&run.Width,
		&run.Height,
		&run.Clay,
		&run.EngineVersion,
		&run.ScanVersion,
	)
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("scan run: %w", err)
	}
	return run, nil
}
