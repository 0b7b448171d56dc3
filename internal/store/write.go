package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/seep/internal/ir"
)

// WriteRun appends a run record and returns the seq assigned to it.
//
// The record's own Seq is ignored; the journal assigns MAX(seq)+1 inside
// the same transaction. Writing an ID that is already present is a no-op
// that returns the existing seq.
func (s *Store) WriteRun(ctx context.Context, run ir.RunRecord) (int64, error) {
	if run.ID == "" {
		return 0, fmt.Errorf("write run: empty run id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var existing int64
	err = tx.QueryRowContext(ctx, `SELECT seq FROM runs WHERE id = ?`, run.ID).Scan(&existing)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("write run: lookup: %w", err)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, source, scan_hash, water, still, steps, settled,
		 min_x, min_y, width, height, clay, engine_version, scan_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		seq,
		run.Source,
		run.ScanHash,
		run.Water,
		run.Still,
		run.Steps,
		run.Settled,
		run.MinX,
		run.MinY,
		run.Width,
		run.Height,
		run.Clay,
		run.EngineVersion,
		run.ScanVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("write run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write run: commit: %w", err)
	}
	return seq, nil
}
