package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/seep/internal/ir"
)

// createTestStore creates a new temp-dir store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run record with the example basin's counts.
func createTestRun(id, scanHash string) ir.RunRecord {
	return ir.RunRecord{
		ID:            id,
		Source:        "example.txt",
		ScanHash:      scanHash,
		Water:         57,
		Still:         29,
		Steps:         59,
		Settled:       true,
		MinX:          494,
		MinY:          1,
		Width:         14,
		Height:        13,
		Clay:          34,
		EngineVersion: ir.EngineVersion,
		ScanVersion:   ir.ScanVersion,
	}
}
