// Package store is the optional SQLite run journal.
//
// Every finished simulation can be appended as an ir.RunRecord. Records
// are keyed by run ID and ordered by a journal-assigned seq, never by
// wall-clock time, so listings are deterministic:
//
//	ORDER BY seq ASC, id COLLATE BINARY ASC
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// Scan hashes stored alongside each run come from ir.ScanHash, so runs of
// the same ground can be grouped regardless of file name or vein order.
package store
