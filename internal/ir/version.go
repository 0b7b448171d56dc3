package ir

// Version constants recorded alongside every journaled run.
const (
	// ScanVersion is the scan schema version.
	ScanVersion = "1"

	// EngineVersion is the seep engine version.
	EngineVersion = "0.1.0"
)
