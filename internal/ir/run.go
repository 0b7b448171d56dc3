package ir

// RunRecord is the journal entry for one finished simulation.
//
// Seq is assigned by the journal on write and orders runs without
// reference to wall time. ID is an opaque run identifier (UUIDv7 in
// production, fixed in tests).
type RunRecord struct {
	ID            string `json:"id"`
	Seq           int64  `json:"seq"`
	Source        string `json:"source"`
	ScanHash      string `json:"scan_hash"`
	Water         int    `json:"water"`
	Still         int    `json:"still"`
	Steps         int64  `json:"steps"`
	Settled       bool   `json:"settled"`
	MinX          int    `json:"min_x"`
	MinY          int    `json:"min_y"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Clay          int    `json:"clay"`
	EngineVersion string `json:"engine_version"`
	ScanVersion   string `json:"scan_version"`
}
