package engine

// Tile is the state of one grid cell.
type Tile uint8

const (
	// Sand is permeable ground no water has touched yet.
	Sand Tile = iota
	// Clay is impermeable and never changes once stamped.
	Clay
	// Water marks a tile touched by flow, pooled or not.
	Water
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Sand:
		return "sand"
	case Clay:
		return "clay"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Solid reports whether the tile stops a full-waterline scan:
// clay or water on both ends makes the row full.
func (t Tile) Solid() bool {
	switch t {
	case Clay, Water:
		return true
	case Sand:
		return false
	default:
		return false
	}
}
