package engine

// Clock is the engine's logical step counter.
//
// Every step is stamped with a strictly increasing seq number. Observers
// and the run journal use it instead of wall-clock time, so identical scans
// produce identical traces.
//
// Not safe for concurrent use; the engine is single-threaded.
type Clock struct {
	seq int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq
}
