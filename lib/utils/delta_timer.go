package utils

import "time"

// DeltaTimer measures the time elapsed between consecutive Next() calls.
// The first call returns zero so the first frame does not observe a delta
// covering the whole setup phase.
type DeltaTimer struct {
	last time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := time.Now()

	defer func() { d.last = now }()
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}
