package utils

import "time"

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	// one timestamp per frame so the deltas add up to wall time
	now := time.Now()

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}

// Reset forgets the previous frame, so the next delta is 0 again.
func (d *DeltaTimer) Reset() {
	d.Time = time.Time{}
}
