package services

import "time"

// Clock supplies the current time to the workflow engines. The
// withdrawal window and report reference ids are always computed from
// the same injected source so tests stay deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock used in production.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
