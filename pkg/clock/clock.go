// Package clock wraps the monotonic timestamp primitives the measurement
// engine is built on. time.Now() already returns a reading anchored to the
// monotonic clock on every platform Go supports, so this package is a thin
// seam rather than a reimplementation — it exists so pkg/criterion depends
// on an interface it can fake in tests instead of calling time.Now directly.
package clock

import "time"

// Timestamp is an opaque monotonic reading. Only Sub (via Clock) and
// comparisons against other Timestamps from the same Clock are meaningful.
type Timestamp = time.Time

// Clock produces monotonic timestamps and the signed duration between two
// of them. A real Clock's Sub(b, a) is never negative for a == Now() taken
// before b == Now(), matching spec §4.1's "for two consecutive calls a=now();
// b=now();, sub(b,a) >= 0" requirement.
type Clock interface {
	Now() Timestamp
	Sub(a, b Timestamp) time.Duration
}

// Monotonic is the production Clock backed by time.Now's monotonic reading.
type Monotonic struct{}

// New returns the monotonic system clock.
func New() Monotonic {
	return Monotonic{}
}

func (Monotonic) Now() Timestamp {
	return time.Now()
}

// Sub returns a-b. Negative when a happened before b.
func (Monotonic) Sub(a, b Timestamp) time.Duration {
	return a.Sub(b)
}
