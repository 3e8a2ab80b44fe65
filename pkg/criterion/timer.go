package criterion

import "github.com/ja7ad/criterion/pkg/clock"

// Timer is the mutable start/teardown timestamp handle a Callable receives.
// The engine pre-fills it with its own clock reading before invoking the
// callable; the callable may call MarkStart to exclude setup work from the
// measured window, and MarkTeardown to exclude teardown work, per spec §6's
// callable contract.
type Timer struct {
	clock       clock.Clock
	start       clock.Timestamp
	teardown    clock.Timestamp
	hasTeardown bool
}

func newTimer(c clock.Clock, start clock.Timestamp) *Timer {
	return &Timer{clock: c, start: start}
}

// MarkStart overrides the engine's default start timestamp with now(). Call
// this after setup work completes so setup is excluded from the measured
// interval.
func (t *Timer) MarkStart() {
	t.start = t.clock.Now()
}

// MarkTeardown records now() as the end of the measured interval. Call this
// before teardown work begins so teardown is excluded from the measured
// interval.
func (t *Timer) MarkTeardown() {
	t.teardown = t.clock.Now()
	t.hasTeardown = true
}
