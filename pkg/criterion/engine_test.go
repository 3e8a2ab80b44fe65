package criterion

import (
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ja7ad/criterion/pkg/clock"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by a fixed step on every Now() call, giving
// deterministic, non-flaky control over measured durations in tests.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(0, 0), step: step}
}

func (c *fakeClock) Now() clock.Timestamp {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sub(a, b clock.Timestamp) time.Duration {
	return a.Sub(b)
}

func newTestEngine(c clock.Clock) *Engine {
	return NewEngine(RunnerConfig{WarmupRuns: 3, Clock: c, Progress: NoopProgress{}})
}

func TestEngine_Run_FixedIterationCount(t *testing.T) {
	e := newTestEngine(newFakeClock(10 * time.Nanosecond))
	d := &BenchmarkDescriptor{Name: "Noop", Fn: func(*Timer, any) {}}

	result := e.Run(d)

	require.Equal(t, numIterations*result.NumRuns, result.Iterations)
	require.GreaterOrEqual(t, result.NumRuns, minRuns)
}

func TestEngine_Run_LowestRSDWithinFastestSlowestBounds(t *testing.T) {
	e := newTestEngine(newFakeClock(25 * time.Nanosecond))
	d := &BenchmarkDescriptor{Name: "Noop", Fn: func(*Timer, any) {}}

	result := e.Run(d)

	require.LessOrEqual(t, result.FastestExecutionTime, result.LowestRSDMean)
	require.LessOrEqual(t, result.LowestRSDMean, result.SlowestExecutionTime)
	require.LessOrEqual(t, result.FastestExecutionTime, result.MeanExecutionTime)
	require.LessOrEqual(t, result.MeanExecutionTime, result.SlowestExecutionTime)
}

func TestEngine_Run_LowestRSDBounded0To100(t *testing.T) {
	e := newTestEngine(newFakeClock(30 * time.Nanosecond))
	d := &BenchmarkDescriptor{Name: "Noop", Fn: func(*Timer, any) {}}

	result := e.Run(d)

	require.GreaterOrEqual(t, result.LowestRSD, 0.0)
	require.LessOrEqual(t, result.LowestRSD, 100.0)
}

func TestEngine_Run_ZeroDeltaClockStillProducesFiniteResult(t *testing.T) {
	// A clock that never advances simulates coarse-granularity platforms
	// where sub-resolution callables observe zero deltas (spec §9 open
	// question, spec §8 boundary behavior 8).
	e := newTestEngine(newFakeClock(0))
	d := &BenchmarkDescriptor{Name: "Noop", Fn: func(*Timer, any) {}}

	result := e.Run(d)

	require.True(t, result.BelowClockResolution)
	require.False(t, isNaNOrInf(result.AverageIterationPerformance))
	require.False(t, isNaNOrInf(result.FastestIterationPerformance))
	require.False(t, isNaNOrInf(result.SlowestIterationPerformance))
}

func TestEngine_Run_TimerMarkStartExcludesSetup(t *testing.T) {
	c := newFakeClock(10 * time.Millisecond)
	e := newTestEngine(c)
	called := int32(0)
	d := &BenchmarkDescriptor{
		Name: "WithSetup",
		Fn: func(t *Timer, _ any) {
			atomic.AddInt32(&called, 1)
			// simulate setup work the engine's default start should have
			// counted, then exclude it.
			c.now = c.now.Add(time.Second)
			t.MarkStart()
		},
	}

	result := e.Run(d)
	require.Greater(t, result.Iterations, 0)
	require.Greater(t, atomic.LoadInt32(&called), int32(0))
	require.Less(t, result.SlowestExecutionTime, float64(time.Second))
}

func TestEngine_Run_TrackAllocsPopulatesPerOpFields(t *testing.T) {
	e := NewEngine(RunnerConfig{
		WarmupRuns:   1,
		Clock:        newFakeClock(10 * time.Microsecond),
		Progress:     NoopProgress{},
		TrackAllocs:  true,
		MemCollector: NewRuntimeMemCollector(),
	})
	d := &BenchmarkDescriptor{
		Name: "Allocates",
		Fn: func(*Timer, any) {
			_ = make([]byte, 64)
		},
	}

	result := e.Run(d)
	require.Greater(t, result.AllocsPerOp, 0.0)
	require.Greater(t, result.BytesPerOp, 0.0)
}

func TestDispatcher_RunAll_PreservesDeclarationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("A", noop)
	r.Register("B", noop)
	r.Register("C", noop)

	e := newTestEngine(newFakeClock(5 * time.Nanosecond))
	disp := NewDispatcher(r, e)
	store := disp.RunAll()

	require.Equal(t, []string{"A", "B", "C"}, store.Order())
	for _, name := range []string{"A", "B", "C"} {
		_, ok := store.Get(name)
		require.True(t, ok)
	}
}

func TestDispatcher_RunFiltered_OnlyMatchingRun(t *testing.T) {
	r := NewRegistry()
	r.Register("MergeSort/10", noop)
	r.Register("MergeSort/100", noop)
	r.Register("VectorSort/10", noop)

	e := newTestEngine(newFakeClock(5 * time.Nanosecond))
	disp := NewDispatcher(r, e)
	store := disp.RunFiltered(regexp.MustCompile("^MergeSort"))

	require.ElementsMatch(t, []string{"MergeSort/10", "MergeSort/100"}, store.Order())
	_, ok := store.Get("VectorSort/10")
	require.False(t, ok)
}

func TestDispatcher_RunFiltered_MatchesListFiltered(t *testing.T) {
	r := NewRegistry()
	r.Register("Alpha", noop)
	r.Register("Beta", noop)
	r.Register("AlphaBeta", noop)

	pattern := regexp.MustCompile("Alpha")
	e := newTestEngine(newFakeClock(5 * time.Nanosecond))
	disp := NewDispatcher(r, e)
	store := disp.RunFiltered(pattern)

	require.ElementsMatch(t, r.ListFiltered(pattern), store.Order())
}

func isNaNOrInf(f float64) bool {
	return f != f || f > 1e300 || f < -1e300
}
