package criterion

import "github.com/ja7ad/criterion/pkg/clock"

// ProgressIndicator is the collaborator interface the stabilization loop
// ticks once per iteration (spec §1: progress indicator is a replaceable
// façade). pkg/progress provides a schollz/progressbar-backed
// implementation; callers needing no output pass NoopProgress.
type ProgressIndicator interface {
	Start(name string, total int)
	Add(delta int)
	Finish()
}

// NoopProgress implements ProgressIndicator as a no-op, the default when
// RunnerConfig.Progress is nil or -q/--quiet was given (spec §6).
type NoopProgress struct{}

func (NoopProgress) Start(string, int) {}
func (NoopProgress) Add(int)           {}
func (NoopProgress) Finish()           {}

// RunnerConfig configures an Engine. It is built by the CLI layer from
// flags the way the teacher's opts struct in cmd/consumption/main.go is
// built and handed to consumption.Config.
type RunnerConfig struct {
	// WarmupRuns is the number of warmup invocations (spec §3: "≥ 1
	// (default 3)"). Values < 1 are treated as 1.
	WarmupRuns int

	// Clock is the timestamp source. Defaults to the real monotonic clock
	// when left nil (see NewEngine).
	Clock clock.Clock

	// Progress receives iteration ticks. Defaults to NoopProgress when nil.
	Progress ProgressIndicator

	// TrackAllocs enables the optional allocation-accounting supplement
	// (SPEC_FULL §4.10). MemCollector must be set when this is true.
	TrackAllocs  bool
	MemCollector MemCollector
}

// DefaultRunnerConfig returns a RunnerConfig with spec defaults: 3 warmup
// runs, the real monotonic clock, no progress output, no allocation
// tracking.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WarmupRuns: defaultWarmupRuns,
		Clock:      clock.New(),
		Progress:   NoopProgress{},
	}
}
