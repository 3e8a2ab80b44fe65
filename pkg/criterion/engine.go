// Package criterion implements the measurement-and-stabilization engine:
// the adaptive-iteration loop, clock-overhead compensation, best-estimate
// selection by minimum relative standard deviation, and the registry that
// turns static declarations into an ordered, filterable run list.
package criterion

import (
	"time"

	"github.com/ja7ad/criterion/pkg/clock"
)

// Engine drives the measurement of one benchmark at a time. It is the
// single-threaded, strictly sequential component spec §5 describes: no
// benchmark runs concurrently with another, and no iteration runs in
// parallel with anything else the engine does.
type Engine struct {
	cfg RunnerConfig
}

// NewEngine returns an Engine. A nil Clock or Progress in cfg falls back to
// the real monotonic clock and a no-op progress indicator respectively, and
// WarmupRuns < 1 is floored to 1 (spec §3 invariant).
func NewEngine(cfg RunnerConfig) *Engine {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Progress == nil {
		cfg.Progress = NoopProgress{}
	}
	if cfg.WarmupRuns < 1 {
		cfg.WarmupRuns = 1
	}
	return &Engine{cfg: cfg}
}

// measureOnce wraps a single invocation of d.Fn with a pair of clock reads
// and yields the compensated duration (spec §4.2). The engine's own
// pre-call reading is the canonical interval start unless the callable
// overrides it via Timer.MarkStart; Timer.MarkTeardown overrides the
// interval end the same way, so a benchmark can exclude its own
// setup/teardown from the measured window.
func (e *Engine) measureOnce(d *BenchmarkDescriptor, overhead time.Duration) time.Duration {
	start := e.cfg.Clock.Now()
	t := newTimer(e.cfg.Clock, start)

	d.Fn(t, d.Params)

	end := e.cfg.Clock.Now()
	if t.hasTeardown {
		end = t.teardown
	}

	raw := e.cfg.Clock.Sub(end, t.start)
	compensated := raw - overhead
	if compensated < 0 {
		compensated = -compensated
	}
	return compensated
}

// warmupEstimate runs WarmupRuns invocations and returns the minimum
// observed duration, seeding both the planner (spec §4.4) and the result's
// WarmupExecutionTime field (spec §4.5).
func (e *Engine) warmupEstimate(d *BenchmarkDescriptor, overhead time.Duration) time.Duration {
	var best time.Duration
	for i := 0; i < e.cfg.WarmupRuns; i++ {
		dur := e.measureOnce(d, overhead)
		if i == 0 || dur < best {
			best = dur
		}
	}
	return best
}

// Run executes the full measurement-and-stabilization pipeline for one
// descriptor (spec §4.2–§4.6) and returns its BenchmarkResult. This is the
// hardest part of the spec: the loop terminates on either the iteration cap
// or the wall-clock budget (spec §4.5), and tracks the lowest-RSD estimate
// under the mean-improvement guard (spec §4.5's lowest-RSD update rule).
func (e *Engine) Run(d *BenchmarkDescriptor) BenchmarkResult {
	overhead := estimateOverhead(e.cfg.Clock)

	warmup := e.warmupEstimate(d, overhead)
	estimate := warmup
	if estimate < 1 {
		estimate = 1
	}
	budget, maxRuns := planBudget(estimate)

	var memBefore, memAfter MemSample
	if e.cfg.TrackAllocs && e.cfg.MemCollector != nil {
		memBefore, _ = e.cfg.MemCollector.Sample()
	}

	totalIterations := maxRuns * numIterations
	e.cfg.Progress.Start(d.FullName(), totalIterations)
	defer e.cfg.Progress.Finish()

	var (
		lowestRSD      float64
		lowestRSDMean  float64
		lowestRSDIndex int
		fastest        float64
		slowest        float64
		perRunMeans    []float64
		numRuns        int
		benchmarkStart clock.Timestamp
	)

	first := true
	for {
		if first {
			benchmarkStart = e.cfg.Clock.Now()
		}

		var durations [numIterations]time.Duration
		for i := 0; i < numIterations; i++ {
			durations[i] = e.measureOnce(d, overhead)
			e.cfg.Progress.Add(1)
		}

		runStats := computeRunStats(durations[:])
		perRunMeans = append(perRunMeans, runStats.Mean)
		numRuns++

		if first {
			lowestRSD = runStats.RSD
			lowestRSDMean = runStats.Mean
			lowestRSDIndex = numRuns
			fastest = runStats.Fastest
			slowest = runStats.Slowest
			first = false
		} else {
			if runStats.RSD < lowestRSD && runStats.Mean < lowestRSDMean {
				lowestRSD = runStats.RSD
				lowestRSDMean = runStats.Mean
				lowestRSDIndex = numRuns
			}
			if runStats.Fastest > 0 && (fastest <= 0 || runStats.Fastest < fastest) {
				fastest = runStats.Fastest
			}
			if runStats.Slowest > slowest {
				slowest = runStats.Slowest
			}
		}

		if numRuns >= maxRuns {
			break
		}
		if e.cfg.Clock.Sub(e.cfg.Clock.Now(), benchmarkStart) > budget {
			break
		}
	}

	if e.cfg.TrackAllocs && e.cfg.MemCollector != nil {
		memAfter, _ = e.cfg.MemCollector.Sample()
	}

	return e.aggregate(d, aggregateInput{
		warmup:         warmup,
		numRuns:        numRuns,
		perRunMeans:    perRunMeans,
		lowestRSD:      lowestRSD,
		lowestRSDMean:  lowestRSDMean,
		lowestRSDIndex: lowestRSDIndex,
		fastest:        fastest,
		slowest:        slowest,
		memBefore:      memBefore,
		memAfter:       memAfter,
	})
}
