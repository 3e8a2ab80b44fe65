package criterion

import "time"

// aggregateInput carries the stabilization loop's final state into the
// aggregator, so Run (engine.go) stays a readable straight line and the
// pure derivation in spec §4.6 lives in its own file.
type aggregateInput struct {
	warmup         time.Duration
	numRuns        int
	perRunMeans    []float64
	lowestRSD      float64
	lowestRSDMean  float64
	lowestRSDIndex int
	fastest        float64
	slowest        float64
	memBefore      MemSample
	memAfter       MemSample
}

// aggregate is a pure derivation from the loop's final state (spec §4.6).
// It never produces NaN or infinity: when fastest is zero (every run's
// fastest iteration measured as zero, i.e. below the clock's resolution),
// throughput is computed from a floor substitute instead of dividing by
// zero, and BelowClockResolution is set so callers can tell the difference
// (spec §4.6's open question, resolved here per the "implementers should
// add a flag" guidance).
func (e *Engine) aggregate(d *BenchmarkDescriptor, in aggregateInput) BenchmarkResult {
	var globalMean float64
	for _, m := range in.perRunMeans {
		globalMean += m
	}
	if in.numRuns > 0 {
		globalMean /= float64(in.numRuns)
	}

	belowClockResolution := in.fastest <= 0
	fastestForThroughput := in.fastest
	if belowClockResolution {
		fastestForThroughput = 1 // 1ns floor; avoids +Inf when true fastest is 0
	}

	result := BenchmarkResult{
		Name:   d.Name,
		Suffix: d.Suffix,

		WarmupRuns: e.cfg.WarmupRuns,
		NumRuns:    in.numRuns,
		Iterations: in.numRuns * numIterations,

		LowestRSD:      in.lowestRSD,
		LowestRSDMean:  in.lowestRSDMean,
		LowestRSDIndex: in.lowestRSDIndex,

		WarmupExecutionTime:  float64(in.warmup),
		MeanExecutionTime:    globalMean,
		FastestExecutionTime: in.fastest,
		SlowestExecutionTime: in.slowest,

		BelowClockResolution: belowClockResolution,
	}

	if globalMean > 0 {
		result.AverageIterationPerformance = 1e9 / globalMean
	}
	if fastestForThroughput > 0 {
		result.FastestIterationPerformance = 1e9 / fastestForThroughput
	}
	if in.slowest > 0 {
		result.SlowestIterationPerformance = 1e9 / in.slowest
	}

	if e.cfg.TrackAllocs && result.Iterations > 0 {
		// memAfter already holds the delta accumulated since memBefore was
		// sampled (MemCollector.Sample returns a delta-since-last-call, not
		// a cumulative total), so it alone is the run phase's allocation
		// delta.
		result.AllocsPerOp = float64(in.memAfter.AllocsDelta) / float64(result.Iterations)
		result.BytesPerOp = float64(in.memAfter.BytesDelta) / float64(result.Iterations)
	}

	return result
}
