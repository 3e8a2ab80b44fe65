package criterion

import "time"

const (
	// numIterations is N, the fixed number of measurements per run (spec §3).
	numIterations = 20
	// minRuns is the minimum number of real runs per benchmark (spec §3).
	minRuns = 2
	// defaultWarmupRuns is the warmup count used when RunnerConfig doesn't
	// set one explicitly (spec §3: "default 3").
	defaultWarmupRuns = 3
)

// planBudget implements the adaptive planner (spec §4.4): given an early
// execution-time estimate e, it returns a total wall-clock budget and the
// max number of runs derived from it. e is clamped to >= 1ns before any
// division, matching spec's "clamped to ≥ 1 ns before division to avoid
// pathological inflation when the callable is below clock resolution".
func planBudget(e time.Duration) (budget time.Duration, maxRuns int) {
	ens := e.Nanoseconds()
	if ens < 1 {
		ens = 1
	}

	var budgetNs int64
	switch {
	case ens <= 100: // 100ns
		budgetNs = 500_000_000 // 500ms
	case ens <= 1_000: // 1us
		budgetNs = 1_000_000_000 // 1s
	case ens <= 100_000: // 100us
		budgetNs = 2_500_000_000 // 2.5s
	case ens <= 1_000_000: // 1ms
		budgetNs = 5_000_000_000 // 5s
	case ens <= 100_000_000: // 100ms
		budgetNs = 7_500_000_000 // 7.5s
	default:
		budgetNs = 10_000_000_000 // 10s
	}

	if floor := ens * minRuns * numIterations; floor > budgetNs {
		budgetNs = floor
	}

	totalIterations := budgetNs / ens
	maxRuns = int(totalIterations / numIterations)
	if maxRuns < minRuns {
		maxRuns = minRuns
	}

	return time.Duration(budgetNs), maxRuns
}
