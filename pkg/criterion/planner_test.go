package criterion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlanBudget_Table(t *testing.T) {
	cases := []struct {
		estimate   time.Duration
		wantBudget time.Duration
	}{
		{50 * time.Nanosecond, 500 * time.Millisecond},
		{100 * time.Nanosecond, 500 * time.Millisecond},
		{500 * time.Nanosecond, time.Second},
		{50 * time.Microsecond, 2500 * time.Millisecond},
		{500 * time.Microsecond, 5 * time.Second},
		{50 * time.Millisecond, 7500 * time.Millisecond},
		// estimate*minRuns*N floor (20s) exceeds the 10s default bucket.
		{500 * time.Millisecond, 20 * time.Second},
	}
	for _, tc := range cases {
		budget, _ := planBudget(tc.estimate)
		require.Equal(t, tc.wantBudget, budget, "estimate=%v", tc.estimate)
	}
}

func TestPlanBudget_FloorNeverBelowMinRunsTimesIterations(t *testing.T) {
	// A huge estimate pushes the floor (e*minRuns*N) above the 10s bucket.
	budget, maxRuns := planBudget(time.Second)
	require.GreaterOrEqual(t, budget, time.Duration(int64(time.Second)*minRuns*numIterations))
	require.GreaterOrEqual(t, maxRuns, minRuns)
}

func TestPlanBudget_MaxRunsNeverBelowMinRuns(t *testing.T) {
	_, maxRuns := planBudget(10 * time.Second)
	require.GreaterOrEqual(t, maxRuns, minRuns)
}

func TestPlanBudget_ClampsSubNanosecondEstimate(t *testing.T) {
	budget, maxRuns := planBudget(0)
	require.Equal(t, 500*time.Millisecond, budget)
	require.GreaterOrEqual(t, maxRuns, minRuns)
}
