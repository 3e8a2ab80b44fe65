package criterion

import (
	"time"

	mstats "github.com/montanaflynn/stats"
)

// computeRunStats derives mean/stddev/RSD/fastest/slowest from one run's
// fixed-size batch of compensated durations (spec §3, §4.5). Grounded on
// the alauda-bucketbench benchmark harness in the example corpus, which
// reaches for github.com/montanaflynn/stats (Min/Max/Mean/StandardDeviation)
// rather than hand-rolling the textbook variance loop the original C++ does.
//
// StandardDeviationPopulation (E/size, not E/(size-1)) is used deliberately:
// the original computes population variance, and spec §3's RSD formula
// (100 * stddev / mean) is defined against that same population figure.
func computeRunStats(durations []time.Duration) RunStats {
	data := make(mstats.Float64Data, len(durations))
	for i, d := range durations {
		data[i] = float64(d)
	}

	mean, _ := mstats.Mean(data)
	stddev, _ := mstats.StandardDeviationPopulation(data)
	fastest, _ := mstats.Min(data)
	slowest, _ := mstats.Max(data)

	var rsd float64
	if mean != 0 {
		rsd = stddev * 100 / mean
	}

	return RunStats{
		Mean:    mean,
		StdDev:  stddev,
		RSD:     rsd,
		Fastest: fastest,
		Slowest: slowest,
	}
}
