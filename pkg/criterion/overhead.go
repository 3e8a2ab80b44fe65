package criterion

import (
	"time"

	"github.com/ja7ad/criterion/pkg/clock"
)

// overheadSamples is how many empty now()/now() pairs are timed to estimate
// clock_overhead (spec §4.3).
const overheadSamples = 10

// estimateOverhead runs overheadSamples empty now()/now() pairs and returns
// the minimum observed delta, a lower bound on system noise rather than the
// mean (spec §4.3: "Minimum (not mean) because we want a lower bound").
func estimateOverhead(c clock.Clock) time.Duration {
	var min time.Duration
	for i := 0; i < overheadSamples; i++ {
		a := c.Now()
		b := c.Now()
		d := c.Sub(b, a)
		if i == 0 || d < min {
			min = d
		}
	}
	return min
}
