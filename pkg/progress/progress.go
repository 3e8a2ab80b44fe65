// Package progress provides a console progress indicator backed by
// schollz/progressbar, satisfying the engine's ProgressIndicator method set
// (pkg/criterion.ProgressIndicator) without importing pkg/criterion.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar renders one bar per benchmark: Start resets it to the benchmark's
// total iteration count and label, Add ticks it by delta, Finish clears the
// line. A zero-value Bar writes to os.Stderr.
type Bar struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// New returns a Bar writing to out. A nil out defaults to os.Stderr.
func New(out io.Writer) *Bar {
	if out == nil {
		out = os.Stderr
	}
	return &Bar{out: out}
}

// Start begins a new bar for name, sized to total iterations.
func (b *Bar) Start(name string, total int) {
	if b.out == nil {
		b.out = os.Stderr
	}
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetDescription(fmt.Sprintf("%s", name)),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
	)
}

// Add ticks the current bar forward by delta iterations.
func (b *Bar) Add(delta int) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Add(delta)
}

// Finish completes and clears the current bar.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	b.bar = nil
}
