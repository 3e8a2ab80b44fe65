package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// notifyShutdownSignals traps SIGINT, SIGTERM and SIGHUP, returning a context
// that a trapped signal cancels and a stop function that resets the
// terminal's color state, the counterpart of the original's signal_handler
// (spec §5, §7). The caller checks the context only after dispatch has
// finished, so a trapped signal does not interrupt running benchmarks.
//
// Go's runtime has no safe, installable handler for SIGSEGV/SIGILL/SIGABRT/
// SIGFPE: those are synchronous fault signals the runtime itself intercepts
// for its own crash reporting, and fighting that would corrupt the crash
// dump. Only the asynchronous signals below are trapped.
func notifyShutdownSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	return ctx, restoringStop(stop)
}

// restoringStop wraps stop so the terminal's color state is reset whenever
// stop is called, before the underlying stop cancels the context.
func restoringStop(stop context.CancelFunc) context.CancelFunc {
	return func() {
		color.Unset()
		stop()
	}
}
