package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/ja7ad/criterion/pkg/criterion"
	"github.com/ja7ad/criterion/pkg/types"
)

// ConsoleWriter prints a human-readable, column-aligned summary, one row per
// benchmark, colorized the way the teacher's cmd/consumption/main.go colors
// its own console output.
type ConsoleWriter struct {
	out io.Writer
}

// NewConsoleWriter returns a ConsoleWriter writing to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

// Write renders every result in store's declaration order.
func (w *ConsoleWriter) Write(store *criterion.ResultsStore) error {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)

	header := color.New(color.FgHiWhite, color.Bold)
	header.Fprintln(tw, "NAME\tWARMUP\tITER\tMEAN\tFASTEST\tSLOWEST\tLOWEST RSD\tRSD%\tAVG IPS\tBYTES/OP")

	for _, row := range rowsFrom(store) {
		name := color.New(color.FgCyan).Sprint(row.Name)
		bytesPerOp := "-"
		if row.BytesPerOp > 0 {
			bytesPerOp = types.Bytes(row.BytesPerOp).Humanized()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			name,
			row.WarmupRuns,
			row.Iterations,
			row.MeanExecutionTime,
			row.FastestExecutionTime,
			row.SlowestExecutionTime,
			row.LowestRSDExecutionTime,
			row.LowestRSDPercentage,
			row.AverageIterationPerformance,
			bytesPerOp,
		)
	}

	return tw.Flush()
}
