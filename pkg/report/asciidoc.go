package report

import (
	"fmt"
	"io"

	"github.com/ja7ad/criterion/pkg/criterion"
)

// WriteAsciiDoc writes store to w as an AsciiDoc table (spec §6), one row
// per benchmark in declaration order.
func WriteAsciiDoc(w io.Writer, store *criterion.ResultsStore) error {
	if _, err := fmt.Fprintf(w, "[cols=\"%d*\", options=\"header\"]\n|===\n", len(tableColumns)); err != nil {
		return err
	}
	for _, c := range tableColumns {
		if _, err := fmt.Fprintf(w, "|%s\n", c); err != nil {
			return err
		}
	}
	for _, row := range rowsFrom(store) {
		values := []any{
			row.Name, row.WarmupRuns, row.Iterations,
			formatFixed(row.MeanExecutionTime), formatFixed(row.FastestExecutionTime), formatFixed(row.SlowestExecutionTime),
			formatFixed(row.LowestRSDExecutionTime), formatFixed(row.LowestRSDPercentage), row.LowestRSDIndex,
			formatFixed(row.AverageIterationPerformance), formatFixed(row.FastestIterationPerformance), formatFixed(row.SlowestIterationPerformance),
		}
		for _, v := range values {
			if _, err := fmt.Fprintf(w, "\n|%v", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "|===")
	return err
}
