package report

import (
	"fmt"
	"io"

	"github.com/ja7ad/criterion/pkg/criterion"
)

var tableColumns = []string{
	"name", "warmup_runs", "iterations",
	"mean_execution_time", "fastest_execution_time", "slowest_execution_time",
	"lowest_rsd_execution_time", "lowest_rsd_percentage", "lowest_rsd_index",
	"average_iteration_performance", "fastest_iteration_performance", "slowest_iteration_performance",
}

// WriteMarkdown writes store to w as a column-aligned Markdown table (spec
// §6), one row per benchmark in declaration order.
func WriteMarkdown(w io.Writer, store *criterion.ResultsStore) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", joinPipe(tableColumns)); err != nil {
		return err
	}
	sep := make([]string, len(tableColumns))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", joinPipe(sep)); err != nil {
		return err
	}
	for _, row := range rowsFrom(store) {
		_, err := fmt.Fprintf(w, "| %s | %d | %d | %s | %s | %s | %s | %s | %d | %s | %s | %s |\n",
			row.Name, row.WarmupRuns, row.Iterations,
			formatFixed(row.MeanExecutionTime), formatFixed(row.FastestExecutionTime), formatFixed(row.SlowestExecutionTime),
			formatFixed(row.LowestRSDExecutionTime), formatFixed(row.LowestRSDPercentage), row.LowestRSDIndex,
			formatFixed(row.AverageIterationPerformance), formatFixed(row.FastestIterationPerformance), formatFixed(row.SlowestIterationPerformance),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func joinPipe(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += " | "
		}
		out += c
	}
	return out
}
