package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ja7ad/criterion/pkg/criterion"
)

var csvHeader = []string{
	"name", "warmup_runs", "iterations",
	"mean_execution_time", "fastest_execution_time", "slowest_execution_time",
	"lowest_rsd_execution_time", "lowest_rsd_percentage", "lowest_rsd_index",
	"average_iteration_performance", "fastest_iteration_performance", "slowest_iteration_performance",
}

// WriteCSV writes store to w in the literal header format spec §6 requires:
// one row per benchmark, declaration order, fixed-point 2-decimal numerics.
func WriteCSV(w io.Writer, store *criterion.ResultsStore) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rowsFrom(store) {
		record := []string{
			row.Name,
			strconv.Itoa(row.WarmupRuns),
			strconv.Itoa(row.Iterations),
			formatFixed(row.MeanExecutionTime),
			formatFixed(row.FastestExecutionTime),
			formatFixed(row.SlowestExecutionTime),
			formatFixed(row.LowestRSDExecutionTime),
			formatFixed(row.LowestRSDPercentage),
			strconv.Itoa(row.LowestRSDIndex),
			formatFixed(row.AverageIterationPerformance),
			formatFixed(row.FastestIterationPerformance),
			formatFixed(row.SlowestIterationPerformance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
