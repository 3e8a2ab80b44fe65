package report

import (
	"encoding/json"
	"io"

	"github.com/ja7ad/criterion/pkg/criterion"
)

// jsonRow mirrors Row with explicit field tags, since spec §6 names the
// exported JSON fields and wraps them under the top-level "benchmarks" key.
type jsonRow struct {
	Name                        string  `json:"name"`
	WarmupRuns                  int     `json:"warmup_runs"`
	Iterations                  int     `json:"iterations"`
	MeanExecutionTime           float64 `json:"mean_execution_time"`
	FastestExecutionTime        float64 `json:"fastest_execution_time"`
	SlowestExecutionTime        float64 `json:"slowest_execution_time"`
	LowestRSDExecutionTime      float64 `json:"lowest_rsd_execution_time"`
	LowestRSDPercentage         float64 `json:"lowest_rsd_percentage"`
	LowestRSDIndex              int     `json:"lowest_rsd_index"`
	AverageIterationPerformance float64 `json:"average_iteration_performance"`
	FastestIterationPerformance float64 `json:"fastest_iteration_performance"`
	SlowestIterationPerformance float64 `json:"slowest_iteration_performance"`
	AllocsPerOp                 float64 `json:"allocs_per_op,omitempty"`
	BytesPerOp                  float64 `json:"bytes_per_op,omitempty"`
}

type jsonDocument struct {
	Benchmarks []jsonRow `json:"benchmarks"`
}

// WriteJSON writes store to w as `{"benchmarks": [...]}`, one object per
// benchmark in declaration order (spec §6).
func WriteJSON(w io.Writer, store *criterion.ResultsStore) error {
	rows := rowsFrom(store)
	doc := jsonDocument{Benchmarks: make([]jsonRow, 0, len(rows))}
	for _, row := range rows {
		doc.Benchmarks = append(doc.Benchmarks, jsonRow(row))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
