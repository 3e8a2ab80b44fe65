// Package report writes a ResultsStore to the console and to the export
// formats spec'd for --export_results: CSV, JSON, Markdown, AsciiDoc.
// Every writer iterates the store's declaration order, never its map, so
// output is stable across runs (spec §5).
package report

import "github.com/ja7ad/criterion/pkg/criterion"

// Row is the flattened view of one BenchmarkResult that every writer
// consumes. Building it once keeps the five writers from repeating the same
// field list; each writer formats the numeric fields itself.
type Row struct {
	Name                        string
	WarmupRuns                  int
	Iterations                  int
	MeanExecutionTime           float64
	FastestExecutionTime        float64
	SlowestExecutionTime        float64
	LowestRSDExecutionTime      float64
	LowestRSDPercentage         float64
	LowestRSDIndex              int
	AverageIterationPerformance float64
	FastestIterationPerformance float64
	SlowestIterationPerformance float64
	AllocsPerOp                 float64
	BytesPerOp                  float64
}

// rowsFrom flattens every result in store's declaration order into Rows.
func rowsFrom(store *criterion.ResultsStore) []Row {
	all := store.All()
	rows := make([]Row, 0, len(all))
	for _, r := range all {
		rows = append(rows, Row{
			Name:                        r.FullName(),
			WarmupRuns:                  r.WarmupRuns,
			Iterations:                  r.Iterations,
			MeanExecutionTime:           r.MeanExecutionTime,
			FastestExecutionTime:        r.FastestExecutionTime,
			SlowestExecutionTime:        r.SlowestExecutionTime,
			LowestRSDExecutionTime:      r.LowestRSDMean,
			LowestRSDPercentage:         r.LowestRSD,
			LowestRSDIndex:              r.LowestRSDIndex,
			AverageIterationPerformance: r.AverageIterationPerformance,
			FastestIterationPerformance: r.FastestIterationPerformance,
			SlowestIterationPerformance: r.SlowestIterationPerformance,
			AllocsPerOp:                 r.AllocsPerOp,
			BytesPerOp:                  r.BytesPerOp,
		})
	}
	return rows
}
