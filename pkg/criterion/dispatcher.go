package criterion

import "regexp"

// Dispatcher iterates a Registry in declaration order and invokes an Engine
// on each descriptor (spec §4.7). A benchmark's lifecycle is Registered →
// Selected → OverheadEstimated → Warmup → Running → Completed; there is no
// failure state for the benchmark itself, a failing callable aborts the
// process (spec §4.7, §7).
type Dispatcher struct {
	registry *Registry
	engine   *Engine
}

// NewDispatcher returns a Dispatcher bound to registry and engine.
func NewDispatcher(registry *Registry, engine *Engine) *Dispatcher {
	return &Dispatcher{registry: registry, engine: engine}
}

// RunAll dispatches every registered descriptor in declaration order,
// inserting each BenchmarkResult into a fresh ResultsStore keyed by full
// name and appended to the ordered execution list.
func (disp *Dispatcher) RunAll() *ResultsStore {
	return disp.run(disp.registry.Descriptors())
}

// RunFiltered dispatches only descriptors whose full name matches pattern,
// still in declaration order (spec §4.7, §8 property 7: list-filtered and
// run-filtered select the same full names for any regex).
func (disp *Dispatcher) RunFiltered(pattern *regexp.Regexp) *ResultsStore {
	return disp.run(disp.registry.Filtered(pattern))
}

func (disp *Dispatcher) run(descriptors []*BenchmarkDescriptor) *ResultsStore {
	store := NewResultsStore()
	for _, d := range descriptors {
		store.Insert(disp.engine.Run(d))
	}
	return store
}
