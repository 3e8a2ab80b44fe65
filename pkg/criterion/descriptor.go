package criterion

// Callable is the invocation contract user benchmarks implement. t is the
// timestamp handle (see Timer); params is whatever value was bound at
// registration time (nil for a plain Register call, the bound argument
// tuple for a template instance).
type Callable func(t *Timer, params any)

// BenchmarkDescriptor binds a name, an optional instance suffix, a
// Callable, and an opaque parameter value. Descriptors are created at
// registration time and never mutated afterward (spec §3).
type BenchmarkDescriptor struct {
	Name   string
	Suffix string
	Fn     Callable
	Params any
}

// FullName is the descriptor name concatenated with its instance suffix,
// spec's "Full-name". It identifies a benchmark within one run but
// uniqueness is by convention, not enforced (spec §8 property 10).
func (d *BenchmarkDescriptor) FullName() string {
	return d.Name + d.Suffix
}

// TemplateInstance binds one parameter tuple to a template benchmark. The
// same template Callable may be instantiated many times, each with its own
// Suffix and Params, replacing the original's type-parameter binding plus
// opaque void* pointer with a plain closure-friendly value (spec §9).
type TemplateInstance struct {
	Suffix string
	Fn     Callable
	Params any
}
