package criterion

import "regexp"

// Registry holds the ordered sequence of registered benchmarks. It is
// populated at process-init time (by init() functions or explicit Register
// calls from main, per spec §9 — never by hidden static constructors) and
// is read-only once the dispatcher starts running benchmarks, so unlike the
// teacher's proc.Collector this type carries no mutex: spec §5 guarantees
// registration and dispatch never overlap.
type Registry struct {
	order  []string
	byName map[string]*BenchmarkDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*BenchmarkDescriptor)}
}

// Register appends a direct benchmark descriptor, preserving declaration
// order. Registering two descriptors with the same full name is a
// programmer error (spec §8 property 10); both still appear in List output
// in the order they were registered.
func (r *Registry) Register(name string, fn Callable) {
	r.register(&BenchmarkDescriptor{Name: name, Fn: fn})
}

// RegisterTemplate instantiates a parameterized template by binding each
// TemplateInstance's suffix and parameters into its own direct-registry
// entry, the Go replacement for the source's macro-level template
// instantiation (spec §4.7, §9).
func (r *Registry) RegisterTemplate(name string, instances []TemplateInstance) {
	for _, inst := range instances {
		r.register(&BenchmarkDescriptor{
			Name:   name,
			Suffix: inst.Suffix,
			Fn:     inst.Fn,
			Params: inst.Params,
		})
	}
}

func (r *Registry) register(d *BenchmarkDescriptor) {
	full := d.FullName()
	r.order = append(r.order, full)
	r.byName[full] = d
}

// List returns every full name in declaration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListFiltered returns full names matching pattern (search semantics, not
// anchored), still in declaration order.
func (r *Registry) ListFiltered(pattern *regexp.Regexp) []string {
	var out []string
	for _, name := range r.order {
		if pattern.MatchString(name) {
			out = append(out, name)
		}
	}
	return out
}

// Descriptors returns every registered descriptor in declaration order.
func (r *Registry) Descriptors() []*BenchmarkDescriptor {
	out := make([]*BenchmarkDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Filtered returns descriptors whose full name matches pattern, in
// declaration order.
func (r *Registry) Filtered(pattern *regexp.Regexp) []*BenchmarkDescriptor {
	var out []*BenchmarkDescriptor
	for _, name := range r.order {
		if pattern.MatchString(name) {
			out = append(out, r.byName[name])
		}
	}
	return out
}
