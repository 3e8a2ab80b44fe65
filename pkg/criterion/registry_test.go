package criterion

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func noop(*Timer, any) {}

func TestRegistry_PreservesDeclarationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("A", noop)
	r.Register("B", noop)
	r.Register("C", noop)

	require.Equal(t, []string{"A", "B", "C"}, r.List())
}

func TestRegistry_Template_InstancesGetDistinctFullNames(t *testing.T) {
	r := NewRegistry()
	r.RegisterTemplate("Fib", []TemplateInstance{
		{Suffix: "/19", Fn: noop, Params: 19},
		{Suffix: "/20", Fn: noop, Params: 20},
		{Suffix: "/21", Fn: noop, Params: 21},
	})

	require.Equal(t, []string{"Fib/19", "Fib/20", "Fib/21"}, r.List())
	for _, d := range r.Descriptors() {
		require.Equal(t, "Fib", d.Name)
	}
}

func TestRegistry_ListFiltered(t *testing.T) {
	r := NewRegistry()
	r.Register("MergeSort/10", noop)
	r.Register("MergeSort/100", noop)
	r.Register("VectorSort/10", noop)

	got := r.ListFiltered(regexp.MustCompile("^MergeSort"))
	require.Equal(t, []string{"MergeSort/10", "MergeSort/100"}, got)
}

func TestRegistry_FilteredAndListFilteredAgree(t *testing.T) {
	r := NewRegistry()
	r.Register("Alpha", noop)
	r.Register("Beta", noop)
	r.Register("AlphaBeta", noop)

	pattern := regexp.MustCompile("Alpha")
	names := r.ListFiltered(pattern)
	descriptors := r.Filtered(pattern)

	require.Len(t, descriptors, len(names))
	for i, d := range descriptors {
		require.Equal(t, names[i], d.FullName())
	}
}

func TestRegistry_DuplicateFullNamesBothAppearInOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("Dup", noop)
	r.Register("Dup", noop)

	require.Equal(t, []string{"Dup", "Dup"}, r.List())
}
