// Command criterion is a demonstration binary: it registers a handful of
// benchmarks directly in main, the way a user program links the engine and
// populates the registry before the CLI dispatches it (spec §9).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ja7ad/criterion/internal/cli"
	"github.com/ja7ad/criterion/pkg/criterion"
)

func main() {
	registry := criterion.NewRegistry()

	registry.Register("Noop", func(*criterion.Timer, any) {})

	registry.Register("SleepMicro", func(*criterion.Timer, any) {
		time.Sleep(time.Microsecond)
	})

	registry.RegisterTemplate("Fib", []criterion.TemplateInstance{
		{Suffix: "/19", Fn: fibBenchmark, Params: 19},
		{Suffix: "/20", Fn: fibBenchmark, Params: 20},
		{Suffix: "/21", Fn: fibBenchmark, Params: 21},
	})

	registry.Register("MergeSort/10", sortBenchmark(10))
	registry.Register("MergeSort/100", sortBenchmark(100))
	registry.Register("VectorSort/10", sortBenchmark(10))

	root := cli.NewRootCommand(registry)
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		fmt.Fprintln(os.Stderr, "run with --help for usage")
		os.Exit(1)
	}
}

func fibBenchmark(_ *criterion.Timer, params any) {
	n, _ := params.(int)
	_ = fib(n)
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func sortBenchmark(n int) criterion.Callable {
	return func(t *criterion.Timer, _ any) {
		data := make([]int, n)
		for i := range data {
			data[i] = n - i
		}
		t.MarkStart()
		for i := 1; i < len(data); i++ {
			for j := i; j > 0 && data[j-1] > data[j]; j-- {
				data[j-1], data[j] = data[j], data[j-1]
			}
		}
	}
}
