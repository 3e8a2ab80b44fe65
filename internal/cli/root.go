// Package cli wires the measurement engine, registry and report writers
// into a single cobra command, the way the teacher's cmd/consumption/main.go
// wires consumption.Config and proc.Collector into its own root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ja7ad/criterion/pkg/criterion"
	"github.com/ja7ad/criterion/pkg/progress"
	"github.com/ja7ad/criterion/pkg/report"
)

var (
	errUnknownExportFormat = fmt.Errorf("export format must be one of csv, json, md, asciidoc")
	errBadExportArgs       = fmt.Errorf("--export_results requires exactly FORMAT,FILENAME")
)

type options struct {
	warmup       int
	list         bool
	listFiltered string
	runFiltered  string
	exportArgs   []string
	quiet        bool
}

// NewRootCommand returns the top-level command for a process that has
// already populated registry (spec §9: registration happens before main
// runs user code; in Go that means the caller builds the registry and hands
// it here).
func NewRootCommand(registry *criterion.Registry) *cobra.Command {
	var o options
	defaultCfg := criterion.DefaultRunnerConfig()

	root := &cobra.Command{
		Use:   "criterion",
		Short: "Microbenchmarking engine",
		Long: `criterion measures the wall-clock execution time of registered callables,
repeating measurements until a statistically stable estimate is reached,
and reports mean, fastest, slowest and lowest-RSD timings.`,
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), registry, o)
		},
	}

	root.Flags().IntVarP(&o.warmup, "warmup", "w", defaultCfg.WarmupRuns, "number of warmup runs (minimum 1)")
	root.Flags().BoolVarP(&o.list, "list", "l", false, "list all registered benchmarks, declaration order")
	root.Flags().StringVar(&o.listFiltered, "list_filtered", "", "list benchmarks whose full name matches REGEX")
	root.Flags().StringVarP(&o.runFiltered, "run_filtered", "r", "", "run only benchmarks whose full name matches REGEX")
	root.Flags().StringSliceVarP(&o.exportArgs, "export_results", "e", nil, "FORMAT,FILENAME — FORMAT is one of csv|json|md|asciidoc")
	root.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress the progress indicator")

	return root
}

func run(ctx context.Context, out io.Writer, registry *criterion.Registry, o options) error {
	if o.warmup < 1 {
		o.warmup = 1
	}

	ctx, stop := notifyShutdownSignals(ctx)
	defer stop()

	if o.list {
		for _, name := range registry.List() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	if o.listFiltered != "" {
		pattern, err := regexp.Compile(o.listFiltered)
		if err != nil {
			return fmt.Errorf("malformed regex: %w", err)
		}
		for _, name := range registry.ListFiltered(pattern) {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	var progressIndicator criterion.ProgressIndicator = criterion.NoopProgress{}
	if !o.quiet {
		progressIndicator = progress.New(os.Stderr)
	}

	cfg := criterion.DefaultRunnerConfig()
	cfg.WarmupRuns = o.warmup
	cfg.Progress = progressIndicator

	engine := criterion.NewEngine(cfg)
	dispatcher := criterion.NewDispatcher(registry, engine)

	var store *criterion.ResultsStore
	if o.runFiltered != "" {
		pattern, err := regexp.Compile(o.runFiltered)
		if err != nil {
			return fmt.Errorf("malformed regex: %w", err)
		}
		store = dispatcher.RunFiltered(pattern)
	} else {
		store = dispatcher.RunAll()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	console := report.NewConsoleWriter(os.Stdout)
	if err := console.Write(store); err != nil {
		return err
	}

	if len(o.exportArgs) > 0 {
		if err := exportResults(o.exportArgs, store); err != nil {
			return err
		}
	}

	return nil
}

func exportResults(args []string, store *criterion.ResultsStore) error {
	if len(args) != 2 {
		return errBadExportArgs
	}
	format, filename := strings.ToLower(args[0]), args[1]

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = report.WriteCSV(f, store)
	case "json":
		err = report.WriteJSON(f, store)
	case "md":
		err = report.WriteMarkdown(f, store)
	case "asciidoc":
		err = report.WriteAsciiDoc(f, store)
	default:
		return errUnknownExportFormat
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, color.New(color.FgGreen).Sprintf("wrote %s results to %s", format, filename))
	return nil
}
