// Command compare reports regressions between two benchmark_history files
// written by the scale benchmarks.
//
//	go run ./bench/compare benchmark_history/baseline.json benchmark_history/latest.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so that deferred cleanup, including
// flushing the logger, happens before main exits.
func run(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	threshold := fs.Float64("threshold", 5, "percent change treated as significant")
	output := fs.String("o", "benchmark-comparison.json", "where to write the JSON report")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: compare [-threshold pct] [-o file] <base.json> <current.json>")
		return 2
	}

	base, err := readSummary(fs.Arg(0))
	if err != nil {
		logger.Error("failed to read base results", zap.Error(err))
		return 1
	}
	current, err := readSummary(fs.Arg(1))
	if err != nil {
		logger.Error("failed to read current results", zap.Error(err))
		return 1
	}

	report := compare(base, current, *threshold)
	printReport(report)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("failed to encode report", zap.Error(err))
		return 1
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		logger.Error("failed to write report", zap.String("path", *output), zap.Error(err))
		return 1
	}

	if report.Regressions > 0 {
		logger.Warn("significant regressions detected", zap.Int("benchmarks", report.Regressions))
		return 1
	}
	return 0
}

func readSummary(path string) (Summary, error) {
	var s Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

func printReport(r Report) {
	fmt.Printf("Benchmark comparison: %.8s vs %.8s\n", r.BaseCommit, r.CurrentCommit)
	fmt.Printf("- compared: %d, improved: %d, regressed: %d\n", len(r.Benchmarks), r.Improvements, r.Regressions)

	for _, b := range r.Benchmarks {
		status := "ok"
		if b.Regression {
			status = "REGRESSION"
		}
		fmt.Printf("\n%s (%s): %s, score %+.2f\n", b.Name, b.Category, status, b.Score)
		for _, m := range b.Metrics {
			if m.PercentChange == 0 {
				continue
			}
			mark := " "
			if m.Significant && m.Regression {
				mark = "v"
			} else if m.Significant {
				mark = "^"
			}
			fmt.Printf("  %s %-24s %+8.2f%% (%g -> %g)\n", mark, m.Name, m.PercentChange, m.Base, m.Current)
		}
	}
}
