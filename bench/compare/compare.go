package main

import (
	"math"
	"sort"
	"strings"
)

// Result is one entry of a benchmark_history file.
type Result struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	NsPerOp  float64            `json:"ns_per_op"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Summary is the top level of a benchmark_history file.
type Summary struct {
	Timestamp string   `json:"timestamp"`
	CommitID  string   `json:"commit_id"`
	Branch    string   `json:"branch"`
	GoVersion string   `json:"go_version"`
	Results   []Result `json:"results"`
}

// MetricChange compares one metric between two runs.
type MetricChange struct {
	Name          string  `json:"name"`
	Base          float64 `json:"base"`
	Current       float64 `json:"current"`
	PercentChange float64 `json:"percent_change"`
	Regression    bool    `json:"regression"`
	Significant   bool    `json:"significant"`
}

// BenchmarkChange compares one benchmark between two runs.
type BenchmarkChange struct {
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Metrics    []MetricChange `json:"metrics"`
	Regression bool           `json:"regression"`
	Score      float64        `json:"score"`
}

// Report is the outcome of comparing two history files.
type Report struct {
	BaseCommit    string            `json:"base_commit"`
	CurrentCommit string            `json:"current_commit"`
	Benchmarks    []BenchmarkChange `json:"benchmarks"`
	Regressions   int               `json:"regressions"`
	Improvements  int               `json:"improvements"`
}

// higherIsBetter lists metric name fragments where growth is good. Table
// shape metrics (capacity, resizes, tombstones, load_factor) and timings
// are better when lower.
var higherIsBetter = []string{"_rate", "throughput"}

func isHigherBetter(metric string) bool {
	for _, frag := range higherIsBetter {
		if strings.Contains(metric, frag) {
			return true
		}
	}
	return false
}

// compare matches benchmarks by name and flags metrics that moved in the
// wrong direction by at least threshold percent.
func compare(base, current Summary, threshold float64) Report {
	baseByName := make(map[string]Result, len(base.Results))
	for _, r := range base.Results {
		baseByName[r.Name] = r
	}

	report := Report{BaseCommit: base.CommitID, CurrentCommit: current.CommitID}
	for _, cur := range current.Results {
		prev, ok := baseByName[cur.Name]
		if !ok {
			continue
		}

		bc := BenchmarkChange{Name: cur.Name, Category: cur.Category}
		curMetrics := withNsPerOp(cur)
		for name, was := range withNsPerOp(prev) {
			now, ok := curMetrics[name]
			if !ok {
				continue
			}
			mc := MetricChange{Name: name, Base: was, Current: now}
			if was != 0 {
				mc.PercentChange = (now - was) / was * 100
			}
			worse := mc.PercentChange < 0
			if !isHigherBetter(name) {
				worse = mc.PercentChange > 0
			}
			mc.Regression = worse
			mc.Significant = math.Abs(mc.PercentChange) >= threshold
			if worse && mc.Significant {
				bc.Regression = true
			}
			if worse {
				bc.Score -= math.Abs(mc.PercentChange)
			} else {
				bc.Score += math.Abs(mc.PercentChange)
			}
			bc.Metrics = append(bc.Metrics, mc)
		}
		if len(bc.Metrics) > 0 {
			bc.Score /= float64(len(bc.Metrics))
		}
		sort.Slice(bc.Metrics, func(i, j int) bool {
			return math.Abs(bc.Metrics[i].PercentChange) > math.Abs(bc.Metrics[j].PercentChange)
		})

		switch {
		case bc.Regression:
			report.Regressions++
		case bc.Score > 0:
			report.Improvements++
		}
		report.Benchmarks = append(report.Benchmarks, bc)
	}

	// Worst first.
	sort.Slice(report.Benchmarks, func(i, j int) bool {
		a, b := report.Benchmarks[i], report.Benchmarks[j]
		if a.Regression != b.Regression {
			return a.Regression
		}
		return a.Score < b.Score
	})
	return report
}

func withNsPerOp(r Result) map[string]float64 {
	m := make(map[string]float64, len(r.Metrics)+1)
	for k, v := range r.Metrics {
		m[k] = v
	}
	if r.NsPerOp != 0 {
		m["ns_per_op"] = r.NsPerOp
	}
	return m
}
