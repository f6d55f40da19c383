// Package perf holds rendering benchmarks for the dashboard's hot paths
// and the budgets they are checked against.
package perf

import "testing"

// Threshold is a performance budget for a named operation. Name matches
// the benchmark it applies to, without the Benchmark prefix.
type Threshold struct {
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation.
	MaxAlloc int64
}

// Violation records a threshold breach. Field is "ns" or "alloc".
type Violation struct {
	Threshold Threshold
	Actual    int64
	Field     string
}

// DefaultThresholds returns the budgets for one frame's worth of work.
// A Stats frame at 60 fps leaves about 16ms for everything combined.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "ChartRender", MaxNs: 200_000, MaxAlloc: 65536},
		{Name: "PaintChart", MaxNs: 1_000_000, MaxAlloc: 131072},
		{Name: "CanvasRender", MaxNs: 500_000, MaxAlloc: 65536},
		{Name: "Halfblock", MaxNs: 5_000_000, MaxAlloc: 1_048_576},
		{Name: "ResizeToFit", MaxNs: 50_000_000, MaxAlloc: 8_388_608},
		{Name: "ExportDraw", MaxNs: 100_000_000, MaxAlloc: 16_777_216},
		{Name: "StatsView", MaxNs: 8_000_000, MaxAlloc: 2_097_152},
	}
}

// CheckRegression compares named benchmark results against thresholds.
// Results without a threshold, and thresholds without a result, are
// ignored. Violations come back in threshold order.
func CheckRegression(results map[string]testing.BenchmarkResult, thresholds []Threshold) []Violation {
	var violations []Violation
	for _, t := range thresholds {
		r, ok := results[t.Name]
		if !ok || r.N == 0 {
			continue
		}
		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	return violations
}
