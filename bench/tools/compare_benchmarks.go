// Command tools compares recorded benchmark runs.
//
// The scale benchmarks append their results to
// benchmark_history/latest.json. This program diffs such a summary against
// a baseline, prints a per-metric report, writes the comparison as JSON,
// and exits non-zero when a significant regression is found, so it can
// gate CI. Typical usage from the repository root:
//
//	go test -bench=. ./bench/
//	go run ./bench/tools                 # latest vs baseline
//	go run ./bench/tools -promote        # latest becomes the new baseline
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func main() {
	baseFile := flag.String("base", "benchmark_history/baseline.json", "baseline summary to compare against")
	currentFile := flag.String("current", "benchmark_history/latest.json", "summary produced by the latest run")
	outputFile := flag.String("o", "benchmark-comparison.json", "file to write the comparison JSON to")
	threshold := flag.Float64("threshold", 5.0, "percent change treated as significant")
	promote := flag.Bool("promote", false, "copy the current summary over the baseline and exit")
	flag.Parse()

	if *promote {
		if err := promoteBaseline(*currentFile, *baseFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error promoting baseline: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Promoted %s to %s\n", *currentFile, *baseFile)
		return
	}

	base, err := loadSummary(*baseFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading base summary: %v\n", err)
		os.Exit(1)
	}
	current, err := loadSummary(*currentFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading current summary: %v\n", err)
		os.Exit(1)
	}

	summary := compareSummaries(base, current, *threshold)
	printComparisonSummary(summary)

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating comparison JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, jsonData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing comparison file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Comparison JSON written to %s\n", *outputFile)

	if summary.SignificantRegressions > 0 {
		fmt.Printf("\n⚠️ WARNING: %d significant performance regressions detected!\n",
			summary.SignificantRegressions)
		os.Exit(1)
	}
}

func loadSummary(path string) (BenchSummary, error) {
	var summary BenchSummary
	data, err := os.ReadFile(path)
	if err != nil {
		return summary, err
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("parsing %s: %w", path, err)
	}
	return summary, nil
}

// promoteBaseline copies the current summary over the baseline so the next
// comparison measures against this run.
func promoteBaseline(currentPath, basePath string) error {
	data, err := os.ReadFile(currentPath)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(basePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(basePath, data, 0644)
}

// compareSummaries diffs every benchmark present in both summaries,
// metric by metric. Benchmarks that appear on only one side are skipped.
func compareSummaries(base, current BenchSummary, threshold float64) ComparisonSummary {
	baseResults := make(map[string]BenchResult)
	for _, result := range base.Results {
		baseResults[result.Name] = result
	}

	comparisons := []BenchmarkComparison{}
	significantRegressions := 0
	improvedBenchmarks := 0
	regressionBenchmarks := 0

	for _, currentResult := range current.Results {
		baseResult, found := baseResults[currentResult.Name]
		if !found {
			continue
		}

		comparison := compareResult(baseResult, currentResult, threshold)
		if comparison.HasRegressions {
			regressionBenchmarks++
			for _, metric := range comparison.MetricComparisons {
				if metric.IsRegression && metric.IsSignificant {
					significantRegressions++
				}
			}
		} else if comparison.Score > 0 {
			improvedBenchmarks++
		}

		comparisons = append(comparisons, comparison)
	}

	// Worst regressions first
	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].HasRegressions != comparisons[j].HasRegressions {
			return comparisons[i].HasRegressions
		}
		return comparisons[i].Score < comparisons[j].Score
	})

	return ComparisonSummary{
		BaseCommit:             base.CommitID,
		CurrentCommit:          current.CommitID,
		TotalBenchmarks:        len(comparisons),
		ImprovedBenchmarks:     improvedBenchmarks,
		RegressionBenchmarks:   regressionBenchmarks,
		SignificantRegressions: significantRegressions,
		BenchmarkComparisons:   comparisons,
	}
}

func compareResult(base, current BenchResult, threshold float64) BenchmarkComparison {
	comparison := BenchmarkComparison{
		Name:              current.Name,
		Category:          current.Category,
		MetricComparisons: []MetricComparison{},
	}

	overallScore := 0.0
	totalMetrics := 0

	for metricName, currentValue := range current.Metrics {
		baseValue, found := base.Metrics[metricName]
		if !found {
			continue
		}

		percentChange := 0.0
		if baseValue != 0 {
			percentChange = ((currentValue - baseValue) / baseValue) * 100
		}

		// For rates and throughput a higher value is better; for sizes
		// and times a lower one is
		isRegression := percentChange > 0
		isImprovement := percentChange < 0
		if isHigherBetterMetric(metricName) {
			isRegression, isImprovement = isImprovement, isRegression
		}
		isSignificant := abs(percentChange) >= threshold

		if isRegression && isSignificant {
			comparison.HasRegressions = true
		}
		if isImprovement {
			overallScore += abs(percentChange)
		} else if isRegression {
			overallScore -= abs(percentChange)
		}
		totalMetrics++

		comparison.MetricComparisons = append(comparison.MetricComparisons, MetricComparison{
			Name:          metricName,
			BaseValue:     baseValue,
			CurrentValue:  currentValue,
			PercentChange: percentChange,
			IsRegression:  isRegression,
			IsImprovement: isImprovement,
			IsSignificant: isSignificant,
		})
	}

	if totalMetrics > 0 {
		comparison.Score = overallScore / float64(totalMetrics)
	}

	switch {
	case comparison.HasRegressions:
		comparison.OverallAssessment = "REGRESSION"
	case comparison.Score > 0:
		comparison.OverallAssessment = "IMPROVEMENT"
	default:
		comparison.OverallAssessment = "NEUTRAL"
	}
	return comparison
}

// printComparisonSummary outputs a human-readable comparison report
func printComparisonSummary(summary ComparisonSummary) {
	fmt.Printf("Benchmark Comparison: %s vs %s\n\n",
		truncateString(summary.BaseCommit, 8),
		truncateString(summary.CurrentCommit, 8))

	fmt.Printf("Summary:\n")
	fmt.Printf("- Total benchmarks compared: %d\n", summary.TotalBenchmarks)
	fmt.Printf("- Improvements: %d\n", summary.ImprovedBenchmarks)
	fmt.Printf("- Regressions: %d (significant metrics: %d)\n\n",
		summary.RegressionBenchmarks, summary.SignificantRegressions)

	if summary.TotalBenchmarks == 0 {
		fmt.Println("No matching benchmarks found for comparison")
		return
	}

	fmt.Println("Benchmark Details (sorted by impact):")
	fmt.Println("======================================")

	for _, comp := range summary.BenchmarkComparisons {
		// Emoji indicator for quick visual feedback
		indicator := "✅" // Improvement
		if comp.HasRegressions {
			indicator = "❌" // Regression
		} else if comp.Score < 0 {
			indicator = "⚠️" // Minor regression but not significant
		} else if comp.Score == 0 {
			indicator = "⏺" // Neutral
		}

		fmt.Printf("\n%s %s (%s):\n", indicator, comp.Name, comp.Category)

		// Show the most impactful metrics first
		sort.Slice(comp.MetricComparisons, func(i, j int) bool {
			return abs(comp.MetricComparisons[i].PercentChange) >
				abs(comp.MetricComparisons[j].PercentChange)
		})

		for _, metric := range comp.MetricComparisons {
			// Skip metrics with no change
			if metric.PercentChange == 0 {
				continue
			}

			metricIndicator := " "
			if metric.IsRegression && metric.IsSignificant {
				metricIndicator = "▼" // Significant regression
			} else if metric.IsImprovement && metric.IsSignificant {
				metricIndicator = "▲" // Significant improvement
			}

			fmt.Printf("  %s %-22s: %+8.2f%% (%g → %g)\n",
				metricIndicator,
				metric.Name,
				metric.PercentChange,
				metric.BaseValue,
				metric.CurrentValue)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// isHigherBetterMetric reports whether a larger value for the named metric
// means better performance.
func isHigherBetterMetric(metricName string) bool {
	higherBetterMetrics := []string{
		"rate", "throughput", "operations", "ops_per_sec",
	}
	for _, pattern := range higherBetterMetrics {
		if strings.Contains(metricName, pattern) {
			return true
		}
	}
	// Default: lower is better (sizes, times, allocations)
	return false
}
