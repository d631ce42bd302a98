package hashmap_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// BenchmarkMetrics is the record emitted for one scale benchmark run.
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary collects the records of one invocation together with
// enough build context to compare runs across commits.
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryUsage formats the current heap numbers for progress logs.
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// getMemoryStats returns the current memory stats as metric values.
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// heapAllocBytes runs the collector and reports live heap bytes. Sampling it
// before and after building a table gives the table's resident size, the
// in-memory stand-in for the file-size metrics a persistent store reports.
func heapAllocBytes() float64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc)
}

// cleanupMetrics drops per-interval detail (batch_*, memory_mb_*) so the
// history file keeps only the headline numbers.
func cleanupMetrics(metrics *BenchmarkMetrics) {
	for key := range metrics.Metrics {
		if strings.HasPrefix(key, "batch_") || strings.HasPrefix(key, "memory_mb_") {
			delete(metrics.Metrics, key)
		}
	}
}

// gitRevision reads .git/HEAD directly so the bench run does not need git
// on the PATH. Returns placeholders outside a checkout.
func gitRevision(repoRoot string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return commitID, branch
	}

	ref := strings.TrimSpace(string(head))
	if !strings.HasPrefix(ref, "ref: ") {
		// Detached HEAD holds the commit directly
		if len(ref) >= 8 {
			commitID = ref[:8]
		}
		return commitID, branch
	}

	refPath := strings.TrimPrefix(ref, "ref: ")
	branch = strings.TrimPrefix(refPath, "refs/heads/")

	if commitData, err := os.ReadFile(filepath.Join(repoRoot, ".git", refPath)); err == nil {
		commit := strings.TrimSpace(string(commitData))
		if len(commit) >= 8 {
			commitID = commit[:8]
		}
	}
	return commitID, branch
}

// saveBenchmarkResult appends one benchmark record to the named file under
// benchmark_history/ at the repository root, merging with results already
// recorded by the same invocation.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	cleanupMetrics(&metrics)

	// The bench package sits one directory below the repository root
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	commitID, branch := gitRevision(repoRoot)
	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	// Merge with results recorded earlier in this run, if any
	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existing BenchmarkSummary
		if err := json.Unmarshal(existingData, &existing); err == nil {
			summary.Results = append(existing.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
