// Package main provides a performance benchmarking tool for the dietradar CLI.
// It measures execution times across datasets and command types, running each
// command several times with the run log disabled and then with the SQLite run
// log enabled, and writes CSV output for performance analysis.
//
// Prerequisites:
// - dietradar binary installed and available in PATH
//
// Usage: go run benchmark/main.go [dataset-dir]
//
//	dataset-dir: Optional directory of JSON/YAML/TOML datasets. The built-in
//	sample dataset is always benchmarked.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"time"
)

// BenchmarkResult holds the average time of one command without and with the run log.
type BenchmarkResult struct {
	Dataset    string
	Command    string
	NoLogTime  string
	SQLiteTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout  time.Duration
	Runs     int
	Datasets map[string]string // name -> path, empty path is the built-in sample
	Commands map[string][]string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [dataset-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		Timeout:  time.Minute,
		Runs:     5,
		Datasets: map[string]string{"builtin": ""},
		Commands: map[string][]string{
			"table":      {"table", "--output", "json"},
			"detail":     {"table", "--detail", "--output", "csv"},
			"series":     {"series", "--hover", "vegan", "--output", "json"},
			"chart":      {"chart", "--output", "json"},
			"similarity": {"similarity", "--output", "json"},
		},
	}

	if len(os.Args) == 2 {
		if err := addDatasets(&config, os.Args[1]); err != nil {
			fmt.Printf("Failed to read datasets: %v\n", err)
			os.Exit(1)
		}
	}

	if _, err := exec.LookPath("dietradar"); err != nil {
		fmt.Printf("Prerequisites check failed: dietradar binary not found in PATH\n")
		os.Exit(1)
	}

	fmt.Printf("Clearing run log...\n")
	clearCmd := exec.Command("dietradar", "runs", "clear", "--run-backend", "sqlite")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run log: %v\nOutput: %s\n", err, string(output))
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// addDatasets registers every dataset file found in dir.
func addDatasets(config *BenchmarkConfig, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".json", ".yaml", ".yml", ".toml":
			config.Datasets[entry.Name()] = filepath.Join(dir, entry.Name())
		}
	}
	return nil
}

// sortedKeys returns map keys in a stable order for reproducible output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// runBenchmarks executes all commands against every dataset.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %d commands, %d runs each, %v timeout\n",
		len(config.Datasets), len(config.Commands), config.Runs, config.Timeout)

	for _, name := range sortedKeys(config.Datasets) {
		path := config.Datasets[name]
		fmt.Printf("Benchmarking %s\n", name)
		for _, command := range sortedKeys(config.Commands) {
			args := config.Commands[command]
			if path != "" {
				args = append(slices.Clone(args), "--dataset", path)
			}
			results = append(results, BenchmarkResult{
				Dataset:    name,
				Command:    command,
				NoLogTime:  averageTime(runBenchmark(config, args, "none")),
				SQLiteTime: averageTime(runBenchmark(config, args, "sqlite")),
			})
		}
	}

	return results
}

// runBenchmark executes a dietradar command several times with the given run backend.
func runBenchmark(config BenchmarkConfig, args []string, backend string) []float64 {
	args = append(slices.Clone(args), "--run-backend", backend, "--output-file", os.DevNull)

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("dietradar", args...)
		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	return times
}

// averageTime formats the mean of times, or TIMEOUT when nothing succeeded.
func averageTime(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/dietradar_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "cmd", "no_log_avg", "sqlite_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoLogTime, result.SQLiteTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-16s %-10s: No log: %s, SQLite log: %s\n", result.Dataset, result.Command, result.NoLogTime, result.SQLiteTime)
	}
}
