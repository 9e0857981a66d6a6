// Command run_benchmarks runs the LaCAM driver over a directory of
// instance files and collects per-run metrics into a CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/lacam-mapf/internal/instancefile"
	"github.com/elektrokombinacija/lacam-mapf/internal/solver"
)

// result holds one instance's run outcome.
type result struct {
	instance               string
	numAgents              int
	status                 string
	steps                  int
	nodesGenerated         int
	configurationsExplored int
	runtimeMs              float64
}

func runInstance(path string, maxSteps int) (*result, error) {
	inst, err := instancefile.Load(path)
	if err != nil {
		return nil, err
	}
	g, agents, err := inst.Graph()
	if err != nil {
		return nil, err
	}

	log := zerolog.New(io.Discard)
	d := solver.NewDriver(g, agents, log)
	if err := d.Initialize(); err != nil {
		return nil, err
	}

	start := time.Now()
	steps := 0
	for steps < maxSteps && d.Step() {
		steps++
	}
	elapsed := time.Since(start)

	counters := d.CounterSnapshot()
	return &result{
		instance:               inst.Name,
		numAgents:              len(agents),
		status:                 d.Status().String(),
		steps:                  d.StepCount(),
		nodesGenerated:         counters.NodesGenerated,
		configurationsExplored: counters.ConfigurationsExplored,
		runtimeMs:              float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

func writeCSV(results []*result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"instance", "num_agents", "status", "steps",
		"nodes_generated", "configurations_explored", "runtime_ms",
		"go_version", "os", "arch",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.instance, fmt.Sprintf("%d", r.numAgents), r.status, fmt.Sprintf("%d", r.steps),
			fmt.Sprintf("%d", r.nodesGenerated), fmt.Sprintf("%d", r.configurationsExplored),
			fmt.Sprintf("%.3f", r.runtimeMs),
			runtime.Version(), runtime.GOOS, runtime.GOARCH,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []*result) {
	solved, unsolved := 0, 0
	var totalRuntime, totalSteps float64
	for _, r := range results {
		if r.status == "solved" {
			solved++
		} else {
			unsolved++
		}
		totalRuntime += r.runtimeMs
		totalSteps += float64(r.steps)
	}
	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("instances: %d, solved: %d, unsolved/budget-exhausted: %d\n", len(results), solved, unsolved)
	if len(results) > 0 {
		fmt.Printf("avg runtime: %.2fms, avg steps: %.1f\n", totalRuntime/float64(len(results)), totalSteps/float64(len(results)))
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "directory containing instance JSON files")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "output CSV file")
	maxSteps := flag.Int("max-steps", 100000, "step budget per instance")
	verbose := flag.Bool("verbose", false, "print per-instance progress")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: %v\n", err)
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "run_benchmarks: no instance files found in %s; run gen_instances first\n", *inputDir)
		os.Exit(1)
	}

	var results []*result
	for i, f := range files {
		if *verbose {
			fmt.Printf("[%d/%d] %s ... ", i+1, len(files), f)
		}
		r, err := runInstance(f, *maxSteps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run_benchmarks: %s: %v\n", f, err)
			continue
		}
		results = append(results, r)
		if *verbose {
			fmt.Printf("%s (%.2fms, %d steps)\n", r.status, r.runtimeMs, r.steps)
		}
	}

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("results written to: %s\n", *outputFile)
	printSummary(results)
}
