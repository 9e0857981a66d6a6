// Command lacam runs the LaCAM driver headlessly against an instance
// file, or a small built-in demo instance if none is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/instancefile"
	"github.com/elektrokombinacija/lacam-mapf/internal/solver"
)

func main() {
	graphPath := flag.String("graph", "", "path to an instance JSON file (default: a built-in demo)")
	maxSteps := flag.Int("max-steps", 100000, "step budget before giving up")
	logLevel := flag.String("log-level", "info", "debug, info, warn, or error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacam: %v\n", err)
		os.Exit(1)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	g, agents, err := loadInstance(*graphPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load instance")
		os.Exit(1)
	}

	d := solver.NewDriver(g, agents, log)
	if err := d.Initialize(); err != nil {
		log.Error().Err(err).Msg("failed to initialize driver")
		os.Exit(1)
	}

	start := time.Now()
	steps := 0
	for steps < *maxSteps && d.Step() {
		steps++
		log.Debug().
			Str("phase", d.Phase().String()).
			Int("open", len(d.Open())).
			Int("explored", d.ExploredCount()).
			Msg("step")
	}
	elapsed := time.Since(start)

	switch d.Status() {
	case solver.StatusSolved:
		sol, _ := d.Solution()
		counters := d.CounterSnapshot()
		fmt.Printf("solved in %d steps (%s)\n", d.StepCount(), elapsed)
		fmt.Printf("solution length: %d timesteps\n", len(sol))
		fmt.Printf("nodes generated: %d, configurations explored: %d\n", counters.NodesGenerated, counters.ConfigurationsExplored)
	case solver.StatusNoSolution:
		fmt.Printf("no solution after %d steps (%s)\n", d.StepCount(), elapsed)
	default:
		fmt.Printf("step budget exhausted after %d steps without termination\n", steps)
		os.Exit(1)
	}
}

func loadInstance(path string) (*core.Graph, []core.Agent, error) {
	if path == "" {
		return demoInstance()
	}
	inst, err := instancefile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return inst.Graph()
}

// demoInstance is the "paper example" scenario: a-b, b-c, a-d.
func demoInstance() (*core.Graph, []core.Agent, error) {
	g := core.NewGraph()
	a := g.AddVertexAt(0, 0)
	b := g.AddVertexAt(1, 0)
	c := g.AddVertexAt(2, 0)
	d := g.AddVertexAt(0, 1)
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, d)

	agents := []core.Agent{
		{ID: 0, Start: a, Goal: d},
		{ID: 1, Start: c, Goal: b},
	}
	return g, agents, nil
}
