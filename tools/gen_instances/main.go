// Command gen_instances generates deterministic MAPF grid instances for
// benchmarking.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/instancefile"
)

// params controls a single generated instance.
type params struct {
	seed      int64
	width     int
	height    int
	numAgents int
	obstacleP float64
}

func generate(p params) (*core.Graph, []core.Agent) {
	rng := rand.New(rand.NewSource(p.seed))

	g := core.NewGraph()
	ids := make([][]core.VertexID, p.height)
	blocked := make([][]bool, p.height)
	for y := 0; y < p.height; y++ {
		ids[y] = make([]core.VertexID, p.width)
		blocked[y] = make([]bool, p.width)
		for x := 0; x < p.width; x++ {
			blocked[y][x] = rng.Float64() < p.obstacleP
			ids[y][x] = g.AddVertexAt(float64(x)*50, float64(y)*50)
		}
	}
	// Always keep the origin free so there is at least one legal start.
	blocked[0][0] = false

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if blocked[y][x] {
				continue
			}
			if x < p.width-1 && !blocked[y][x+1] {
				g.AddEdge(ids[y][x], ids[y][x+1])
			}
			if y < p.height-1 && !blocked[y+1][x] {
				g.AddEdge(ids[y][x], ids[y+1][x])
			}
		}
	}

	var free []core.VertexID
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if !blocked[y][x] {
				free = append(free, ids[y][x])
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	n := p.numAgents
	if 2*n > len(free) {
		n = len(free) / 2
	}
	agents := make([]core.Agent, n)
	for i := 0; i < n; i++ {
		agents[i] = core.Agent{
			ID:    core.AgentID(i),
			Start: free[i],
			Goal:  free[len(free)-1-i],
		}
	}
	return g, agents
}

func main() {
	seed := flag.Int64("seed", 42, "random seed for deterministic generation")
	width := flag.Int("width", 10, "grid width")
	height := flag.Int("height", 10, "grid height")
	agents := flag.Int("agents", 10, "number of agents")
	obstacles := flag.Float64("obstacles", 0.1, "fraction of blocked cells")
	count := flag.Int("count", 1, "number of distinct instances to generate, seeded seed..seed+count-1")
	outputDir := flag.String("output", "testdata", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "gen_instances: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		p := params{
			seed:      *seed + int64(i),
			width:     *width,
			height:    *height,
			numAgents: *agents,
			obstacleP: *obstacles,
		}
		g, agentSet := generate(p)
		name := fmt.Sprintf("grid_%dx%d_a%d_s%d", p.width, p.height, len(agentSet), p.seed)
		inst := instancefile.FromGraph(name, g, agentSet)

		path := filepath.Join(*outputDir, name+".json")
		if err := inst.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "gen_instances: %v\n", err)
			continue
		}
		fmt.Printf("generated: %s (%d agents, %dx%d grid)\n", path, len(agentSet), p.width, p.height)
	}
}
