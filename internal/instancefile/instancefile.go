// Package instancefile defines the on-disk JSON representation of a MAPF
// instance, shared by the generator, the benchmark runner, and the CLI.
package instancefile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
)

// Vertex is one graph node, with an optional render position.
type Vertex struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge connects two vertices by id.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Agent is one agent's start and goal vertex ids.
type Agent struct {
	ID    int `json:"id"`
	Start int `json:"start"`
	Goal  int `json:"goal"`
}

// Instance is the full on-disk problem description.
type Instance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Generated time.Time `json:"generated"`
	Vertices  []Vertex  `json:"vertices"`
	Edges     []Edge    `json:"edges"`
	Agents    []Agent   `json:"agents"`
}

// FromGraph builds an Instance from a live graph and agent set, stamping a
// fresh random id.
func FromGraph(name string, g *core.Graph, agents []core.Agent) *Instance {
	inst := &Instance{
		ID:        uuid.NewString(),
		Name:      name,
		Generated: time.Now().UTC(),
	}
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		inst.Vertices = append(inst.Vertices, Vertex{ID: int(id), X: v.Pos.X, Y: v.Pos.Y})
	}
	for _, e := range g.Edges() {
		inst.Edges = append(inst.Edges, Edge{From: int(e.From), To: int(e.To)})
	}
	for _, a := range agents {
		inst.Agents = append(inst.Agents, Agent{ID: int(a.ID), Start: int(a.Start), Goal: int(a.Goal)})
	}
	return inst
}

// Graph reconstructs a core.Graph and agent slice from the instance.
func (inst *Instance) Graph() (*core.Graph, []core.Agent, error) {
	g := core.NewGraph()
	idMap := make(map[int]core.VertexID, len(inst.Vertices))
	for _, v := range inst.Vertices {
		idMap[v.ID] = g.AddVertexAt(v.X, v.Y)
	}
	for _, e := range inst.Edges {
		from, ok1 := idMap[e.From]
		to, ok2 := idMap[e.To]
		if !ok1 || !ok2 {
			return nil, nil, fmt.Errorf("instancefile: edge references unknown vertex %d or %d", e.From, e.To)
		}
		g.AddEdge(from, to)
	}

	agents := make([]core.Agent, len(inst.Agents))
	for i, a := range inst.Agents {
		start, ok1 := idMap[a.Start]
		goal, ok2 := idMap[a.Goal]
		if !ok1 || !ok2 {
			return nil, nil, fmt.Errorf("instancefile: agent %d references unknown vertex", a.ID)
		}
		agents[i] = core.Agent{ID: core.AgentID(a.ID), Start: start, Goal: goal}
	}
	return g, agents, nil
}

// Load reads and parses an instance file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instancefile: read %s: %w", path, err)
	}
	var inst Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("instancefile: parse %s: %w", path, err)
	}
	return &inst, nil
}

// Save writes the instance as indented JSON.
func (inst *Instance) Save(path string) error {
	data, err := json.MarshalIndent(inst, "", "  ")
	if err != nil {
		return fmt.Errorf("instancefile: marshal %s: %w", inst.Name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("instancefile: write %s: %w", path, err)
	}
	return nil
}
