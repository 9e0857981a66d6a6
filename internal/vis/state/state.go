// Package state holds the visualizer's UI-facing state: the driver under
// inspection, the current selection, and autoplay.
package state

import (
	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/solver"
)

// NoAgent is the sentinel SelectedAgent value meaning "nothing selected".
const NoAgent = core.AgentID(-1)

// State bundles the driver and the UI state layered on top of it.
type State struct {
	Driver *solver.Driver
	Graph  *core.Graph
	Agents []core.Agent

	SelectedAgent  core.AgentID
	SelectedVertex core.VertexID
	HasSelectedVtx bool

	Playing  bool
	StepsPer int // driver Step() calls applied per autoplay tick
}

// NewState wires a driver over a graph and agent set.
func NewState(g *core.Graph, agents []core.Agent, d *solver.Driver) *State {
	return &State{
		Driver:        d,
		Graph:         g,
		Agents:        agents,
		SelectedAgent: NoAgent,
		StepsPer:      1,
	}
}

// TogglePlay flips autoplay on or off.
func (s *State) TogglePlay() {
	s.Playing = !s.Playing
}

// Tick advances the driver by StepsPer steps if autoplay is on and the
// search has not terminated. Returns whether any step was taken.
func (s *State) Tick() bool {
	if !s.Playing || s.Driver.Status() != solver.StatusRunning {
		s.Playing = false
		return false
	}
	for i := 0; i < s.StepsPer; i++ {
		if !s.Driver.Step() {
			s.Playing = false
			break
		}
	}
	return true
}

// SelectAgent sets or clears the selected agent.
func (s *State) SelectAgent(id core.AgentID) {
	if s.SelectedAgent == id {
		s.SelectedAgent = NoAgent
		return
	}
	s.SelectedAgent = id
}

// SelectVertex sets or clears the selected vertex.
func (s *State) SelectVertex(id core.VertexID) {
	if s.HasSelectedVtx && s.SelectedVertex == id {
		s.HasSelectedVtx = false
		return
	}
	s.SelectedVertex = id
	s.HasSelectedVtx = true
}

// StartGoalSets builds the start/goal membership maps DrawGraph needs for
// vertex highlighting.
func (s *State) StartGoalSets() (start, goal map[core.VertexID]bool) {
	start = make(map[core.VertexID]bool, len(s.Agents))
	goal = make(map[core.VertexID]bool, len(s.Agents))
	for _, a := range s.Agents {
		start[a.Start] = true
		goal[a.Goal] = true
	}
	return
}
