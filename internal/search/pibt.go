package search

import (
	"sort"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
)

// Outcome tags the result of a successor-generation attempt. The
// generator never returns a Go error: these are expected, non-fatal
// branches of the search, not exceptional conditions.
type Outcome int

const (
	// OK means Q' was produced and is safe to use.
	OK Outcome = iota
	// FailVertexConflict means two constraints pinned the same vertex.
	FailVertexConflict
	// FailNoMove means some agent had no unoccupied candidate vertex.
	FailNoMove
	// FailSwapConflict means two agents would cross the same edge in
	// opposite directions; GenerateSuccessor checks this with a pairwise
	// scan after every agent has been placed.
	FailSwapConflict
)

// GenerateSuccessor implements the PIBT-style successor generator: given
// the current configuration q and a partial assignment of constrained
// agents, it greedily places the remaining agents and returns either a
// conflict-free successor configuration or a tagged failure.
func GenerateSuccessor(
	g *core.Graph,
	dist *core.DistanceOracle,
	agents []core.Agent,
	q core.Configuration,
	constraints map[core.AgentID]core.VertexID,
) (core.Configuration, Outcome) {
	n := len(agents)
	next := make(core.Configuration, n)
	placed := make([]bool, n)
	occupied := make(map[core.VertexID]bool, n)

	for agent, where := range constraints {
		if occupied[where] {
			return nil, FailVertexConflict
		}
		next[agent] = where
		placed[agent] = true
		occupied[where] = true
	}

	unconstrained := make([]core.Agent, 0, n)
	for _, a := range agents {
		if !placed[a.ID] {
			unconstrained = append(unconstrained, a)
		}
	}
	sort.SliceStable(unconstrained, func(i, j int) bool {
		di := dist.Distance(q[unconstrained[i].ID], unconstrained[i].Goal)
		dj := dist.Distance(q[unconstrained[j].ID], unconstrained[j].Goal)
		if di != dj {
			return di > dj
		}
		return unconstrained[i].ID < unconstrained[j].ID
	})

	for _, a := range unconstrained {
		u := q[a.ID]
		goal := a.Goal

		if u == goal && !occupied[u] {
			next[a.ID] = u
			occupied[u] = true
			continue
		}

		best := core.VertexID(-1)
		bestDist := core.Infinity
		haveBest := false
		candidates := append([]core.VertexID{u}, g.Neighbors(u)...)
		for _, cand := range candidates {
			if occupied[cand] {
				continue
			}
			d := dist.Distance(cand, goal)
			if d == core.Infinity {
				continue
			}
			if !haveBest || d < bestDist {
				bestDist = d
				best = cand
				haveBest = true
			}
		}
		if best == core.VertexID(-1) {
			return nil, FailNoMove
		}
		next[a.ID] = best
		occupied[best] = true
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if q[i] == next[j] && q[j] == next[i] {
				return nil, FailSwapConflict
			}
		}
	}

	return next, OK
}
