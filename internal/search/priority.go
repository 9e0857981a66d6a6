package search

import (
	"sort"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
)

// InitialPriority orders agents by descending BFS distance from their
// start to their goal, tie-broken by ascending agent id.
func InitialPriority(agents []core.Agent, dist *core.DistanceOracle) []core.AgentID {
	order := make([]core.AgentID, len(agents))
	d := make(map[core.AgentID]int, len(agents))
	for i, a := range agents {
		order[i] = a.ID
		d[a.ID] = dist.Distance(a.Start, a.Goal)
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai, aj := order[i], order[j]
		if d[ai] != d[aj] {
			return d[ai] > d[aj]
		}
		return ai < aj
	})
	return order
}

// SuccessorPriority orders agents not yet at their goal before those that
// are, and within each partition by descending distance to goal,
// tie-broken by ascending agent id.
func SuccessorPriority(agents []core.Agent, q core.Configuration, dist *core.DistanceOracle) []core.AgentID {
	order := make([]core.AgentID, len(agents))
	atGoal := make(map[core.AgentID]bool, len(agents))
	d := make(map[core.AgentID]int, len(agents))
	for i, a := range agents {
		order[i] = a.ID
		atGoal[a.ID] = q[a.ID] == a.Goal
		d[a.ID] = dist.Distance(q[a.ID], a.Goal)
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai, aj := order[i], order[j]
		if atGoal[ai] != atGoal[aj] {
			return !atGoal[ai]
		}
		if d[ai] != d[aj] {
			return d[ai] > d[aj]
		}
		return ai < aj
	})
	return order
}
