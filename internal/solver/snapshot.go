package solver

import "github.com/elektrokombinacija/lacam-mapf/internal/core"

// Snapshot captures the full mutable search state so a caller can undo
// one Step via Driver.StepBack. It is a deep copy: every high-level node
// reachable from OPEN or EXPLORED is duplicated, including its own
// constraint tree.
type Snapshot struct {
	nodes map[int]*nodeSnapshot
	open  []int // high-level node ids, in stack order

	explored map[uint64]int // fingerprint -> high-level node id

	currentID  int // -1 if none
	treeNodeID int // -1 if none, scoped to currentID's tree

	generated core.Configuration
	solution  []core.Configuration

	phase    Phase
	status   Status
	steps    int
	counters Counters

	nextNodeID int
}

type nodeSnapshot struct {
	id        int
	config    core.Configuration
	priority  []core.AgentID
	parentID  int // -1 for the initial node
	treeNodes []treeNodeSnapshot
	queue     []int // constraint-tree node ids, in FIFO order
}

type treeNodeSnapshot struct {
	id       int
	parentID int // -1 for the tree root
	who      int // -1 for the root sentinel
	where    int
	depth    int
	children []int
	searched bool
	selected bool
}
