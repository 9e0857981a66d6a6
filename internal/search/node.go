package search

import "github.com/elektrokombinacija/lacam-mapf/internal/core"

// HighLevelNode is a node of the high-level search: a discovered
// configuration, the priority order assigned to it, its own constraint
// tree, and a FIFO of tree nodes not yet selected.
type HighLevelNode struct {
	ID       int
	Config   core.Configuration
	Priority []core.AgentID
	Tree     *ConstraintTree
	Queue    *NodeQueue
	Parent   *HighLevelNode
}

// NewHighLevelNode creates a node for config, owning a fresh constraint
// tree whose queue starts with just the root.
func NewHighLevelNode(id int, config core.Configuration, priority []core.AgentID, parent *HighLevelNode) *HighLevelNode {
	tree := NewConstraintTree(priority)
	return &HighLevelNode{
		ID:       id,
		Config:   config,
		Priority: priority,
		Tree:     tree,
		Queue:    NewNodeQueue(tree.Root),
		Parent:   parent,
	}
}
