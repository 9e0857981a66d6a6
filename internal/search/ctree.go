// Package search implements LaCAM's low-level constraint tree and the
// PIBT-style successor generator that drives it.
package search

import "github.com/elektrokombinacija/lacam-mapf/internal/core"

// noAgent is the sentinel Who value for the (unset) root node.
const noAgent = core.AgentID(-1)

// noVertex is the sentinel Where value for the (unset) root node.
const noVertex = core.VertexID(-1)

// ConstraintNode is a node of a high-level node's constraint tree. The
// path from the tree's root to a node at depth d pins the next-step
// position of the first d agents in the owning node's priority order.
type ConstraintNode struct {
	ID       int
	Parent   *ConstraintNode
	Who      core.AgentID // noAgent at the root
	Where    core.VertexID
	Depth    int
	Children []*ConstraintNode
	Searched bool
	Selected bool
}

// ConstraintTree is the per-high-level-node low-level search tree. It is
// grown lazily: the root exists from construction, every other node is
// created by Expand.
type ConstraintTree struct {
	Root     *ConstraintNode
	nextID   int
	agentN   int
	priority []core.AgentID
}

// NewConstraintTree creates a tree with only a root, for a high-level
// node whose configuration has agentN agents ordered by priority.
func NewConstraintTree(priority []core.AgentID) *ConstraintTree {
	t := &ConstraintTree{
		agentN:   len(priority),
		priority: priority,
	}
	t.Root = t.newNode(nil, noAgent, noVertex, 0)
	return t
}

func (t *ConstraintTree) newNode(parent *ConstraintNode, who core.AgentID, where core.VertexID, depth int) *ConstraintNode {
	n := &ConstraintNode{
		ID:     t.nextID,
		Parent: parent,
		Who:    who,
		Where:  where,
		Depth:  depth,
	}
	t.nextID++
	return n
}

// Expand creates c's children, one per candidate move of the next agent
// in priority order, and returns them. It is a no-op that returns nil if
// c is already at depth equal to the agent count; if c already has
// children, it returns them without creating new ones.
func (t *ConstraintTree) Expand(c *ConstraintNode, g *core.Graph, q core.Configuration) []*ConstraintNode {
	if c.Depth >= t.agentN {
		return nil
	}
	if len(c.Children) > 0 {
		return c.Children
	}

	agent := t.priority[c.Depth]
	v := q[agent]

	candidates := make([]core.VertexID, 0, 1+len(g.Neighbors(v)))
	candidates = append(candidates, v)
	candidates = append(candidates, g.Neighbors(v)...)

	for _, where := range candidates {
		child := t.newNode(c, agent, where, c.Depth+1)
		c.Children = append(c.Children, child)
	}
	return c.Children
}

// Constraints walks c up to the tree root and returns the (who -> where)
// pairs it pins, as a map keyed by agent id.
func Constraints(c *ConstraintNode) map[core.AgentID]core.VertexID {
	out := make(map[core.AgentID]core.VertexID, c.Depth)
	for n := c; n != nil && n.Who != noAgent; n = n.Parent {
		out[n.Who] = n.Where
	}
	return out
}

// NodeSnapshot is a flat, id-linked description of one ConstraintNode,
// used to deep-copy and later rebuild a whole ConstraintTree.
type NodeSnapshot struct {
	ID       int
	ParentID int // -1 for the root
	Who      int // -1 for the root sentinel
	Where    int
	Depth    int
	Children []int
	Searched bool
	Selected bool
}

// Export walks the whole tree (every node ever created, not just the
// pending queue) and returns it as a flat, id-linked snapshot.
func (t *ConstraintTree) Export() []NodeSnapshot {
	var out []NodeSnapshot
	var walk func(n *ConstraintNode)
	walk = func(n *ConstraintNode) {
		parentID := -1
		if n.Parent != nil {
			parentID = n.Parent.ID
		}
		childIDs := make([]int, len(n.Children))
		for i, c := range n.Children {
			childIDs[i] = c.ID
		}
		out = append(out, NodeSnapshot{
			ID:       n.ID,
			ParentID: parentID,
			Who:      int(n.Who),
			Where:    int(n.Where),
			Depth:    n.Depth,
			Children: childIDs,
			Searched: n.Searched,
			Selected: n.Selected,
		})
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}

// RebuildConstraintTree reconstructs a ConstraintTree from a flat
// snapshot produced by Export, restoring node ids, depths, status flags,
// and child order exactly.
func RebuildConstraintTree(priority []core.AgentID, nextID int, snaps []NodeSnapshot) *ConstraintTree {
	byID := make(map[int]*ConstraintNode, len(snaps))
	for _, s := range snaps {
		who := noAgent
		if s.Who != -1 {
			who = core.AgentID(s.Who)
		}
		byID[s.ID] = &ConstraintNode{
			ID:       s.ID,
			Who:      who,
			Where:    core.VertexID(s.Where),
			Depth:    s.Depth,
			Searched: s.Searched,
			Selected: s.Selected,
		}
	}

	t := &ConstraintTree{agentN: len(priority), priority: priority, nextID: nextID}
	for _, s := range snaps {
		n := byID[s.ID]
		if s.ParentID == -1 {
			t.Root = n
		} else {
			n.Parent = byID[s.ParentID]
		}
		for _, cid := range s.Children {
			n.Children = append(n.Children, byID[cid])
		}
	}
	return t
}

// NodeByID looks up a tree node by id after a rebuild, for relocating a
// driver's current-node reference.
func NodeByID(tree *ConstraintTree, id int) *ConstraintNode {
	if tree.Root.ID == id {
		return tree.Root
	}
	var found *ConstraintNode
	var walk func(n *ConstraintNode)
	walk = func(n *ConstraintNode) {
		if found != nil {
			return
		}
		if n.ID == id {
			found = n
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Root)
	return found
}
