package search

// NodeQueue is a FIFO of constraint-tree nodes awaiting low-level
// expansion, seeded with the tree root at construction.
type NodeQueue struct {
	items []*ConstraintNode
}

// NewNodeQueue seeds a queue with root.
func NewNodeQueue(root *ConstraintNode) *NodeQueue {
	return &NodeQueue{items: []*ConstraintNode{root}}
}

// Empty reports whether the queue has no pending nodes.
func (q *NodeQueue) Empty() bool {
	return len(q.items) == 0
}

// Len returns the number of pending nodes.
func (q *NodeQueue) Len() int {
	return len(q.items)
}

// Dequeue removes and returns the front node. Panics if the queue is
// empty; callers must check Empty first.
func (q *NodeQueue) Dequeue() *ConstraintNode {
	n := q.items[0]
	q.items = q.items[1:]
	return n
}

// Enqueue appends nodes to the back of the queue, in order.
func (q *NodeQueue) Enqueue(nodes ...*ConstraintNode) {
	q.items = append(q.items, nodes...)
}

// Snapshot returns a copy of the pending node slice, for inspection.
func (q *NodeQueue) Snapshot() []*ConstraintNode {
	out := make([]*ConstraintNode, len(q.items))
	copy(out, q.items)
	return out
}

// ExportIDs returns the pending nodes' ids, in FIFO order.
func (q *NodeQueue) ExportIDs() []int {
	ids := make([]int, len(q.items))
	for i, n := range q.items {
		ids[i] = n.ID
	}
	return ids
}

// RebuildNodeQueue reconstructs a queue from a list of node ids in FIFO
// order, resolving each id against tree via NodeByID.
func RebuildNodeQueue(tree *ConstraintTree, ids []int) *NodeQueue {
	q := &NodeQueue{}
	for _, id := range ids {
		q.items = append(q.items, NodeByID(tree, id))
	}
	return q
}
