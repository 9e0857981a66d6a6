package solver

import (
	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/search"
)

// Snapshot captures the driver's full mutable state, deep enough that
// Restore followed by Step reproduces the same phase transitions as if
// the Step that produced this snapshot had never been undone.
func (d *Driver) Snapshot() *Snapshot {
	snap := &Snapshot{
		nodes:      make(map[int]*nodeSnapshot, len(d.explored)),
		explored:   make(map[uint64]int, len(d.explored)),
		currentID:  -1,
		treeNodeID: -1,
		generated:  d.generated.Clone(),
		phase:      d.phase,
		status:     d.status,
		steps:      d.steps,
		counters:   d.counters,
		nextNodeID: d.nextNodeID,
	}

	seen := make(map[int]bool)
	for _, n := range d.explored {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		snap.nodes[n.ID] = exportNode(n)
	}

	snap.open = make([]int, len(d.open))
	for i, n := range d.open {
		snap.open[i] = n.ID
	}
	for fp, n := range d.explored {
		snap.explored[fp] = n.ID
	}

	if d.current != nil {
		snap.currentID = d.current.ID
	}
	if d.treeNode != nil {
		snap.treeNodeID = d.treeNode.ID
	}
	if d.solution != nil {
		snap.solution = make([]core.Configuration, len(d.solution))
		for i, c := range d.solution {
			snap.solution[i] = c.Clone()
		}
	}

	return snap
}

func exportNode(n *search.HighLevelNode) *nodeSnapshot {
	parentID := -1
	if n.Parent != nil {
		parentID = n.Parent.ID
	}
	treeNodes := n.Tree.Export()
	flat := make([]treeNodeSnapshot, len(treeNodes))
	for i, s := range treeNodes {
		flat[i] = treeNodeSnapshot{
			id:       s.ID,
			parentID: s.ParentID,
			who:      s.Who,
			where:    s.Where,
			depth:    s.Depth,
			children: s.Children,
			searched: s.Searched,
			selected: s.Selected,
		}
	}
	return &nodeSnapshot{
		id:        n.ID,
		config:    n.Config.Clone(),
		priority:  append([]core.AgentID(nil), n.Priority...),
		parentID:  parentID,
		treeNodes: flat,
		queue:     n.Queue.ExportIDs(),
	}
}

// restore rebuilds the driver's object graph from snap in two passes:
// nodes (with their constraint trees) first, then parent links.
func (d *Driver) restore(snap *Snapshot) {
	built := make(map[int]*search.HighLevelNode, len(snap.nodes))
	for id, ns := range snap.nodes {
		treeSnaps := make([]search.NodeSnapshot, len(ns.treeNodes))
		maxTreeID := -1
		for i, tns := range ns.treeNodes {
			treeSnaps[i] = search.NodeSnapshot{
				ID:       tns.id,
				ParentID: tns.parentID,
				Who:      tns.who,
				Where:    tns.where,
				Depth:    tns.depth,
				Children: tns.children,
				Searched: tns.searched,
				Selected: tns.selected,
			}
			if tns.id > maxTreeID {
				maxTreeID = tns.id
			}
		}
		tree := search.RebuildConstraintTree(ns.priority, maxTreeID+1, treeSnaps)
		queue := search.RebuildNodeQueue(tree, ns.queue)

		built[id] = &search.HighLevelNode{
			ID:       ns.id,
			Config:   ns.config.Clone(),
			Priority: append([]core.AgentID(nil), ns.priority...),
			Tree:     tree,
			Queue:    queue,
		}
	}

	for id, ns := range snap.nodes {
		if ns.parentID != -1 {
			built[id].Parent = built[ns.parentID]
		}
	}

	d.open = make([]*search.HighLevelNode, len(snap.open))
	for i, id := range snap.open {
		d.open[i] = built[id]
	}
	d.explored = make(map[uint64]*search.HighLevelNode, len(snap.explored))
	for fp, id := range snap.explored {
		d.explored[fp] = built[id]
	}

	d.current = nil
	if snap.currentID != -1 {
		d.current = built[snap.currentID]
	}
	d.treeNode = nil
	if d.current != nil && snap.treeNodeID != -1 {
		d.treeNode = search.NodeByID(d.current.Tree, snap.treeNodeID)
	}

	d.generated = snap.generated.Clone()
	if snap.solution != nil {
		d.solution = make([]core.Configuration, len(snap.solution))
		for i, c := range snap.solution {
			d.solution[i] = c.Clone()
		}
	} else {
		d.solution = nil
	}

	d.phase = snap.phase
	d.status = snap.status
	d.steps = snap.steps
	d.counters = snap.counters
	d.nextNodeID = snap.nextNodeID
}
