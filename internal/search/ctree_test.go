package search

import (
	"testing"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
)

func TestExpandDepthBound(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddEdge(a, b)

	priority := []core.AgentID{0}
	tree := NewConstraintTree(priority)
	q := core.NewConfiguration([]core.VertexID{a})

	children := tree.Expand(tree.Root, g, q)
	if len(children) != 2 {
		t.Fatalf("root expansion produced %d children, want 2 ({v} ∪ neighbors(v))", len(children))
	}
	if children[0].Where != a {
		t.Errorf("first child should pin the stay-put vertex %v, got %v", a, children[0].Where)
	}

	leaf := children[0]
	if leaf.Depth != 1 {
		t.Fatalf("child depth = %d, want 1", leaf.Depth)
	}
	grandchildren := tree.Expand(leaf, g, q)
	if grandchildren != nil {
		t.Fatalf("expanding a depth==N node should be a no-op, got %v", grandchildren)
	}
}

func TestConstraintsWalkToRoot(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	priority := []core.AgentID{0, 1}
	tree := NewConstraintTree(priority)
	q := core.NewConfiguration([]core.VertexID{a, b})

	level1 := tree.Expand(tree.Root, g, q)
	node0 := level1[0]
	level2 := tree.Expand(node0, g, q)
	node1 := level2[0]

	got := Constraints(node1)
	if len(got) != 2 {
		t.Fatalf("Constraints() = %v, want 2 entries", got)
	}
	if got[0] != node0.Where || got[1] != node1.Where {
		t.Errorf("Constraints() = %v, want {0: %v, 1: %v}", got, node0.Where, node1.Where)
	}
}
