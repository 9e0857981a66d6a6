package core

import "testing"

func TestAddVertexLabelsFirst26(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 27; i++ {
		g.AddVertex()
	}
	if g.Label(0) != "a" {
		t.Errorf("Label(0) = %q, want %q", g.Label(0), "a")
	}
	if g.Label(25) != "z" {
		t.Errorf("Label(25) = %q, want %q", g.Label(25), "z")
	}
	if g.Label(26) != "" {
		t.Errorf("Label(26) = %q, want empty", g.Label(26))
	}
}

func TestAddEdgeNoSelfLoopNoDuplicate(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()

	g.AddEdge(a, a)
	if len(g.Neighbors(a)) != 0 {
		t.Fatalf("self-loop was added: %v", g.Neighbors(a))
	}

	g.AddEdge(a, b)
	g.AddEdge(a, b)
	if len(g.Neighbors(a)) != 1 || len(g.Neighbors(b)) != 1 {
		t.Fatalf("duplicate edge was added: a=%v b=%v", g.Neighbors(a), g.Neighbors(b))
	}
}

func TestRemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	g.RemoveVertex(b)

	if g.HasVertex(b) {
		t.Fatal("vertex b still present after removal")
	}
	if len(g.Neighbors(a)) != 0 {
		t.Errorf("a still has neighbors: %v", g.Neighbors(a))
	}
	if len(g.Neighbors(c)) != 0 {
		t.Errorf("c still has neighbors: %v", g.Neighbors(c))
	}
}

func TestNeighborsAdjacencyOrder(t *testing.T) {
	g := NewGraph()
	v := g.AddVertex()
	n1 := g.AddVertex()
	n2 := g.AddVertex()
	n3 := g.AddVertex()

	g.AddEdge(v, n2)
	g.AddEdge(v, n1)
	g.AddEdge(v, n3)

	got := g.Neighbors(v)
	want := []VertexID{n2, n1, n3}
	if len(got) != len(want) {
		t.Fatalf("Neighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors = %v, want %v", got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddEdge(a, b)

	clone := g.Clone()
	c := clone.AddVertex()
	clone.AddEdge(a, c)

	if g.HasVertex(c) {
		t.Fatal("mutating the clone mutated the original")
	}
	if len(g.Neighbors(a)) != 1 {
		t.Fatalf("original a neighbors changed: %v", g.Neighbors(a))
	}
}

func TestEdgesReturnedOnce(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddEdge(a, b)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("Edges() = %v, want exactly one edge", edges)
	}
	if edges[0].From != a || edges[0].To != b {
		t.Errorf("Edges()[0] = %+v, want {From: %v, To: %v}", edges[0], a, b)
	}
}
