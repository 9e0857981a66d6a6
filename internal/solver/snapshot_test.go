package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
)

func buildPaperDriver(t *testing.T) *Driver {
	t.Helper()
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	dd := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, dd)
	agents := []core.Agent{
		{ID: 0, Start: a, Goal: dd},
		{ID: 1, Start: c, Goal: b},
	}
	d := NewDriver(g, agents, testLogger())
	if err := d.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return d
}

func observable(d *Driver) map[string]any {
	return map[string]any{
		"phase":    d.Phase(),
		"status":   d.Status(),
		"steps":    d.StepCount(),
		"counters": d.CounterSnapshot(),
		"open":     d.Open(),
		"explored": d.ExploredCount(),
	}
}

func TestSnapshotRestoreReproducesState(t *testing.T) {
	d := buildPaperDriver(t)
	for i := 0; i < 5 && d.Status() == StatusRunning; i++ {
		d.Step()
	}

	before := observable(d)
	snap := d.Snapshot()
	d.restore(snap)
	after := observable(d)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("state after restore differs from state before snapshot:\n%s", diff)
	}
}

func TestSnapshotRestorePreservesFutureSteps(t *testing.T) {
	live := buildPaperDriver(t)
	for i := 0; i < 5 && live.Status() == StatusRunning; i++ {
		live.Step()
	}
	snap := live.Snapshot()

	restored := buildPaperDriver(t)
	for i := 0; i < 5 && restored.Status() == StatusRunning; i++ {
		restored.Step()
	}
	restored.restore(snap)

	for i := 0; i < 20; i++ {
		liveRunning := live.Step()
		restoredRunning := restored.Step()
		if liveRunning != restoredRunning {
			t.Fatalf("step %d: Step() return diverged: live=%v restored=%v", i, liveRunning, restoredRunning)
		}
		if live.Phase() != restored.Phase() {
			t.Fatalf("step %d: phase diverged: live=%v restored=%v", i, live.Phase(), restored.Phase())
		}
		if live.Status() != restored.Status() {
			t.Fatalf("step %d: status diverged: live=%v restored=%v", i, live.Status(), restored.Status())
		}
		if !liveRunning {
			break
		}
	}

	liveSol, liveOK := live.Solution()
	restoredSol, restoredOK := restored.Solution()
	if liveOK != restoredOK {
		t.Fatalf("solution availability diverged: live=%v restored=%v", liveOK, restoredOK)
	}
	if liveOK {
		for i := range liveSol {
			if !liveSol[i].Equal(restoredSol[i]) {
				t.Fatalf("solution configuration %d diverged: live=%v restored=%v", i, liveSol[i], restoredSol[i])
			}
		}
	}
}

func TestSnapshotIsIndependentOfLiveMutation(t *testing.T) {
	d := buildPaperDriver(t)
	d.Step()
	d.Step()
	snap := d.Snapshot()

	for d.Status() == StatusRunning {
		if !d.Step() {
			break
		}
	}

	restored := buildPaperDriver(t)
	restored.restore(snap)
	if restored.Status() != StatusRunning {
		t.Fatalf("restored snapshot should still be mid-search, got status=%v", restored.Status())
	}
}
