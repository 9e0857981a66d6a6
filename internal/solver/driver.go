package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/search"
)

// Driver runs the LaCAM two-level search as a phase state machine. It is
// single-threaded and synchronous: Step is the sole progress primitive,
// and it never blocks. Driver is not safe for concurrent use.
type Driver struct {
	graph  *core.Graph
	agents []core.Agent
	dist   *core.DistanceOracle

	open     []*search.HighLevelNode
	explored map[uint64]*search.HighLevelNode

	goal core.Configuration

	current   *search.HighLevelNode
	treeNode  *search.ConstraintNode
	generated core.Configuration

	phase  Phase
	status Status

	steps    int
	counters Counters
	solution []core.Configuration

	nextNodeID int
	history    []*Snapshot

	log zerolog.Logger
}

// NewDriver creates a driver over g and agents. The graph and agent set
// are fixed for the driver's lifetime; call Initialize before Step.
func NewDriver(g *core.Graph, agents []core.Agent, log zerolog.Logger) *Driver {
	return &Driver{
		graph:  g,
		agents: agents,
		log:    log,
	}
}

// Initialize validates the instance and builds the initial high-level
// node from the start configuration. It resets all internal id counters
// and any prior search state.
func (d *Driver) Initialize() error {
	if len(d.graph.Vertices()) < 2 {
		return fmt.Errorf("lacam: graph must have at least two vertices")
	}
	if len(d.agents) == 0 {
		return fmt.Errorf("lacam: agent set must not be empty")
	}
	for _, a := range d.agents {
		if !d.graph.HasVertex(a.Start) {
			return fmt.Errorf("lacam: agent %d has missing start vertex %v", a.ID, a.Start)
		}
		if !d.graph.HasVertex(a.Goal) {
			return fmt.Errorf("lacam: agent %d has missing goal vertex %v", a.ID, a.Goal)
		}
	}

	d.dist = core.NewDistanceOracle(d.graph)
	for _, a := range d.agents {
		d.dist.PrecomputeGoalDistances(a.Goal)
	}

	starts := make([]core.VertexID, len(d.agents))
	for _, a := range d.agents {
		starts[a.ID] = a.Start
	}
	initConfig := core.NewConfiguration(starts)
	priority := search.InitialPriority(d.agents, d.dist)

	goals := make([]core.VertexID, len(d.agents))
	for _, a := range d.agents {
		goals[a.ID] = a.Goal
	}
	d.goal = core.NewConfiguration(goals)

	d.open = nil
	d.explored = make(map[uint64]*search.HighLevelNode)
	d.nextNodeID = 0
	d.history = nil
	d.current = nil
	d.treeNode = nil
	d.generated = nil
	d.solution = nil
	d.steps = 0
	d.counters = Counters{}
	d.phase = PhaseSelect
	d.status = StatusRunning

	root := d.newHighLevelNode(initConfig, priority, nil)
	d.open = append(d.open, root)
	d.explored[initConfig.Fingerprint()] = root
	d.counters.ConfigurationsExplored = 1
	d.counters.NodesGenerated = 1

	d.log.Debug().Int("agents", len(d.agents)).Msg("initialized")
	return nil
}

// Reset is equivalent to Initialize.
func (d *Driver) Reset() error {
	return d.Initialize()
}

func (d *Driver) newHighLevelNode(config core.Configuration, priority []core.AgentID, parent *search.HighLevelNode) *search.HighLevelNode {
	n := search.NewHighLevelNode(d.nextNodeID, config, priority, parent)
	d.nextNodeID++
	return n
}

// Step advances the driver by exactly one phase and returns whether the
// search is still running (false once Status is Solved or NoSolution).
func (d *Driver) Step() bool {
	if d.status != StatusRunning {
		return false
	}
	d.pushHistory()
	d.steps++

	switch d.phase {
	case PhaseSelect:
		d.stepSelect()
	case PhasePopConstraint:
		d.stepPopConstraint()
	case PhaseExpandTree:
		d.stepExpandTree()
	case PhaseGenerate:
		d.stepGenerate()
	case PhaseCheck:
		d.stepCheck()
	}

	return d.status == StatusRunning
}

func (d *Driver) stepSelect() {
	for {
		if len(d.open) == 0 {
			d.status = StatusNoSolution
			d.log.Info().Int("steps", d.steps).Msg("no_solution")
			return
		}
		top := d.open[len(d.open)-1]
		if top.Config.Equal(d.goal) {
			d.status = StatusSolved
			d.solution = d.reconstructSolution(top)
			d.log.Info().Int("steps", d.steps).Int("solution_len", len(d.solution)).Msg("solved")
			return
		}
		if top.Queue.Empty() {
			d.open = d.open[:len(d.open)-1]
			continue
		}
		d.current = top
		d.phase = PhasePopConstraint
		return
	}
}

func (d *Driver) stepPopConstraint() {
	node := d.current.Queue.Dequeue()
	node.Selected = true
	node.Searched = true
	d.treeNode = node
	d.phase = PhaseExpandTree
}

func (d *Driver) stepExpandTree() {
	children := d.current.Tree.Expand(d.treeNode, d.graph, d.current.Config)
	if len(children) > 0 {
		d.current.Queue.Enqueue(children...)
	}
	d.phase = PhaseGenerate
}

func (d *Driver) stepGenerate() {
	constraints := search.Constraints(d.treeNode)
	next, outcome := search.GenerateSuccessor(d.graph, d.dist, d.agents, d.current.Config, constraints)
	if outcome != search.OK {
		d.generated = nil
		d.phase = PhaseSelect
		return
	}
	d.generated = next
	d.phase = PhaseCheck
}

func (d *Driver) stepCheck() {
	fp := d.generated.Fingerprint()
	if _, ok := d.explored[fp]; ok {
		d.generated = nil
		d.phase = PhaseSelect
		return
	}

	priority := search.SuccessorPriority(d.agents, d.generated, d.dist)
	next := d.newHighLevelNode(d.generated, priority, d.current)
	d.open = append(d.open, next)
	d.explored[fp] = next
	d.counters.NodesGenerated++
	d.counters.ConfigurationsExplored++
	d.generated = nil
	d.phase = PhaseSelect
}

func (d *Driver) reconstructSolution(solved *search.HighLevelNode) []core.Configuration {
	var chain []core.Configuration
	for n := solved; n != nil; n = n.Parent {
		chain = append(chain, n.Config)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// StepBack restores the previous snapshot, undoing the last Step. It
// returns false if no history remains.
func (d *Driver) StepBack() bool {
	if len(d.history) == 0 {
		return false
	}
	snap := d.history[len(d.history)-1]
	d.history = d.history[:len(d.history)-1]
	d.restore(snap)
	return true
}

func (d *Driver) pushHistory() {
	d.history = append(d.history, d.Snapshot())
	if len(d.history) > maxHistory {
		d.history = d.history[1:]
	}
}

// Phase returns the current phase.
func (d *Driver) Phase() Phase { return d.phase }

// Status returns the current terminal/non-terminal status.
func (d *Driver) Status() Status { return d.status }

// StepCount returns the number of Step calls applied since Initialize.
func (d *Driver) StepCount() int { return d.steps }

// CounterSnapshot returns a copy of the current diagnostic counters.
func (d *Driver) CounterSnapshot() Counters { return d.counters }

// CurrentConfiguration returns the configuration of the node the driver
// is currently expanding (the top of OPEN before it is popped), or nil
// if there is none.
func (d *Driver) CurrentConfiguration() core.Configuration {
	if d.current != nil {
		return d.current.Config
	}
	if len(d.open) > 0 {
		return d.open[len(d.open)-1].Config
	}
	return nil
}

// Open returns OPEN's configurations in stack order (bottom to top).
func (d *Driver) Open() []core.Configuration {
	out := make([]core.Configuration, len(d.open))
	for i, n := range d.open {
		out[i] = n.Config
	}
	return out
}

// ExploredCount returns the number of distinct configurations discovered
// so far.
func (d *Driver) ExploredCount() int {
	return len(d.explored)
}

// CurrentTree returns the constraint tree of the high-level node
// currently being expanded, or nil if none is active.
func (d *Driver) CurrentTree() *search.ConstraintTree {
	if d.current == nil {
		return nil
	}
	return d.current.Tree
}

// Solution returns the solved path and true once Status is Solved;
// otherwise returns nil, false.
func (d *Driver) Solution() ([]core.Configuration, bool) {
	if d.status != StatusSolved {
		return nil, false
	}
	return d.solution, true
}
