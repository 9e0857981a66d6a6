package core

// AgentID is a dense identifier in [0, N). Agent order is fixed for a
// run: it indexes directly into a Configuration.
type AgentID int

// Agent pairs a start and goal vertex.
type Agent struct {
	ID    AgentID
	Start VertexID
	Goal  VertexID
}
