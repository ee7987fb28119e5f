package model

// Node types in a connections graph.
const (
	NodeMain         = "main"
	NodeRelated      = "related"
	NodeSameDirector = "sameDirector"
)

type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// ConnectionsGraph is the node/edge list rendered as a force-directed graph.
type ConnectionsGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// NamedEntity is an Actor, Director or Genre row with its movie count.
type NamedEntity struct {
	Name       string `json:"name"`
	MovieCount int64  `json:"movieCount"`
}
