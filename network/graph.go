// Package network builds directed weighted graphs from the catalogue's
// node/edge CSV exports and computes per-node structural metrics for the
// two analysis models: places + manuscripts (model 1) and places +
// libraries (model 2). Results are written back out as CSV tables.
package network

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Node is one row of a node table. Lat and Lng are NaN when the table
// does not carry coordinates.
type Node struct {
	ID    string
	Label string
	Type  string
	Lat   float64
	Lng   float64
}

// Edge is one row of an edge table, normalized to a common shape
// regardless of the source file's column convention.
type Edge struct {
	Source string
	Target string
	Weight float64
	Type   string
}

// Graph is a directed weighted graph over string-keyed nodes. Node
// identity is the catalogue id; insertion order is preserved so metric
// tables list nodes the way the input tables did.
type Graph struct {
	dg    *simple.WeightedDirectedGraph
	index map[string]int64
	order []string
	meta  map[string]Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		dg:    simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		index: make(map[string]int64),
		meta:  make(map[string]Node),
	}
}

// Build assembles a graph from node and edge rows. Edge endpoints that
// no node row described are added as untyped placeholders, and
// self-loops are dropped.
func Build(nodes []Node, edges []Edge) *Graph {
	g := NewGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

// ensure registers the key if it is new and returns its internal id.
// New keys start out as placeholder nodes labeled by their own id.
func (g *Graph) ensure(key string) int64 {
	if id, ok := g.index[key]; ok {
		return id
	}
	id := int64(len(g.order))
	g.index[key] = id
	g.order = append(g.order, key)
	g.dg.AddNode(simple.Node(id))
	g.meta[key] = Node{ID: key, Label: key, Type: "unknown", Lat: math.NaN(), Lng: math.NaN()}
	return id
}

// AddNode registers the node, replacing the metadata of an earlier row
// or placeholder with the same id.
func (g *Graph) AddNode(n Node) {
	g.ensure(n.ID)
	g.meta[n.ID] = n
}

// AddEdge adds a directed weighted edge, registering missing endpoints.
// Self-loops are skipped and a repeated source/target pair replaces the
// earlier edge.
func (g *Graph) AddEdge(e Edge) {
	u := g.ensure(e.Source)
	v := g.ensure(e.Target)
	if u == v {
		return
	}
	g.dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: e.Weight})
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	return len(g.order)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return g.dg.Edges().Len()
}

// Nodes returns the node metadata in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, key := range g.order {
		out[i] = g.meta[key]
	}
	return out
}
