package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph() *Graph {
	return Build(
		[]Node{
			{ID: "a", Label: "A", Type: "place"},
			{ID: "b", Label: "B", Type: "place"},
			{ID: "c", Label: "C", Type: "place"},
			{ID: "d", Label: "D", Type: "place"},
		},
		[]Edge{
			{Source: "a", Target: "b", Weight: 1},
			{Source: "b", Target: "c", Weight: 1},
			{Source: "c", Target: "d", Weight: 1},
		},
	)
}

func TestComputePathGraph(t *testing.T) {
	rows := Compute(pathGraph())
	require.Len(t, rows, 4)

	byID := make(map[string]Metrics, len(rows))
	for _, r := range rows {
		byID[r.Node] = r
	}

	assert.Equal(t, 0, byID["a"].InDegree)
	assert.Equal(t, 1, byID["a"].OutDegree)
	assert.Equal(t, 1, byID["b"].InDegree)
	assert.Equal(t, 1, byID["b"].OutDegree)
	assert.Equal(t, 1, byID["d"].InDegree)
	assert.Equal(t, 0, byID["d"].OutDegree)

	assert.Equal(t, 0.0, byID["a"].InStrength)
	assert.Equal(t, 1.0, byID["a"].OutStrength)
	assert.Equal(t, 1.0, byID["d"].InStrength)

	assert.InDelta(t, 1.0/3, byID["a"].DegreeCentrality, 1e-12)
	assert.InDelta(t, 2.0/3, byID["b"].DegreeCentrality, 1e-12)

	// Only b and c sit on shortest paths: a->c, a->d, and b->d.
	assert.InDelta(t, 0.0, byID["a"].Betweenness, 1e-12)
	assert.InDelta(t, 2.0/6, byID["b"].Betweenness, 1e-12)
	assert.InDelta(t, 2.0/6, byID["c"].Betweenness, 1e-12)
	assert.InDelta(t, 0.0, byID["d"].Betweenness, 1e-12)

	// Undirected hop-count closeness on the path a-b-c-d.
	assert.InDelta(t, 0.5, byID["a"].Closeness, 1e-12)
	assert.InDelta(t, 0.75, byID["b"].Closeness, 1e-12)
	assert.InDelta(t, 0.75, byID["c"].Closeness, 1e-12)
	assert.InDelta(t, 0.5, byID["d"].Closeness, 1e-12)

	var total float64
	for _, r := range rows {
		total += r.PageRank
	}
	assert.InDelta(t, 1.0, total, 1e-6)
	assert.Greater(t, byID["b"].PageRank, byID["a"].PageRank)
	assert.Greater(t, byID["c"].PageRank, byID["b"].PageRank)
	assert.Greater(t, byID["d"].PageRank, byID["c"].PageRank)

	// Prestige drains down the chain; the sink ends up with nearly all
	// of the eigenvector mass.
	assert.Greater(t, byID["b"].Eigenvector, byID["a"].Eigenvector)
	assert.Greater(t, byID["c"].Eigenvector, byID["b"].Eigenvector)
	assert.Greater(t, byID["d"].Eigenvector, byID["c"].Eigenvector)
	assert.InDelta(t, 1.0, byID["d"].Eigenvector, 0.01)
}

func TestComputeTriangle(t *testing.T) {
	g := Build(
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]Edge{
			{Source: "a", Target: "b", Weight: 1},
			{Source: "b", Target: "c", Weight: 1},
			{Source: "c", Target: "a", Weight: 1},
		},
	)
	rows := Compute(g)
	require.Len(t, rows, 3)

	for _, r := range rows {
		assert.Equal(t, 1, r.InDegree)
		assert.Equal(t, 1, r.OutDegree)
		assert.InDelta(t, 1.0, r.DegreeCentrality, 1e-12)
		assert.InDelta(t, 0.5, r.Betweenness, 1e-12)
		assert.InDelta(t, 1.0, r.Closeness, 1e-12)
		assert.InDelta(t, 1.0/3, r.PageRank, 1e-6)
		assert.InDelta(t, 1/math.Sqrt(3), r.Eigenvector, 1e-9)
	}
}

func TestComputeWeightedShortcut(t *testing.T) {
	// The direct a->b edge costs 10 while the detour through c costs 2,
	// so c carries all the a->b traffic.
	g := Build(
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]Edge{
			{Source: "a", Target: "b", Weight: 10},
			{Source: "a", Target: "c", Weight: 1},
			{Source: "c", Target: "b", Weight: 1},
		},
	)
	rows := Compute(g)
	byID := make(map[string]Metrics, len(rows))
	for _, r := range rows {
		byID[r.Node] = r
	}

	assert.InDelta(t, 0.5, byID["c"].Betweenness, 1e-12)
	assert.InDelta(t, 0.0, byID["a"].Betweenness, 1e-12)
	assert.InDelta(t, 0.0, byID["b"].Betweenness, 1e-12)

	// Closeness counts hops, not weights: undirected this is a triangle.
	assert.InDelta(t, 1.0, byID["a"].Closeness, 1e-12)
	assert.InDelta(t, 1.0, byID["b"].Closeness, 1e-12)
	assert.InDelta(t, 1.0, byID["c"].Closeness, 1e-12)

	assert.InDelta(t, 11.0, byID["a"].OutStrength, 1e-12)
	assert.InDelta(t, 11.0, byID["b"].InStrength, 1e-12)
}

func TestComputeSingleNode(t *testing.T) {
	g := Build([]Node{{ID: "only", Label: "Only", Type: "place"}}, nil)
	rows := Compute(g)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 0, r.InDegree)
	assert.InDelta(t, 1.0, r.DegreeCentrality, 1e-12)
	assert.InDelta(t, 0.0, r.Betweenness, 1e-12)
	assert.InDelta(t, 0.0, r.Closeness, 1e-12)
	assert.InDelta(t, 1.0, r.PageRank, 1e-6)
}

func TestComputeEmptyGraph(t *testing.T) {
	assert.Nil(t, Compute(NewGraph()))
}

func TestEigenvectorGivesUpAfterMaxIter(t *testing.T) {
	// The chain converges only after hundreds of iterations, so a tight
	// budget must report failure instead of a half-settled vector.
	_, ok := eigenvectorScores(pathGraph(), 5, 1e-6)
	assert.False(t, ok)
}

func TestGraphBuildSemantics(t *testing.T) {
	g := NewGraph()
	g.AddNode(Node{ID: "a", Label: "first", Type: "place"})
	g.AddNode(Node{ID: "a", Label: "second", Type: "library"})
	require.Equal(t, 1, g.Order())
	assert.Equal(t, "second", g.Nodes()[0].Label, "a later row replaces the node metadata")
	assert.Equal(t, "library", g.Nodes()[0].Type)

	g.AddEdge(Edge{Source: "a", Target: "a", Weight: 1})
	assert.Equal(t, 0, g.Size(), "self-loops are dropped")

	g.AddEdge(Edge{Source: "a", Target: "x", Weight: 1})
	require.Equal(t, 2, g.Order(), "missing endpoints become placeholder nodes")
	placeholder := g.Nodes()[1]
	assert.Equal(t, "x", placeholder.ID)
	assert.Equal(t, "x", placeholder.Label)
	assert.Equal(t, "unknown", placeholder.Type)
	assert.True(t, math.IsNaN(placeholder.Lat))

	g.AddEdge(Edge{Source: "a", Target: "x", Weight: 5})
	assert.Equal(t, 1, g.Size(), "a repeated pair replaces the edge")
	rows := Compute(g)
	byID := map[string]Metrics{rows[0].Node: rows[0], rows[1].Node: rows[1]}
	assert.InDelta(t, 5.0, byID["x"].InStrength, 1e-12)
}
