package network

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/graph"
	gonet "gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Iteration parameters for the random-walk style centralities.
const (
	pageRankDamping    = 0.85
	pageRankTolerance  = 1e-6
	eigenMaxIterations = 2000
	eigenTolerance     = 1e-6
)

// Metrics holds the structural measures computed for one node.
type Metrics struct {
	Node        string
	Label       string
	Type        string
	InDegree    int
	OutDegree   int
	InStrength  float64
	OutStrength float64

	DegreeCentrality float64
	Betweenness      float64
	Closeness        float64
	Eigenvector      float64
	PageRank         float64
}

// Compute calculates the metric set for every node, in node insertion
// order. A failed eigenvector iteration reports zeros for that column
// rather than aborting the run.
func Compute(g *Graph) []Metrics {
	n := g.Order()
	if n == 0 {
		return nil
	}

	betweenness := betweennessScores(g)
	closeness := closenessScores(g)
	ranks := gonet.PageRank(g.dg, pageRankDamping, pageRankTolerance)
	eigen, ok := eigenvectorScores(g, eigenMaxIterations, eigenTolerance)
	if !ok {
		slog.Warn("eigenvector centrality did not converge, reporting zeros")
		eigen = make([]float64, n)
	}

	rows := make([]Metrics, 0, n)
	for i, key := range g.order {
		meta := g.meta[key]
		uid := int64(i)
		inDeg, outDeg, inStr, outStr := strengths(g, uid)

		degree := 1.0
		if n > 1 {
			degree = float64(inDeg+outDeg) / float64(n-1)
		}

		rows = append(rows, Metrics{
			Node:             meta.ID,
			Label:            meta.Label,
			Type:             meta.Type,
			InDegree:         inDeg,
			OutDegree:        outDeg,
			InStrength:       inStr,
			OutStrength:      outStr,
			DegreeCentrality: degree,
			Betweenness:      betweenness[i],
			Closeness:        closeness[i],
			Eigenvector:      eigen[i],
			PageRank:         ranks[uid],
		})
	}
	return rows
}

// strengths counts a node's incident edges and sums their weights.
func strengths(g *Graph, uid int64) (inDeg, outDeg int, inStr, outStr float64) {
	to := g.dg.To(uid)
	for to.Next() {
		inDeg++
		if w, ok := g.dg.Weight(to.Node().ID(), uid); ok {
			inStr += w
		}
	}
	from := g.dg.From(uid)
	for from.Next() {
		outDeg++
		if w, ok := g.dg.Weight(uid, from.Node().ID()); ok {
			outStr += w
		}
	}
	return inDeg, outDeg, inStr, outStr
}

// betweennessScores returns betweenness over weighted shortest paths,
// normalized by (n-1)(n-2). Graphs with fewer than three nodes have no
// intermediate positions and score zero.
func betweennessScores(g *Graph) []float64 {
	n := g.Order()
	scores := make([]float64, n)
	if n <= 2 {
		return scores
	}

	paths := path.DijkstraAllPaths(g.dg)
	raw := gonet.BetweennessWeighted(g.dg, paths)
	scale := 1 / (float64(n-1) * float64(n-2))
	for id, v := range raw {
		scores[id] = v * scale
	}
	return scores
}

// closenessScores returns closeness centrality computed by hop count on
// the undirected view, scaled by reachable-set size so values stay
// comparable across disconnected components. Isolated nodes score zero.
func closenessScores(g *Graph) []float64 {
	n := g.Order()
	scores := make([]float64, n)
	if n <= 1 {
		return scores
	}

	und := simple.NewUndirectedGraph()
	for i := range g.order {
		und.AddNode(simple.Node(int64(i)))
	}
	edges := g.dg.Edges()
	for edges.Next() {
		e := edges.Edge()
		und.SetEdge(simple.Edge{F: e.From(), T: e.To()})
	}

	var bfs traverse.BreadthFirst
	for i := range scores {
		var reach, total int
		bfs.Walk(und, und.Node(int64(i)), func(_ graph.Node, depth int) bool {
			reach++
			total += depth
			return false
		})
		bfs.Reset()
		if total > 0 {
			frac := float64(reach-1) / float64(total)
			scores[i] = frac * float64(reach-1) / float64(n-1)
		}
	}
	return scores
}

// eigenvectorScores runs power iteration for weighted eigenvector
// centrality. Each step every node passes its mass along its out-edges
// on top of the identity, then the vector is L2-normalized; the
// iteration converges when the summed per-node change drops below
// n*tol. ok is false when maxIter steps pass without convergence.
func eigenvectorScores(g *Graph, maxIter int, tol float64) ([]float64, bool) {
	n := g.Order()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		copy(next, x)
		for u := range x {
			uid := int64(u)
			out := g.dg.From(uid)
			for out.Next() {
				vid := out.Node().ID()
				if w, ok := g.dg.Weight(uid, vid); ok {
					next[vid] += x[u] * w
				}
			}
		}

		norm := 0.0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}

		var diff float64
		for i := range next {
			next[i] /= norm
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if diff < float64(n)*tol {
			return x, true
		}
	}
	return nil, false
}
