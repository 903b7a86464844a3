package network

import "sort"

// PercentileRow is one node's percentile-ranked metrics plus the
// aggregate prominence score.
type PercentileRow struct {
	Label string

	InDegree    float64
	OutDegree   float64
	InStrength  float64
	OutStrength float64

	DegreeCentrality float64
	Betweenness      float64
	Closeness        float64
	Eigenvector      float64
	PageRank         float64

	MeanResearchScore float64
}

// PlacePercentiles converts metric rows to per-column percentile ranks
// in [0,1] and derives MeanResearchScore, the mean of the in-degree,
// betweenness, closeness, eigenvector, and PageRank percentiles. Rows
// come back sorted by the score, highest first.
func PlacePercentiles(rows []Metrics) []PercentileRow {
	n := len(rows)

	rank := func(get func(Metrics) float64) []float64 {
		col := make([]float64, n)
		for i, r := range rows {
			col[i] = get(r)
		}
		return percentileRanks(col)
	}

	inDeg := rank(func(m Metrics) float64 { return float64(m.InDegree) })
	outDeg := rank(func(m Metrics) float64 { return float64(m.OutDegree) })
	inStr := rank(func(m Metrics) float64 { return m.InStrength })
	outStr := rank(func(m Metrics) float64 { return m.OutStrength })
	degree := rank(func(m Metrics) float64 { return m.DegreeCentrality })
	between := rank(func(m Metrics) float64 { return m.Betweenness })
	closeness := rank(func(m Metrics) float64 { return m.Closeness })
	eigen := rank(func(m Metrics) float64 { return m.Eigenvector })
	pagerank := rank(func(m Metrics) float64 { return m.PageRank })

	out := make([]PercentileRow, n)
	for i, r := range rows {
		p := PercentileRow{
			Label:            r.Label,
			InDegree:         inDeg[i],
			OutDegree:        outDeg[i],
			InStrength:       inStr[i],
			OutStrength:      outStr[i],
			DegreeCentrality: degree[i],
			Betweenness:      between[i],
			Closeness:        closeness[i],
			Eigenvector:      eigen[i],
			PageRank:         pagerank[i],
		}
		p.MeanResearchScore = (p.InDegree + p.Betweenness + p.Closeness + p.Eigenvector + p.PageRank) / 5
		out[i] = p
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MeanResearchScore > out[b].MeanResearchScore
	})
	return out
}

// percentileRanks converts values to percentile ranks in [0,1]: the
// lowest value maps to 0, the highest to 1, and ties share the average
// of their ranks. A single value ranks 0.
func percentileRanks(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n <= 1 {
		return out
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		rank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = (rank - 1) / float64(n-1)
		}
		i = j + 1
	}
	return out
}
