package network

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Column headers for the exported tables.
var (
	metricsHeader = []string{
		"Node", "Label", "Type",
		"In_Degree", "Out_Degree",
		"In_Strength_WeightSum", "Out_Strength_WeightSum",
		"DegreeCentrality", "BetweennessCentrality",
		"ClosenessCentrality_Undirected", "EigenvectorCentrality", "PageRank",
	}
	percentilesHeader = []string{
		"Label",
		"In_Degree", "Out_Degree",
		"In_Strength_WeightSum", "Out_Strength_WeightSum",
		"DegreeCentrality", "BetweennessCentrality",
		"ClosenessCentrality_Undirected", "EigenvectorCentrality", "PageRank",
		"MeanResearchScore",
	}
)

// WriteMetrics writes metric rows as CSV with a header row.
func WriteMetrics(w io.Writer, rows []Metrics) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(metricsHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Node, r.Label, r.Type,
			strconv.Itoa(r.InDegree), strconv.Itoa(r.OutDegree),
			formatFloat(r.InStrength), formatFloat(r.OutStrength),
			formatFloat(r.DegreeCentrality), formatFloat(r.Betweenness),
			formatFloat(r.Closeness), formatFloat(r.Eigenvector), formatFloat(r.PageRank),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePercentiles writes percentile rows as CSV with a header row.
func WritePercentiles(w io.Writer, rows []PercentileRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(percentilesHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Label,
			formatFloat(r.InDegree), formatFloat(r.OutDegree),
			formatFloat(r.InStrength), formatFloat(r.OutStrength),
			formatFloat(r.DegreeCentrality), formatFloat(r.Betweenness),
			formatFloat(r.Closeness), formatFloat(r.Eigenvector), formatFloat(r.PageRank),
			formatFloat(r.MeanResearchScore),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
