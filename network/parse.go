package network

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// readTable reads a CSV file into a header map and data rows. Header
// names are lowercased and trimmed; variable-width rows are allowed.
func readTable(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	columns := make(map[string]int)
	for i, col := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return columns, rows[1:], nil
}

// cell returns the trimmed value of the named column, or "" when the
// column is absent or the row too short.
func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// coordinate parses a lat/lng cell, NaN when absent or non-numeric.
func coordinate(row []string, columns map[string]int, name string) float64 {
	v, err := strconv.ParseFloat(cell(row, columns, name), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ReadNodes reads a node table. The id column may be named id or
// node_id; display_text defaults to the id and node_type to unknown.
func ReadNodes(path string) ([]Node, error) {
	columns, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	idCol := "id"
	if _, ok := columns[idCol]; !ok {
		idCol = "node_id"
		if _, ok := columns[idCol]; !ok {
			return nil, fmt.Errorf("node file %s has no id or node_id column", path)
		}
	}

	nodes := make([]Node, 0, len(rows))
	for _, row := range rows {
		id := cell(row, columns, idCol)
		if id == "" {
			slog.Warn("skipping node row without id", "file", path)
			continue
		}
		n := Node{
			ID:    id,
			Label: cell(row, columns, "display_text"),
			Type:  cell(row, columns, "node_type"),
			Lat:   coordinate(row, columns, "lat"),
			Lng:   coordinate(row, columns, "lng"),
		}
		if n.Label == "" {
			n.Label = id
		}
		if n.Type == "" {
			n.Type = "unknown"
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ReadEdges reads an edge table. Source/target columns follow either
// the node_id_from/node_id_to or the parent_id/child_id convention.
// A missing or non-numeric weight defaults to 1.0 and a missing type
// to unknown.
func ReadEdges(path string) ([]Edge, error) {
	columns, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var srcCol, dstCol string
	switch {
	case hasColumns(columns, "node_id_from", "node_id_to"):
		srcCol, dstCol = "node_id_from", "node_id_to"
	case hasColumns(columns, "parent_id", "child_id"):
		srcCol, dstCol = "parent_id", "child_id"
	default:
		return nil, fmt.Errorf("edge file %s has no source/target columns (found: %s)",
			path, strings.Join(columnNames(columns), ", "))
	}

	edges := make([]Edge, 0, len(rows))
	for _, row := range rows {
		src := cell(row, columns, srcCol)
		dst := cell(row, columns, dstCol)
		if src == "" || dst == "" {
			slog.Warn("skipping edge row without both endpoints", "file", path)
			continue
		}
		weight := 1.0
		if w, err := strconv.ParseFloat(cell(row, columns, "weight"), 64); err == nil {
			weight = w
		}
		etype := cell(row, columns, "type")
		if etype == "" {
			etype = "unknown"
		}
		edges = append(edges, Edge{Source: src, Target: dst, Weight: weight, Type: etype})
	}
	return edges, nil
}

func hasColumns(columns map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := columns[n]; !ok {
			return false
		}
	}
	return true
}

func columnNames(columns map[string]int) []string {
	names := make([]string, 0, len(columns))
	for n := range columns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
