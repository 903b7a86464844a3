package network

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Output table names, fixed per model.
const (
	AllNodesFile        = "metrics_all_nodes.csv"
	PlaceNodesFile      = "metrics_place_nodes.csv"
	ManuscriptNodesFile = "metrics_manuscript_nodes.csv"
	LibraryNodesFile    = "metrics_library_nodes.csv"
	PercentilesFile     = "metrics_place_nodes_percentiles.csv"
)

// Model1Options locates the place + manuscript model inputs and the
// output directory.
type Model1Options struct {
	PlaceNodesPath      string
	ManuscriptNodesPath string
	ManuscriptEdgesPath string
	HierarchyEdgesPath  string
	OutputDir           string
}

// Model2Options locates the place + library model inputs and the
// output directory.
type Model2Options struct {
	PlaceNodesPath      string
	LibraryNodesPath    string
	ManuscriptEdgesPath string
	HierarchyEdgesPath  string
	OutputDir           string
}

// Summary reports what a model run processed and produced.
type Summary struct {
	Nodes   int
	Edges   int
	Written []string
}

// RunModel1 computes metrics over the place + manuscript network and
// writes the full table, the per-class tables, and the place percentile
// table. The percentile table is skipped with a warning when no node
// carries the place type.
func RunModel1(opts Model1Options) (*Summary, error) {
	g, err := loadGraph(
		[]string{opts.PlaceNodesPath, opts.ManuscriptNodesPath},
		[]string{opts.ManuscriptEdgesPath, opts.HierarchyEdgesPath},
	)
	if err != nil {
		return nil, err
	}
	slog.Info("network ready", "nodes", g.Order(), "edges", g.Size())

	rows := Compute(g)
	sum := &Summary{Nodes: g.Order(), Edges: g.Size()}

	if err := writeTable(sum, opts.OutputDir, AllNodesFile, rows); err != nil {
		return nil, err
	}
	places := filterTypes(rows, "place")
	if err := writeTable(sum, opts.OutputDir, PlaceNodesFile, places); err != nil {
		return nil, err
	}
	mss := filterTypes(rows, "manuscript", "ms", "mss")
	if err := writeTable(sum, opts.OutputDir, ManuscriptNodesFile, mss); err != nil {
		return nil, err
	}

	if len(places) == 0 {
		slog.Warn("no place nodes found, skipping percentile table")
		return sum, nil
	}
	path := filepath.Join(opts.OutputDir, PercentilesFile)
	if err := writeCSV(path, func(w io.Writer) error {
		return WritePercentiles(w, PlacePercentiles(places))
	}); err != nil {
		return nil, err
	}
	sum.Written = append(sum.Written, path)

	return sum, nil
}

// RunModel2 computes metrics over the place + library network and
// writes the full table and the per-class tables.
func RunModel2(opts Model2Options) (*Summary, error) {
	g, err := loadGraph(
		[]string{opts.PlaceNodesPath, opts.LibraryNodesPath},
		[]string{opts.ManuscriptEdgesPath, opts.HierarchyEdgesPath},
	)
	if err != nil {
		return nil, err
	}
	slog.Info("network ready", "nodes", g.Order(), "edges", g.Size())

	rows := Compute(g)
	sum := &Summary{Nodes: g.Order(), Edges: g.Size()}

	if err := writeTable(sum, opts.OutputDir, AllNodesFile, rows); err != nil {
		return nil, err
	}
	if err := writeTable(sum, opts.OutputDir, PlaceNodesFile, filterTypes(rows, "place")); err != nil {
		return nil, err
	}
	libs := filterTypes(rows, "library", "libraries")
	if err := writeTable(sum, opts.OutputDir, LibraryNodesFile, libs); err != nil {
		return nil, err
	}

	return sum, nil
}

// loadGraph reads the node and edge tables and assembles the network.
// Node tables load before edge tables so placeholder nodes only stand
// in for endpoints genuinely missing from the exports.
func loadGraph(nodePaths, edgePaths []string) (*Graph, error) {
	g := NewGraph()
	for _, p := range nodePaths {
		nodes, err := ReadNodes(p)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			g.AddNode(n)
		}
	}
	for _, p := range edgePaths {
		edges, err := ReadEdges(p)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			g.AddEdge(e)
		}
	}
	return g, nil
}

func filterTypes(rows []Metrics, types ...string) []Metrics {
	var out []Metrics
	for _, r := range rows {
		for _, t := range types {
			if r.Type == t {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func writeTable(sum *Summary, dir, name string, rows []Metrics) error {
	path := filepath.Join(dir, name)
	if err := writeCSV(path, func(w io.Writer) error { return WriteMetrics(w, rows) }); err != nil {
		return err
	}
	sum.Written = append(sum.Written, path)
	return nil
}

// writeCSV creates the file, its directory included, and hands it to
// write.
func writeCSV(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
