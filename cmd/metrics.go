package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudhansu1991/MIrA/network"
)

var (
	metricsPlaceNodes      string
	metricsManuscriptNodes string
	metricsLibraryNodes    string
	metricsManuscriptEdges string
	metricsHierarchyEdges  string
	metricsOutputDir       string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute network metrics over the catalogue graph exports",
	Long: `Compute directed-network centrality metrics over the catalogue's
node/edge CSV exports and write per-node metric tables.

Two data models are supported:
  model1  places + manuscripts (includes a place percentile ranking)
  model2  places + libraries

Examples:
  mira metrics model1
  mira metrics model2 --output-dir /tmp/model2
  mira metrics model1 --place-nodes exports/nodes_places.csv`,
}

var metricsModel1Cmd = &cobra.Command{
	Use:   "model1",
	Short: "Place + manuscript network metrics",
	Long: `Compute metrics over the place + manuscript network.

Writes the all-node table, the place and manuscript tables, and a
place percentile ranking with a mean research score per place.`,
	RunE: runMetricsModel1,
}

var metricsModel2Cmd = &cobra.Command{
	Use:   "model2",
	Short: "Place + library network metrics",
	Long: `Compute metrics over the place + library network.

Writes the all-node table and the place and library tables.`,
	RunE: runMetricsModel2,
}

func init() {
	for _, c := range []*cobra.Command{metricsModel1Cmd, metricsModel2Cmd} {
		c.Flags().StringVar(&metricsPlaceNodes, "place-nodes", "", "Place node CSV (default: from config)")
		c.Flags().StringVar(&metricsManuscriptEdges, "manuscript-edges", "", "Manuscript edge CSV (default: from config)")
		c.Flags().StringVar(&metricsHierarchyEdges, "hierarchy-edges", "", "Place hierarchy edge CSV (default: from config)")
		c.Flags().StringVarP(&metricsOutputDir, "output-dir", "o", "", "Directory for the metric tables (default: from config)")
	}
	metricsModel1Cmd.Flags().StringVar(&metricsManuscriptNodes, "manuscript-nodes", "", "Manuscript node CSV (default: from config)")
	metricsModel2Cmd.Flags().StringVar(&metricsLibraryNodes, "library-nodes", "", "Library node CSV (default: from config)")

	metricsCmd.AddCommand(metricsModel1Cmd)
	metricsCmd.AddCommand(metricsModel2Cmd)
}

func runMetricsModel1(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	opts := network.Model1Options{
		PlaceNodesPath:      cfg.Metrics.Model1.PlaceNodes,
		ManuscriptNodesPath: cfg.Metrics.Model1.ManuscriptNodes,
		ManuscriptEdgesPath: cfg.Metrics.Model1.ManuscriptEdges,
		HierarchyEdgesPath:  cfg.Metrics.Model1.HierarchyEdges,
		OutputDir:           cfg.Metrics.Model1.OutputDir,
	}
	if metricsPlaceNodes != "" {
		opts.PlaceNodesPath = metricsPlaceNodes
	}
	if metricsManuscriptNodes != "" {
		opts.ManuscriptNodesPath = metricsManuscriptNodes
	}
	if metricsManuscriptEdges != "" {
		opts.ManuscriptEdgesPath = metricsManuscriptEdges
	}
	if metricsHierarchyEdges != "" {
		opts.HierarchyEdgesPath = metricsHierarchyEdges
	}
	if metricsOutputDir != "" {
		opts.OutputDir = metricsOutputDir
	}

	sum, err := network.RunModel1(opts)
	if err != nil {
		return err
	}

	reportMetricsRun(sum)
	return nil
}

func runMetricsModel2(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	opts := network.Model2Options{
		PlaceNodesPath:      cfg.Metrics.Model2.PlaceNodes,
		LibraryNodesPath:    cfg.Metrics.Model2.LibraryNodes,
		ManuscriptEdgesPath: cfg.Metrics.Model2.ManuscriptEdges,
		HierarchyEdgesPath:  cfg.Metrics.Model2.HierarchyEdges,
		OutputDir:           cfg.Metrics.Model2.OutputDir,
	}
	if metricsPlaceNodes != "" {
		opts.PlaceNodesPath = metricsPlaceNodes
	}
	if metricsLibraryNodes != "" {
		opts.LibraryNodesPath = metricsLibraryNodes
	}
	if metricsManuscriptEdges != "" {
		opts.ManuscriptEdgesPath = metricsManuscriptEdges
	}
	if metricsHierarchyEdges != "" {
		opts.HierarchyEdgesPath = metricsHierarchyEdges
	}
	if metricsOutputDir != "" {
		opts.OutputDir = metricsOutputDir
	}

	sum, err := network.RunModel2(opts)
	if err != nil {
		return err
	}

	reportMetricsRun(sum)
	return nil
}

func reportMetricsRun(sum *network.Summary) {
	fmt.Printf("✓ Computed metrics for %d nodes, %d edges\n", sum.Nodes, sum.Edges)
	for _, path := range sum.Written {
		fmt.Printf("  wrote %s\n", path)
	}
}
