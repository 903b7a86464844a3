// Package config provides configuration loading for the MIrA tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete MIrA tool configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// DataConfig locates the catalogue XML exports and the converter output.
type DataConfig struct {
	// Manuscripts is the compiled manuscript description file
	Manuscripts string `yaml:"manuscripts"`
	// People, Places, Texts and Libraries are the authority record files
	People    string `yaml:"people"`
	Places    string `yaml:"places"`
	Texts     string `yaml:"texts"`
	Libraries string `yaml:"libraries"`
	// Output is the Turtle file the converter writes
	Output string `yaml:"output"`
}

// MetricsConfig locates the network analysis inputs, one section per
// data model.
type MetricsConfig struct {
	Model1 Model1Config `yaml:"model1"`
	Model2 Model2Config `yaml:"model2"`
}

// Model1Config locates the place + manuscript model CSV tables.
type Model1Config struct {
	PlaceNodes      string `yaml:"place_nodes"`
	ManuscriptNodes string `yaml:"manuscript_nodes"`
	ManuscriptEdges string `yaml:"manuscript_edges"`
	HierarchyEdges  string `yaml:"hierarchy_edges"`
	OutputDir       string `yaml:"output_dir"`
}

// Model2Config locates the place + library model CSV tables.
type Model2Config struct {
	PlaceNodes      string `yaml:"place_nodes"`
	LibraryNodes    string `yaml:"library_nodes"`
	ManuscriptEdges string `yaml:"manuscript_edges"`
	HierarchyEdges  string `yaml:"hierarchy_edges"`
	OutputDir       string `yaml:"output_dir"`
}

// DefaultConfig returns a Config matching the catalogue's data layout.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Manuscripts: "data/mss_compiled.xml",
			People:      "data/other/people.xml",
			Places:      "data/other/places.xml",
			Texts:       "data/other/texts.xml",
			Libraries:   "data/other/libraries.xml",
			Output:      "data/rdf/mira_wikidata_aligned.ttl",
		},
		Metrics: MetricsConfig{
			Model1: Model1Config{
				PlaceNodes:      "data/network/model1/nodes_places.csv",
				ManuscriptNodes: "data/network/model1/nodes_mss.csv",
				ManuscriptEdges: "data/network/model1/edges_mss.csv",
				HierarchyEdges:  "data/network/model1/edges_places-hierarchy.csv",
				OutputDir:       "data/network/model1/output",
			},
			Model2: Model2Config{
				PlaceNodes:      "data/network/model2/nodes_places.csv",
				LibraryNodes:    "data/network/model2/nodes_libraries.csv",
				ManuscriptEdges: "data/network/model2/edges_mss.csv",
				HierarchyEdges:  "data/network/model2/edges_places-hierarchy.csv",
				OutputDir:       "data/network/model2/output",
			},
		},
	}
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{c.Data.Manuscripts, "data.manuscripts"},
		{c.Data.People, "data.people"},
		{c.Data.Places, "data.places"},
		{c.Data.Texts, "data.texts"},
		{c.Data.Libraries, "data.libraries"},
		{c.Data.Output, "data.output"},
		{c.Metrics.Model1.PlaceNodes, "metrics.model1.place_nodes"},
		{c.Metrics.Model1.ManuscriptNodes, "metrics.model1.manuscript_nodes"},
		{c.Metrics.Model1.ManuscriptEdges, "metrics.model1.manuscript_edges"},
		{c.Metrics.Model1.HierarchyEdges, "metrics.model1.hierarchy_edges"},
		{c.Metrics.Model1.OutputDir, "metrics.model1.output_dir"},
		{c.Metrics.Model2.PlaceNodes, "metrics.model2.place_nodes"},
		{c.Metrics.Model2.LibraryNodes, "metrics.model2.library_nodes"},
		{c.Metrics.Model2.ManuscriptEdges, "metrics.model2.manuscript_edges"},
		{c.Metrics.Model2.HierarchyEdges, "metrics.model2.hierarchy_edges"},
		{c.Metrics.Model2.OutputDir, "metrics.model2.output_dir"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Fields the file
// leaves out keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence
// for non-empty values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Data.Manuscripts, other.Data.Manuscripts)
	merge(&c.Data.People, other.Data.People)
	merge(&c.Data.Places, other.Data.Places)
	merge(&c.Data.Texts, other.Data.Texts)
	merge(&c.Data.Libraries, other.Data.Libraries)
	merge(&c.Data.Output, other.Data.Output)

	merge(&c.Metrics.Model1.PlaceNodes, other.Metrics.Model1.PlaceNodes)
	merge(&c.Metrics.Model1.ManuscriptNodes, other.Metrics.Model1.ManuscriptNodes)
	merge(&c.Metrics.Model1.ManuscriptEdges, other.Metrics.Model1.ManuscriptEdges)
	merge(&c.Metrics.Model1.HierarchyEdges, other.Metrics.Model1.HierarchyEdges)
	merge(&c.Metrics.Model1.OutputDir, other.Metrics.Model1.OutputDir)

	merge(&c.Metrics.Model2.PlaceNodes, other.Metrics.Model2.PlaceNodes)
	merge(&c.Metrics.Model2.LibraryNodes, other.Metrics.Model2.LibraryNodes)
	merge(&c.Metrics.Model2.ManuscriptEdges, other.Metrics.Model2.ManuscriptEdges)
	merge(&c.Metrics.Model2.HierarchyEdges, other.Metrics.Model2.HierarchyEdges)
	merge(&c.Metrics.Model2.OutputDir, other.Metrics.Model2.OutputDir)
}
