// Package graphio reads graph descriptions from YAML or JSON files and
// writes traversal results as JSON for replay consumers.
//
// The file schema mirrors the in-memory model, with nodes as plain ids:
//
//	isDirected: true
//	isWeighted: true
//	nodes: [A, B, C]
//	edges:
//	  - {node1: A, node2: B, weight: 1}
//	  - {node1: B, node2: C, weight: 2}
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .yaml/.yml/.json.
var ErrUnsupportedFormat = errors.New("graphio: unsupported file format")

// File is the on-disk graph description.
type File struct {
	IsDirected bool       `json:"isDirected" yaml:"isDirected"`
	IsWeighted bool       `json:"isWeighted" yaml:"isWeighted"`
	Nodes      []string   `json:"nodes" yaml:"nodes"`
	Edges      []FileEdge `json:"edges" yaml:"edges"`
}

// FileEdge is one edge entry in a graph file.
type FileEdge struct {
	Node1  string   `json:"node1" yaml:"node1"`
	Node2  string   `json:"node2" yaml:"node2"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Data converts the file schema to the engine's wire model.
func (f *File) Data() graph.Data {
	data := graph.Data{
		Nodes:      make([]graph.Node, len(f.Nodes)),
		Edges:      make([]graph.Edge, len(f.Edges)),
		IsDirected: f.IsDirected,
		IsWeighted: f.IsWeighted,
	}
	for i, id := range f.Nodes {
		data.Nodes[i] = graph.Node{ID: id}
	}
	for i, e := range f.Edges {
		data.Edges[i] = graph.Edge{Node1: e.Node1, Node2: e.Node2, Weight: e.Weight}
	}
	return data
}

// Load reads and validates the graph description at path, choosing the
// decoder by file extension.
func Load(path string) (*graph.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}
	return Parse(raw, filepath.Ext(path))
}

// Parse decodes a graph description in the format implied by ext
// (".yaml", ".yml", or ".json") and builds the validated graph.
func Parse(raw []byte, ext string) (*graph.Graph, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("graphio: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return graph.New(f.Data())
}

// WriteResult writes res to w as indented JSON using the stable wire field
// names (traversal, log, steps, nodeAnnotations).
func WriteResult(w io.Writer, res *traversal.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("graphio: encode result: %w", err)
	}
	return nil
}

// SaveResult writes res to path, creating or truncating the file.
func SaveResult(path string, res *traversal.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err := WriteResult(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
