// Package yamldoc reads labeled-graph documents written as YAML:
//
//	cells:
//	  - {id: c, vertex: 1, value: Customer}
//	  - {id: o, vertex: 1, value: Order}
//	  - {id: e, edge: 1, source: c, target: o, value: "has (N)"}
//
// Every cell is a mapping of attribute names to scalars.
package yamldoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/drawgen/diagram"
)

// file is the on-disk layout.
type file struct {
	Cells []map[string]yaml.Node `yaml:"cells"`
}

// ReadFile parses the YAML document at path.
func ReadFile(path string) (*diagram.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a YAML document from r.
func Parse(r io.Reader, source string) (*diagram.Document, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return diagram.New(source), nil
		}
		return nil, fmt.Errorf("yamldoc: %w", err)
	}
	cells := make([]diagram.Cell, 0, len(doc.Cells))
	for i, c := range doc.Cells {
		attrs := make(map[string]string, len(c))
		for name, node := range c {
			if node.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yamldoc: cell %d: attribute %q (line %d) must be a scalar", i, name, node.Line)
			}
			attrs[name] = node.Value
		}
		cells = append(cells, diagram.NewCell(attrs))
	}
	return diagram.New(source, cells...), nil
}
