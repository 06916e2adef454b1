// Package compiler runs the diagram to code pipeline: load a document,
// extract its graph, validate it and write one class file per entity.
//
// Validation happens before anything is written, so a failing document
// leaves the output directory untouched.
package compiler

import (
	"context"
	"log/slog"

	"github.com/syssam/drawgen/compiler/gen"
	"github.com/syssam/drawgen/compiler/graph"
	"github.com/syssam/drawgen/compiler/label"
	"github.com/syssam/drawgen/compiler/load"
)

// Result describes a successful generation.
type Result struct {
	// Classes is the number of entities in the diagram.
	Classes int
	// Files are the written paths, sorted.
	Files []string
	// Target is the output directory.
	Target string
}

// Inspect loads the document at path and returns its extracted graph,
// without validating it.
func Inspect(path string) (*graph.Graph, error) {
	doc, err := load.Load(path)
	if err != nil {
		return nil, err
	}
	return graph.Extract(doc), nil
}

// Check loads and validates the document at path.
func Check(path string) (*graph.Graph, error) {
	g, err := Inspect(path)
	if err != nil {
		return nil, err
	}
	if err := graph.Validate(g, label.New()); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate reads the document at input and writes the generated classes
// into cfg.Target.
func Generate(ctx context.Context, input string, cfg *gen.Config) (*Result, error) {
	if cfg == nil || cfg.Target == "" {
		return nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	g, err := Check(input)
	if err != nil {
		return nil, err
	}
	files, err := gen.Generate(ctx, g, label.New(), cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("generation finished", "input", input, "target", cfg.Target, "classes", g.Len(), "files", len(files))
	return &Result{Classes: g.Len(), Files: files, Target: cfg.Target}, nil
}
