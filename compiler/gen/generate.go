package gen

import (
	"context"
	"log/slog"

	"github.com/syssam/drawgen/compiler/graph"
	"github.com/syssam/drawgen/compiler/label"
)

// Emit resolves every class of a validated graph and renders it with the
// target selected by cfg. Nothing is written.
func Emit(g *graph.Graph, grammar *label.Grammar, cfg *Config) ([]*Artifact, error) {
	plural, err := NewPluralizer(cfg.Pluralizer)
	if err != nil {
		return nil, err
	}
	target, err := NewTarget(cfg)
	if err != nil {
		return nil, err
	}
	defs, err := Resolve(g, grammar, plural)
	if err != nil {
		return nil, err
	}
	artifacts := make([]*Artifact, 0, len(defs))
	for _, def := range defs {
		file := def.Name + "." + target.Extension()
		content, err := target.Render(def)
		if err != nil {
			return nil, NewGenerationError("render", def.Name, file, "", err)
		}
		artifacts = append(artifacts, &Artifact{Class: def.Name, File: file, Content: content})
	}
	slog.Debug("classes rendered", "language", target.Name(), "classes", len(artifacts))
	return artifacts, nil
}

// Generate renders every class of a validated graph and writes one file per
// class into cfg.Target. It returns the written paths.
func Generate(ctx context.Context, g *graph.Graph, grammar *label.Grammar, cfg *Config) ([]string, error) {
	if cfg == nil || cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	artifacts, err := Emit(g, grammar, cfg)
	if err != nil {
		return nil, err
	}
	w := NewWriter(cfg.Target).WithWorkers(cfg.Workers)
	paths, err := w.WriteAll(ctx, artifacts)
	if err != nil {
		return nil, err
	}
	m := w.Metrics()
	slog.Debug("files written", "target", cfg.Target, "files", m.FilesGenerated, "bytes", m.TotalBytes)
	return paths, nil
}
