package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Artifact is the rendered content of one class.
type Artifact struct {
	// Class is the name of the rendered class.
	Class string
	// File is the file name, relative to the output directory.
	File string
	// Content is the file content.
	Content []byte
}

// Writer writes artifacts into an output directory with a bounded pool of
// workers. Go files are formatted with goimports before they are written.
type Writer struct {
	outDir  string
	workers int

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks what a writer produced.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a writer for outDir with a single worker.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir, workers: 1}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteAll writes all artifacts and returns the written paths, sorted.
// Artifacts sharing a file name are collapsed first and the one that comes
// last wins, so colliding class names are written once and deterministically.
func (w *Writer) WriteAll(ctx context.Context, artifacts []*Artifact) ([]string, error) {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, NewGenerationError("write", "", w.outDir, "create output directory", err)
	}

	latest := make(map[string]*Artifact, len(artifacts))
	var names []string
	for _, a := range artifacts {
		if _, ok := latest[a.File]; !ok {
			names = append(names, a.File)
		}
		latest[a.File] = a
	}
	sort.Strings(names)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, name := range names {
		a := latest[name]
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(a)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(w.outDir, name)
	}
	return paths, nil
}

// writeFile formats (Go only) and writes a single artifact.
func (w *Writer) writeFile(a *Artifact) error {
	fullPath := filepath.Join(w.outDir, a.File)
	content := a.Content
	if filepath.Ext(a.File) == ".go" {
		formatted, err := imports.Process(fullPath, content, nil)
		if err != nil {
			return NewGenerationError("format", a.Class, a.File, "", err)
		}
		content = formatted
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return NewGenerationError("write", a.Class, a.File, "", fmt.Errorf("write %s: %w", a.File, err))
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(content))
	w.mu.Unlock()
	return nil
}
