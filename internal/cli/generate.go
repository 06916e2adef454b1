package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/drawgen/compiler"
	"github.com/syssam/drawgen/compiler/gen"
	"github.com/syssam/drawgen/compiler/graph"
)

// settle is how long the input must stay quiet before a rerun. Editors often
// save in several writes.
const settle = 100 * time.Millisecond

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	input, target := args[0], args[1]
	cfg, err := a.genConfig(target)
	if err != nil {
		return err
	}
	if err := a.generate(cmd.Context(), input, cfg); err != nil {
		return err
	}
	if !a.v.GetBool(keyWatch) {
		return nil
	}
	return a.watch(cmd.Context(), input, cfg)
}

func (a *app) generate(ctx context.Context, input string, cfg *gen.Config) error {
	res, err := compiler.Generate(ctx, input, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Generated %d classes into %s\n", res.Classes, res.Target)
	return nil
}

// watch reruns the pipeline whenever input is written or recreated, until
// ctx is done. Failed runs are reported and watching goes on.
func (a *app) watch(ctx context.Context, input string, cfg *gen.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", input, err)
	}
	defer w.Close()

	// Watch the directory: editors that save by rename replace the file.
	if err := w.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", input, err)
	}
	name := filepath.Clean(input)
	slog.Info("watching for changes", "input", input)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				timer.Reset(settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "input", input, "error", err)
		case <-timer.C:
			if err := a.generate(ctx, input, cfg); err != nil {
				a.report(err)
			}
		}
	}
}

// report prints a failed watch run.
func (a *app) report(err error) {
	if verr, ok := graph.AsValidationError(err); ok {
		fmt.Fprintln(a.stdout, verr.Diagnostic())
		return
	}
	slog.Error("generation failed", "error", err)
}
