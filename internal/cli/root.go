// Package cli implements the drawgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/drawgen/compiler/gen"
	"github.com/syssam/drawgen/compiler/graph"
)

// Exit statuses returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	usageLine = "Usage: drawgen <input.drawio> <outputDir>"
	envPrefix = "DRAWGEN"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Configuration keys. They match the yaml keys of gen.Config so the output
// of "config show" can be used as a config file.
const (
	keyLanguage   = "language"
	keyExtension  = "extension"
	keyPackage    = "package"
	keyPluralizer = "pluralizer"
	keyTemplate   = "template"
	keyHeader     = "header"
	keyWorkers    = "workers"
	keyWatch      = "watch"
	keyVerbose    = "verbose"
)

type usageError struct{ got int }

func (e *usageError) Error() string {
	return fmt.Sprintf("expected 2 arguments, got %d", e.got)
}

// app holds the state of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer
}

// NewRootCmd returns the drawgen command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "drawgen <input> <outputDir>",
		Short: "Generate classes from a class diagram",
		Long: `drawgen reads a draw.io class diagram (or a YAML cell list), checks that it
is well formed and writes one class file per shape into the output directory.

Arrows with a hollow block head are inheritance, every other arrow is an
association labeled "name (1)" or "name (N)".

Example:
  drawgen shop.drawio src/main/java/shop
  drawgen shop.drawio internal/model --lang go --pluralizer inflect
  drawgen shop.drawio out --watch`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &usageError{got: len(args)}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
		RunE: a.runGenerate,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.drawgen/config.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("lang", gen.LanguageJava, "output language (java, go, template)")
	pf.String("ext", "", "file extension (default: the language's own)")
	pf.String("package", "", "package of the generated classes")
	pf.String("pluralizer", gen.PluralizerSimple, "collection naming (simple, inflect)")
	pf.String("template", "", "text/template file for --lang template")
	pf.String("header", "", "comment written at the top of each file")
	pf.Int("workers", 1, "files written in parallel")
	root.Flags().Bool("watch", false, "regenerate whenever the input changes")

	for key, flag := range map[string]string{
		keyLanguage:   "lang",
		keyExtension:  "ext",
		keyPackage:    "package",
		keyPluralizer: "pluralizer",
		keyTemplate:   "template",
		keyHeader:     "header",
		keyWorkers:    "workers",
		keyVerbose:    "verbose",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}
	_ = a.v.BindPFlag(keyWatch, root.Flags().Lookup("watch"))

	root.AddCommand(
		newGraphCmd(a),
		newConfigCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(a.stdout, "drawgen %s\n", Version)
			},
		},
	)
	return root
}

// Execute runs drawgen with args and returns the process exit status.
// Validation failures print their diagnostic on stdout.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stdout, usageLine)
		return ExitUsage
	}
	if verr, ok := graph.AsValidationError(err); ok {
		fmt.Fprintln(stdout, verr.Diagnostic())
		return ExitFailure
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}

// initConfig reads the config file and DRAWGEN_* variables, and installs the
// logger.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".drawgen"))
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := slog.LevelWarn
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))
	if used := a.v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}
	return nil
}

// genConfig builds the generation config from flags, environment and config
// file. target may be empty for commands that write nothing.
func (a *app) genConfig(target string) (*gen.Config, error) {
	opts := []gen.Option{
		gen.WithLanguage(a.v.GetString(keyLanguage)),
		gen.WithExtension(a.v.GetString(keyExtension)),
		gen.WithPackage(a.v.GetString(keyPackage)),
		gen.WithPluralizer(a.v.GetString(keyPluralizer)),
		gen.WithHeader(a.v.GetString(keyHeader)),
		gen.WithWorkers(a.v.GetInt(keyWorkers)),
	}
	if tmpl := a.v.GetString(keyTemplate); tmpl != "" {
		opts = append(opts, gen.WithTemplateFile(tmpl))
	}
	if target != "" {
		opts = append(opts, gen.WithTarget(target))
	}
	return gen.NewConfig(opts...)
}
