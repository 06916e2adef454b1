package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/drawgen/compiler/gen"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage drawgen configuration",
		Long: `Manage drawgen configuration.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (DRAWGEN_*)
3. Config file (~/.drawgen/config.yaml)
4. Defaults`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				cfg, err := a.genConfig("")
				if err != nil {
					return err
				}
				if used := a.v.ConfigFileUsed(); used != "" {
					fmt.Fprintf(a.stderr, "Configuration file: %s\n", used)
				} else {
					fmt.Fprintln(a.stderr, "No configuration file found")
				}
				out, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				_, err = a.stdout.Write(out)
				return err
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration file",
			Args:  cobra.NoArgs,
			// The file to create does not exist yet, so it is not read.
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			RunE: func(*cobra.Command, []string) error {
				path := a.cfgFile
				if path == "" {
					home, err := os.UserHomeDir()
					if err != nil {
						return fmt.Errorf("find home directory: %w", err)
					}
					path = filepath.Join(home, ".drawgen", "config.yaml")
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s", path)
				}
				out, err := yaml.Marshal(gen.DefaultConfig())
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return fmt.Errorf("create config directory: %w", err)
				}
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintf(a.stdout, "Created %s\n", path)
				return nil
			},
		},
	)
	return cmd
}
