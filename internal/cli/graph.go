package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/drawgen/compiler"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <input>",
		Short: "Print the graph extracted from a diagram",
		Long: `Print the entities and relations found in a diagram as YAML, before any
validation. Useful to see why a shape or an arrow is not picked up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := compiler.Inspect(args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(g.Snapshot())
			if err != nil {
				return fmt.Errorf("marshal graph: %w", err)
			}
			_, err = a.stdout.Write(out)
			return err
		},
	}
}
