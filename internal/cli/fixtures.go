package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/omeganet/pkg/pipeline"
)

// fixturesCommand creates the fixtures command listing built-in permutations.
func (c *CLI) fixturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "List the built-in regression permutations",
		Long: `List the built-in regression permutations.

These are the permutations analyzed when 'analyze' runs without arguments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range pipeline.Builtins() {
				printKeyValue(f.Name, f.Expression)
			}
			return nil
		},
	}
}
