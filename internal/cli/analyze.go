package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/omeganet/pkg/errors"
	"github.com/matzehuels/omeganet/pkg/pipeline"
)

// analyzeCommand creates the analyze command for scheduling permutations.
func (c *CLI) analyzeCommand() *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "analyze [expression...]",
		Short: "Compute the minimum transfer-cycle schedule for permutations",
		Long: `Compute the minimum transfer-cycle schedule for permutations.

Each expression is a permutation of the addresses 0-7 in cycle notation,
for example "(7 0 6 5 2) (4 3) (1)". The analyze command routes every
source-to-destination transfer through the omega network, finds the pairs
that demand conflicting switch settings, and reports the minimum number of
conflict-free transfer cycles together with the per-cycle switch grids.

With no expressions the built-in regression permutations pi1-pi5 are
analyzed. A fixtures file (TOML) replaces the built-ins:

  [[fixture]]
  name = "pi1"
  expression = "(7 0 6 5 2) (4 3) (1)"

A malformed expression is reported and the remaining permutations still
run; the command fails only when every permutation failed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := resolveFixtures(args, fixturesPath)
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), fixtures)
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "TOML file with named permutations (replaces built-ins)")

	return cmd
}

// resolveFixtures picks the batch to run: explicit expressions win, then a
// fixtures file, then the built-ins.
func resolveFixtures(args []string, path string) ([]pipeline.Fixture, error) {
	if len(args) > 0 {
		if path != "" {
			return nil, errors.New(errors.ErrCodeInvalidFixture, "pass expressions or --fixtures, not both")
		}
		return pipeline.FromArgs(args), nil
	}
	if path != "" {
		return pipeline.LoadFixtures(path)
	}
	return pipeline.Builtins(), nil
}

// runAnalyze evaluates the batch and prints one report per permutation.
func (c *CLI) runAnalyze(ctx context.Context, fixtures []pipeline.Fixture) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	outcomes, err := c.newRunner().RunBatch(ctx, fixtures)
	if err != nil {
		return err
	}

	for i, o := range outcomes {
		if i > 0 {
			printNewline()
		}
		if len(outcomes) > 1 {
			printInfo("%s", StyleTitle.Render(o.Name))
		}
		if o.Err != nil {
			printError("%s: %s", o.Expression, errors.UserMessage(o.Err))
			continue
		}
		fmt.Fprint(os.Stdout, o.Result.Report.String())
	}

	prog.done(fmt.Sprintf("Analyzed %d permutation(s)", len(outcomes)))

	if pipeline.AllFailed(outcomes) {
		return errors.New(errors.ErrCodeInvalidSyntax, "all %d permutation(s) failed", len(outcomes))
	}
	return nil
}
