package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/omeganet/pkg/errors"
	"github.com/matzehuels/omeganet/pkg/report"
)

// Output formats supported by visualize.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// visualizeCommand creates the visualize command for rendering the
// conflict graph of a single permutation.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "visualize <expression>",
		Short: "Render the conflict graph of a permutation",
		Long: `Render the conflict graph of a permutation.

Transfers become nodes labeled "src->dst" and tinted by their assigned
transfer cycle; an edge joins two transfers that demand conflicting switch
settings. Output is Graphviz DOT by default, or SVG/PNG rendered
in-process.

DOT output goes to stdout unless --output is given; SVG and PNG require
--output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (required for svg and png)")

	return cmd
}

func validateFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSyntax, "unknown format %q (want dot, svg, or png)", format)
}

// runVisualize evaluates the expression and writes the rendered graph.
func (c *CLI) runVisualize(ctx context.Context, expr, format, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if output == "" && format != formatDOT {
		return errors.New(errors.ErrCodeInvalidSyntax, "--output is required for %s", format)
	}

	res, err := c.newRunner().Evaluate(ctx, expr)
	if err != nil {
		return err
	}

	dot := report.ToDOT(res.Graph, res.Schedule, expr)

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = report.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = report.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if output == "" {
		fmt.Fprint(os.Stdout, dot)
		prog.done("Rendered conflict graph")
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered conflict graph (%s)", res.Report.Status())
	printFile(output)
	prog.done("Rendered conflict graph")
	return nil
}
