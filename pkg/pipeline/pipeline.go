// Package pipeline wires the analysis stages together: parse a
// permutation expression, route its transfers, build the conflict graph,
// compute the minimum transfer-cycle schedule, and assemble the report.
//
// The same Runner backs single-expression evaluation and batch runs, so
// the CLI and tests share one code path. Batch runs recover per
// permutation: one malformed expression is reported and the rest still
// evaluate.
//
// Each evaluation is independent and touches only immutable topology
// constants, so a Runner is safe for concurrent use; batch runs evaluate
// sequentially because a whole batch completes in microseconds.
package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/omeganet/pkg/perm"
	"github.com/matzehuels/omeganet/pkg/report"
	"github.com/matzehuels/omeganet/pkg/schedule"
)

// Result bundles every artifact of one evaluation. All fields are derived,
// read-only values; nothing persists between evaluations.
type Result struct {
	Permutation perm.Permutation
	Graph       *schedule.Graph
	Schedule    schedule.Schedule
	Report      report.Report
}

// Outcome is one entry of a batch run: either a Result or the error that
// stopped this permutation, never both.
type Outcome struct {
	Name       string // fixture name, or "arg N" for CLI expressions
	Expression string
	Result     Result
	Err        error
}

// Runner executes the analysis pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// Evaluate runs the full pipeline for one cycle-notation expression.
func (r *Runner) Evaluate(ctx context.Context, expr string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p, err := perm.Parse(expr)
	if err != nil {
		return Result{}, err
	}

	transfers := p.Transfers()
	r.logger.Debug("parsed permutation", "canonical", p.String(), "transfers", len(transfers))

	g := schedule.BuildConflictGraph(transfers)
	s := schedule.Minimum(g)
	r.logger.Debug("scheduled transfers", "conflicts", g.EdgeCount(), "cycles", s.MinimumCycles())

	rep, err := report.Build(expr, s)
	if err != nil {
		return Result{}, err
	}
	return Result{Permutation: p, Graph: g, Schedule: s, Report: rep}, nil
}

// RunBatch evaluates every fixture in order. Failures are captured per
// outcome; the batch itself only stops if ctx is cancelled.
func (r *Runner) RunBatch(ctx context.Context, fixtures []Fixture) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(fixtures))
	for _, f := range fixtures {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		res, err := r.Evaluate(ctx, f.Expression)
		if err != nil {
			r.logger.Error("analysis failed", "name", f.Name, "err", err)
		}
		outcomes = append(outcomes, Outcome{
			Name:       f.Name,
			Expression: f.Expression,
			Result:     res,
			Err:        err,
		})
	}
	return outcomes, nil
}

// AllFailed reports whether every outcome of a batch carries an error.
// An empty batch counts as failed so callers never treat it as success.
func AllFailed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Err == nil {
			return false
		}
	}
	return true
}
