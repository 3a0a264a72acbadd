package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/omeganet/pkg/errors"
)

func TestEvaluate_Builtins(t *testing.T) {
	// Every built-in fixture needs exactly two transfer cycles.
	runner := NewRunner(nil)
	for _, f := range Builtins() {
		t.Run(f.Name, func(t *testing.T) {
			res, err := runner.Evaluate(context.Background(), f.Expression)
			require.NoError(t, err)
			assert.True(t, res.Report.Blocking)
			assert.Equal(t, 2, res.Report.MinimumCycles)
			assert.Len(t, res.Report.Cycles, 2)
		})
	}
}

func TestEvaluate_NonBlocking(t *testing.T) {
	runner := NewRunner(nil)
	res, err := runner.Evaluate(context.Background(), "(0 1)")
	require.NoError(t, err)
	assert.False(t, res.Report.Blocking)
	assert.Equal(t, 1, res.Report.MinimumCycles)
	assert.Equal(t, 0, res.Graph.EdgeCount())
}

func TestEvaluate_ParseError(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Evaluate(context.Background(), "(0 8)")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidAddress, errors.GetCode(err))
}

func TestEvaluate_Cancelled(t *testing.T) {
	runner := NewRunner(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Evaluate(ctx, "(0 1)")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_RecoversPerFixture(t *testing.T) {
	runner := NewRunner(nil)
	fixtures := []Fixture{
		{Name: "good", Expression: "(0 1)"},
		{Name: "bad", Expression: "(0 0)"},
		{Name: "also good", Expression: "(2 3)"},
	}

	outcomes, err := runner.RunBatch(context.Background(), fixtures)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.NoError(t, outcomes[2].Err)
	assert.False(t, AllFailed(outcomes))
}

func TestAllFailed(t *testing.T) {
	assert.True(t, AllFailed(nil))
	assert.True(t, AllFailed([]Outcome{{Err: assert.AnError}}))
	assert.False(t, AllFailed([]Outcome{{Err: assert.AnError}, {}}))
}

func TestFromArgs(t *testing.T) {
	fixtures := FromArgs([]string{"(0 1)", "(2 3)"})
	require.Len(t, fixtures, 2)
	assert.Equal(t, "arg 1", fixtures[0].Name)
	assert.Equal(t, "(2 3)", fixtures[1].Expression)
}

func TestLoadFixtures(t *testing.T) {
	fixtures, err := LoadFixtures(filepath.Join("testdata", "fixtures.toml"))
	require.NoError(t, err)
	require.Len(t, fixtures, 3)
	assert.Equal(t, "swap", fixtures[0].Name)
	assert.Equal(t, "(0 1)", fixtures[0].Expression)

	// The malformed third expression only fails at evaluation time.
	runner := NewRunner(nil)
	outcomes, err := runner.RunBatch(context.Background(), fixtures)
	require.NoError(t, err)
	assert.Error(t, outcomes[2].Err)
	assert.False(t, AllFailed(outcomes))
}

func TestLoadFixtures_Missing(t *testing.T) {
	_, err := LoadFixtures(filepath.Join("testdata", "nope.toml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFixture, errors.GetCode(err))
}

func TestBuiltins_Immutable(t *testing.T) {
	a := Builtins()
	a[0].Expression = "mutated"
	assert.NotEqual(t, a[0].Expression, Builtins()[0].Expression)
}
