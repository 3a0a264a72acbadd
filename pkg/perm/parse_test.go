package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/omeganet/pkg/errors"
)

func TestParse_Valid(t *testing.T) {
	p, err := Parse("(7 0 6 5 2) (4 3) (1)")
	require.NoError(t, err)
	assert.Equal(t, "(0 6 5 2 7) (3 4)", p.String())
	assert.Equal(t, 6, p.Dest(0))
	assert.Equal(t, 1, p.Dest(1))
}

func TestParse_WhitespaceInsensitive(t *testing.T) {
	a, err := Parse("(0 1)(2 3)")
	require.NoError(t, err)
	b, err := Parse("  ( 0   1 )   ( 2 3 )  ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_SingletonIsFixedPoint(t *testing.T) {
	p, err := Parse("(1)")
	require.NoError(t, err)
	assert.True(t, p.IsIdentity())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		code errors.Code
	}{
		{"empty input", "", errors.ErrCodeInvalidSyntax},
		{"blank input", "   ", errors.ErrCodeInvalidSyntax},
		{"unbalanced open", "(0 1", errors.ErrCodeInvalidSyntax},
		{"unbalanced close", "0 1)", errors.ErrCodeInvalidSyntax},
		{"bare tokens", "0 1", errors.ErrCodeInvalidSyntax},
		{"non-integer token", "(0 x)", errors.ErrCodeInvalidSyntax},
		{"trailing junk", "(0 1) garbage", errors.ErrCodeInvalidSyntax},
		{"empty cycle", "()", errors.ErrCodeEmptyCycle},
		{"address out of range", "(0 9)", errors.ErrCodeInvalidAddress},
		{"repeated address", "(0 1) (1 2)", errors.ErrCodeDuplicateAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "error was: %v", err)
		})
	}
}
