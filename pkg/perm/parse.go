package perm

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/matzehuels/omeganet/pkg/errors"
)

// Grammar for cycle-notation expressions: one or more parenthesized cycles,
// each holding whitespace-separated addresses. Empty cycles are accepted by
// the grammar so they can be rejected with a dedicated error code instead
// of a generic syntax failure.
type cycleList struct {
	Cycles []*cycleExpr `parser:"@@+"`
}

type cycleExpr struct {
	Addrs []int `parser:"'(' @Int* ')'"`
}

var cycleParser = participle.MustBuild[cycleList]()

// Parse reads a permutation from cycle-notation text such as
// "(7 0 6 5 2) (4 3) (1)". Addresses absent from every cycle are implicit
// fixed points.
//
// Malformed syntax yields ErrCodeInvalidSyntax; an empty cycle "()" yields
// ErrCodeEmptyCycle; out-of-range or repeated addresses yield the
// validation errors of [FromCycles].
func Parse(expr string) (Permutation, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Permutation{}, errors.New(errors.ErrCodeInvalidSyntax, "empty permutation expression")
	}

	list, err := cycleParser.ParseString("", trimmed)
	if err != nil {
		return Permutation{}, errors.Wrap(errors.ErrCodeInvalidSyntax, err, "parse %q", trimmed)
	}

	cycles := make([][]int, len(list.Cycles))
	for i, c := range list.Cycles {
		cycles[i] = c.Addrs
	}
	return FromCycles(cycles)
}
