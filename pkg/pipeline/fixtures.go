package pipeline

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/omeganet/pkg/errors"
)

// Fixture is one named permutation for a batch run.
type Fixture struct {
	Name       string `toml:"name"`
	Expression string `toml:"expression"`
}

// Builtins returns the default regression fixtures pi1..pi5, evaluated
// when the CLI receives no expressions. The slice is freshly allocated so
// callers can treat it as their own; there is no package-level mutable
// fixture state.
func Builtins() []Fixture {
	return []Fixture{
		{Name: "pi1", Expression: "(7 0 6 5 2) (4 3) (1)"},
		{Name: "pi2", Expression: "(1 7) (0 3) (4 2) (5 6)"},
		{Name: "pi3", Expression: "(6 5 1 2) (0 3 4 7)"},
		{Name: "pi4", Expression: "(2 5 3 7 0 4) (1 6)"},
		{Name: "pi5", Expression: "(1 2 4 7 6 0 5 3)"},
	}
}

// FromArgs wraps raw CLI expressions as numbered fixtures.
func FromArgs(exprs []string) []Fixture {
	fixtures := make([]Fixture, len(exprs))
	for i, e := range exprs {
		fixtures[i] = Fixture{Name: fmt.Sprintf("arg %d", i+1), Expression: e}
	}
	return fixtures
}

// fixtureFile is the TOML document shape for LoadFixtures.
type fixtureFile struct {
	Fixtures []Fixture `toml:"fixture"`
}

// LoadFixtures reads named fixtures from a TOML file:
//
//	[[fixture]]
//	name = "pi1"
//	expression = "(7 0 6 5 2) (4 3) (1)"
//
// The expressions themselves are validated later, during evaluation, so a
// bad expression in a fixture file degrades to a per-permutation failure
// rather than rejecting the whole file.
func LoadFixtures(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "read fixtures %s", path)
	}

	var file fixtureFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "decode fixtures %s", path)
	}
	if len(file.Fixtures) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFixture, "no fixtures in %s", path)
	}
	for i, f := range file.Fixtures {
		if f.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidFixture, "fixture %d has no name", i+1)
		}
		if f.Expression == "" {
			return nil, errors.New(errors.ErrCodeInvalidFixture, "fixture %q has no expression", f.Name)
		}
	}
	return file.Fixtures, nil
}
