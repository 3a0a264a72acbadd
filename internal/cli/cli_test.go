package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/omeganet/pkg/errors"
)

// runCommand executes the CLI with the given args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	execErr := root.ExecuteContext(context.Background())

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return buf.String(), execErr
}

func TestAnalyze_SingleExpression(t *testing.T) {
	out, err := runCommand(t, "analyze", "(7 0 6 5 2) (4 3) (1)")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	for _, want := range []string{
		"Permutation: (7 0 6 5 2) (4 3) (1)",
		"Status: BLOCKING",
		"Minimum Cycles: 2",
		"Cycle 2:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyze_DefaultsToBuiltins(t *testing.T) {
	out, err := runCommand(t, "analyze")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if got := strings.Count(out, "Permutation: "); got != 5 {
		t.Errorf("expected 5 reports, got %d:\n%s", got, out)
	}
}

func TestAnalyze_PartialFailure(t *testing.T) {
	out, err := runCommand(t, "analyze", "(0 1)", "(0 8)")
	if err != nil {
		t.Fatalf("one valid permutation should keep the run green, got %v", err)
	}
	if !strings.Contains(out, "Status: NON-BLOCKING") {
		t.Errorf("valid permutation not analyzed:\n%s", out)
	}
}

func TestAnalyze_AllFailed(t *testing.T) {
	_, err := runCommand(t, "analyze", "(0 8)", "(9)")
	if err == nil {
		t.Fatal("expected an error when every permutation fails")
	}
}

func TestAnalyze_FixturesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.toml")
	data := "[[fixture]]\nname = \"swap\"\nexpression = \"(0 1)\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}

	out, err := runCommand(t, "analyze", "--fixtures", path)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "Permutation: (0 1)") {
		t.Errorf("fixtures file not used:\n%s", out)
	}
}

func TestResolveFixtures_ArgsAndFileConflict(t *testing.T) {
	_, err := resolveFixtures([]string{"(0 1)"}, "fixtures.toml")
	if errors.GetCode(err) != errors.ErrCodeInvalidFixture {
		t.Errorf("expected INVALID_FIXTURE, got %v", err)
	}
}

func TestVisualize_DOTToStdout(t *testing.T) {
	out, err := runCommand(t, "visualize", "(7 0 6 5 2) (4 3) (1)")
	if err != nil {
		t.Fatalf("visualize error = %v", err)
	}
	if !strings.HasPrefix(out, "graph conflicts {") {
		t.Errorf("expected DOT output, got:\n%s", out)
	}
	if !strings.Contains(out, `"2->7"`) {
		t.Errorf("DOT output missing transfer node:\n%s", out)
	}
}

func TestVisualize_UnknownFormat(t *testing.T) {
	_, err := runCommand(t, "visualize", "-f", "gif", "(0 1)")
	if errors.GetCode(err) != errors.ErrCodeInvalidSyntax {
		t.Errorf("expected INVALID_SYNTAX, got %v", err)
	}
}

func TestVisualize_SVGRequiresOutput(t *testing.T) {
	_, err := runCommand(t, "visualize", "-f", "svg", "(0 1)")
	if err == nil {
		t.Fatal("expected an error for svg without --output")
	}
}

func TestVisualize_SVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.svg")
	_, err := runCommand(t, "visualize", "-f", "svg", "-o", path, "(0 1)")
	if err != nil {
		t.Fatalf("visualize error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output file is not SVG")
	}
}

func TestFixtures_ListsBuiltins(t *testing.T) {
	out, err := runCommand(t, "fixtures")
	if err != nil {
		t.Fatalf("fixtures error = %v", err)
	}
	for _, name := range []string{"pi1", "pi2", "pi3", "pi4", "pi5"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing fixture %s:\n%s", name, out)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{formatDOT, formatSVG, formatPNG} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) = %v", format, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("validateFormat(\"pdf\") should fail")
	}
}
