package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/omeganet/pkg/network"
	"github.com/matzehuels/omeganet/pkg/perm"
	"github.com/matzehuels/omeganet/pkg/schedule"
)

// Cycle describes one conflict-free transfer cycle: the transmissions it
// carries and the full switch-setting grid, including unused switches.
type Cycle struct {
	Number    int // 1-based, ascending slot order
	Transfers []perm.Transfer
	Grid      [network.Stages][network.Switches]network.Setting
}

// Report is the complete analysis result for one permutation.
type Report struct {
	Expression    string // the expression as supplied by the caller
	Blocking      bool
	MinimumCycles int
	Cycles        []Cycle
}

// Status returns the report status line value.
func (r Report) Status() string {
	if r.Blocking {
		return "BLOCKING"
	}
	return "NON-BLOCKING"
}

// Build assembles the report for a scheduled permutation. The identity
// permutation produces a single cycle with no transmissions and an
// all-Unused grid, so the grid shape is stable across reports.
func Build(expr string, s schedule.Schedule) (Report, error) {
	r := Report{
		Expression:    expr,
		Blocking:      s.Blocking(),
		MinimumCycles: s.MinimumCycles(),
	}

	for c := 0; c < r.MinimumCycles; c++ {
		grid, err := s.Grid(c)
		if err != nil {
			return Report{}, err
		}
		r.Cycles = append(r.Cycles, Cycle{
			Number:    c + 1,
			Transfers: s.InSlot(c),
			Grid:      grid,
		})
	}
	return r, nil
}

// WriteText writes the canonical text form of the report to w.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Permutation: %s\n", r.Expression)
	fmt.Fprintf(&b, "Status: %s\n", r.Status())
	fmt.Fprintf(&b, "Minimum Cycles: %d\n", r.MinimumCycles)

	for _, c := range r.Cycles {
		fmt.Fprintf(&b, "Cycle %d:\n", c.Number)
		fmt.Fprintf(&b, "  Transmissions: %s\n", formatTransfers(c.Transfers))
		for stage := 0; stage < network.Stages; stage++ {
			symbols := make([]string, network.Switches)
			for sw := 0; sw < network.Switches; sw++ {
				symbols[sw] = c.Grid[stage][sw].Symbol()
			}
			fmt.Fprintf(&b, "  Stage %d: %s\n", stage, strings.Join(symbols, " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the canonical text form of the report.
func (r Report) String() string {
	var b strings.Builder
	r.WriteText(&b) // strings.Builder never fails
	return b.String()
}

func formatTransfers(ts []perm.Transfer) string {
	if len(ts) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
