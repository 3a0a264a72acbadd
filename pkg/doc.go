// Package pkg provides the core libraries for omega-network blocking analysis.
//
// # Overview
//
// Omeganet decides whether a permutation of eight network addresses can be
// realized by a three-stage omega interconnection network in a single pass,
// and when it cannot, computes the minimum number of conflict-free transfer
// cycles. The pkg directory is organized into five areas:
//
//  1. [perm] - Cycle-notation parsing and permutation semantics
//  2. [network] - Omega topology constants and destination-tag routing
//  3. [schedule] - Conflict detection and minimum cycle scheduling
//  4. [report] - Text reports and Graphviz conflict-graph rendering
//  5. [pipeline] - Orchestration (parse → route → schedule → report)
//
// # Architecture
//
// The typical data flow through omeganet:
//
//	Cycle-notation expression
//	         ↓
//	    [perm] package (parse + validate bijection)
//	         ↓
//	    [network] package (route each transfer, record switch settings)
//	         ↓
//	    [schedule] package (conflict graph + minimum coloring)
//	         ↓
//	    [report] package (text report, DOT/SVG/PNG output)
//
// # Quick Start
//
// Analyze a permutation end to end:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/omeganet/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	res, err := runner.Evaluate(context.Background(), "(7 0 6 5 2) (4 3) (1)")
//	if err != nil {
//	    // malformed expression or invalid address mapping
//	}
//	fmt.Print(res.Report.String())
//
// Or drive the stages directly:
//
//	p, _ := perm.Parse("(0 1)")
//	g := schedule.BuildConflictGraph(p.Transfers())
//	s := schedule.Minimum(g)
//	rep, _ := report.Build("(0 1)", s)
//
// # Supporting Packages
//
// [errors] - Structured error codes shared by the CLI and libraries.
//
// [buildinfo] - Version metadata injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/schedule/...   # Specific package
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/perm
// [network]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/network
// [schedule]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/schedule
// [report]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/omeganet/pkg/buildinfo
package pkg
