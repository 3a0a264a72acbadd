// Package report materializes analysis results into their user-facing
// forms: the deterministic text report and a Graphviz view of the
// conflict graph.
//
// The text report is byte-stable for a given input: transfer cycles are
// numbered in ascending slot order, transmissions are listed ascending by
// source, and each stage line prints the switch settings in switch-index
// order ("0" Straight, "1" Cross, "-" Unused).
//
// The Graphviz export renders transfers as nodes tinted by their assigned
// transfer cycle and conflicts as edges, using
// [github.com/goccy/go-graphviz] for in-process SVG and PNG output.
package report
