// Package perm models permutations of the 8 network addresses and parses
// the cycle-notation text form.
//
// A permutation is built from disjoint cycles of addresses; any address
// absent from every cycle is an implicit fixed point. Construction
// validates that the result is a bijection over the full address space and
// reports structured errors (see pkg/errors) otherwise.
//
// The text form accepted by [Parse] is a sequence of parenthesized cycles,
// e.g. "(7 0 6 5 2) (4 3) (1)". Parsing is grammar-driven (participle), so
// malformed input fails with a positioned syntax error rather than a
// silent partial match.
//
// Permutations are immutable once constructed.
package perm
