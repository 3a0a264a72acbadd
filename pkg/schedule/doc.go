// Package schedule decides how many conflict-free transfer slots a
// permutation needs and assigns each transfer to one.
//
// Two transfers conflict when some stage routes both through the same
// switch with differing settings; a shared switch with an agreed setting
// serves both inputs at once and is not a conflict. The conflict relation
// forms an undirected graph over the transfers, and the minimum number of
// transfer slots is exactly its chromatic number.
//
// The slot count must be the true minimum, not an upper bound, so
// [Minimum] runs an exhaustive backtracking search over candidate slot
// counts k = 1, 2, ... with a deterministic node and color order. The
// search is exponential in the worst case but the graph never has more
// than Size-1 nodes, which keeps it trivially tractable.
//
// The permutation-notation sense of "cycle" lives in pkg/perm; this
// package deliberately says "slot" for the scheduling sense. Reports
// translate slots back into the user-facing "Cycle n" wording.
package schedule
