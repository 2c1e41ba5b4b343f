// Package gai implements a decision procedure for the Group Assignment on
// Intervals problem: given a multiset of integer intervals on {1..n},
// decide whether it can be partitioned into groups such that every group
// of size g consists of g intervals that each contain the value g.
//
// The package is organized around a dynamic-programming table indexed by
// (i, s) — the group size most recently attempted (the pivot) and the
// total cardinality committed so far (the mass). Each cell holds the
// surviving residual IntervalMultisets that could reach it, pruned by a
// dominance relation so the table never carries two residuals where one is
// strictly no better than the other.
//
// Three solvers populate the same table: SolveBreadthFirst fills it
// bottom-up with backtracking into ancestor cells when a direct extension
// runs short; SolveDepthFirst descends a single chain of cells and
// short-circuits on the first solution; SolveParallel runs the
// breadth-first recurrence over a worker pool that respects the table's
// dependency structure.
//
// Only YES/NO is decided; no witnessing partition is constructed.
package gai
