// Package assignment solves the rectangular linear sum assignment
// problem: given an m×n cost matrix, pick min(m, n) entries with no two
// sharing a row or column, minimizing their sum.
//
// Solve implements the shortest-augmenting-path method with dual
// potentials (the algorithm behind the classic Jonker–Volgenant solver):
// rows are assigned one at a time by a Dijkstra-like scan over columns in
// the reduced-cost graph, followed by a dual update and an augmentation
// along the found path. Entries equal to +Inf mark forbidden pairs; a
// problem where some row cannot reach any free column fails with
// ErrInfeasible.
//
// The matching package uses this solver for minimum-weight full bipartite
// matchings; it has no graph dependencies and can be used standalone.
//
// # Errors
//
//	ErrRaggedMatrix - rows of the cost matrix differ in length.
//	ErrInvalidEntry - a cost is NaN or -Inf.
//	ErrInfeasible   - no assignment of size min(m, n) exists.
package assignment
