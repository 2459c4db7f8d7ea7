// Package knapsack solves the 0/1 knapsack problem exactly with a best-first
// branch-and-bound search, and provides a greedy heuristic as a comparison
// baseline.
//
// Given a fixed budget and a list of candidate Items (each with a cost and a
// value), Solve finds the subset of items whose total cost does not exceed
// the budget and whose total value is maximal. The search explores partial
// assignments (SearchNodes) in best-first order, always expanding the live
// node with the largest upper bound next, and discards subtrees whose bound
// cannot beat the best feasible assignment found so far (the incumbent).
//
// Soundness:
//
//   - bound(node) is computed via the continuous (fractional) relaxation of
//     the knapsack over the canonical efficiency ordering; this is a valid
//     upper bound on the value of any feasible completion of node.
//   - A node is pruned only when it is infeasible (total cost exceeds the
//     budget) or when its bound cannot exceed the incumbent's value.
//   - Therefore the value of the returned incumbent equals the optimal value
//     of the 0/1 knapsack instance.
//
// Complexity:
//
//   - Time:  O(2^n) worst case, O(n) bound work per node. Pruning reduces
//     this drastically on well-conditioned instances.
//   - Space: proportional to the peak size of the live frontier, not the
//     size of the full enumeration tree — children are generated lazily at
//     expansion time.
//
// Determinism:
//
//   - Given the same Instance and Options, three consecutive calls to Solve
//     return identical Results, including every counter in Metrics. This
//     follows from the canonical item ordering fixed by NewInstance, the
//     frontier's (bound, sequence) tie-break, and the include-before-exclude
//     child insertion order.
//
// This package never logs and performs no I/O; it is a pure computation
// library, consumed by the cmd/knapsackctl CLI and the httpapi server.
package knapsack
