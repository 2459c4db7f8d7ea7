package knapsack

// bound computes the continuous (fractional) relaxation upper bound on the
// total value reachable from node, given that inst.Items() is in canonical
// (efficiency-descending) order.
//
// Algorithm: start from node's accumulated value and residual budget, then
// walk the canonical item sequence starting at node's level. For each item
// that fits entirely in the residual budget, take it whole; for the first
// item that doesn't fit, take the fraction of it the residual budget allows
// and stop — this is the classical greedy solution to the fractional
// relaxation, valid because items are visited in efficiency order.
//
// Contract: for every feasible descendant of node, descendant's total value
// is <= bound(node). When node is already infeasible (residual budget < 0),
// bound is still computed (as 0 extra value, since no item fits a negative
// residual) but the caller must prune the node before expanding it.
//
// Complexity: O(n - level).
func bound(inst *Instance, level int, totalCost, totalValue float64) float64 {
	b := totalValue
	remaining := inst.budget - totalCost
	if remaining < 0 {
		return b
	}

	items := inst.items
	for i := level; i < len(items); i++ {
		it := items[i]
		if it.cost <= remaining {
			b += it.value
			remaining -= it.cost
			continue
		}
		if it.cost > 0 {
			b += (remaining / it.cost) * it.value
		}
		break
	}

	return b
}
