package knapsack

// Greedy runs the deterministic greedy heuristic: process items in
// efficiency-descending order (the Instance's canonical order) and include
// an item iff doing so keeps total cost within budget. It is strictly 0/1 —
// no fractional inclusion — and is not guaranteed to find the optimum; it
// exists purely as a comparison baseline for Solve (spec.md §4.6).
func Greedy(inst *Instance) Result {
	var totalCost, totalValue float64
	ids := make([]int64, 0, inst.N())

	for _, it := range inst.items {
		if totalCost+it.cost <= inst.budget {
			totalCost += it.cost
			totalValue += it.value
			ids = append(ids, it.id)
		}
	}

	return Result{
		Status:             StatusHeuristic,
		SelectedIDs:        ids,
		TotalCost:          totalCost,
		TotalValue:         totalValue,
		BudgetUsedFraction: totalCost / inst.budget,
		NSelected:          len(ids),
	}
}
