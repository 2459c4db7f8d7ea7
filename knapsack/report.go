package knapsack

// Status tags the outcome of a Solve or Greedy call. Idiomatic Go has no
// tagged-union type, so Status is carried alongside Result's other fields
// rather than wrapping them in a sum type.
type Status string

const (
	// StatusOptimal indicates Solve found and proved the optimal assignment.
	StatusOptimal Status = "optimal"

	// StatusNoFeasibleSolution indicates no subset of items fits the budget
	// (not even the single cheapest item).
	StatusNoFeasibleSolution Status = "no_feasible_solution"

	// StatusTimeout indicates a caller-supplied deadline elapsed before the
	// frontier emptied; Result carries the best incumbent found so far, or
	// a zero-valued solution if none was found yet.
	StatusTimeout Status = "timeout"

	// StatusHeuristic tags a Result produced by Greedy, never by Solve.
	StatusHeuristic Status = "heuristic"
)

// Metrics reports counters accumulated during a single Solve call. A Greedy
// Result carries a zero-valued Metrics (Greedy does no search).
type Metrics struct {
	NodesExpanded             int
	PrunedInfeasible          int
	PrunedBound               int
	PrunedTotal               int
	MaxDepth                  int
	ElapsedSeconds            float64
	PruningEfficiencyFraction float64
}

// Result is the structured outcome of Solve or Greedy.
type Result struct {
	Status Status

	// SelectedIDs holds the ids of the chosen items, in ascending
	// canonical-order (level-index) order. Empty (not nil) when Status is
	// StatusNoFeasibleSolution.
	SelectedIDs []int64

	TotalCost          float64
	TotalValue         float64
	BudgetUsedFraction float64
	NSelected          int

	Metrics Metrics
}

// computeMetrics derives PrunedTotal and PruningEfficiencyFraction from the
// raw counters, per the §4.7 formula: pruning_efficiency = pruned_total /
// (pruned_total + nodes_expanded), defined as 0 when the denominator is 0.
func computeMetrics(nodesExpanded, prunedInfeasible, prunedBound, maxDepth int, elapsed float64) Metrics {
	prunedTotal := prunedInfeasible + prunedBound
	denom := prunedTotal + nodesExpanded
	var efficiency float64
	if denom > 0 {
		efficiency = float64(prunedTotal) / float64(denom)
	}

	return Metrics{
		NodesExpanded:             nodesExpanded,
		PrunedInfeasible:          prunedInfeasible,
		PrunedBound:               prunedBound,
		PrunedTotal:               prunedTotal,
		MaxDepth:                  maxDepth,
		ElapsedSeconds:            elapsed,
		PruningEfficiencyFraction: efficiency,
	}
}

// resultFromNode builds a Result in StatusOptimal/StatusTimeout shape from a
// feasible incumbent node (or nil, for "no incumbent found yet").
func resultFromNode(inst *Instance, node *searchNode, status Status, metrics Metrics) Result {
	if node == nil {
		return Result{Status: status, SelectedIDs: []int64{}, Metrics: metrics}
	}

	ids := node.selectedIDs(inst)

	return Result{
		Status:             status,
		SelectedIDs:        ids,
		TotalCost:          node.totalCost,
		TotalValue:         node.totalValue,
		BudgetUsedFraction: node.totalCost / inst.budget,
		NSelected:          len(ids),
		Metrics:            metrics,
	}
}
