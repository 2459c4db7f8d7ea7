package knapsack

import (
	"context"
	"math/big"
	"time"
)

// bbEngine holds all search state for a single Solve call. Like the
// teacher's tsp.bbEngine, it exists to keep the hot loop's dependencies
// explicit and its state predictable; a bbEngine is owned exclusively by the
// Solve call that created it and is discarded when that call returns.
type bbEngine struct {
	inst *Instance
	opts Options

	front *frontier
	nextSeq uint64

	incumbent      *searchNode
	incumbentValue float64

	nodesExpanded    int
	prunedInfeasible int
	prunedBound      int
	maxDepth         int

	useDeadline bool
	deadline    time.Time
	steps       int
}

// deadlineExceeded performs a rare wall-clock check (every 4096 node
// events), the same sparse cadence the teacher's tsp.bbEngine uses to keep
// the check's overhead negligible relative to search work.
func (e *bbEngine) deadlineExceeded(ctx context.Context) bool {
	e.steps++
	if (e.steps & 4095) != 0 {
		return false
	}
	if ctx != nil {
		select {
		case <-ctx.Done():
			return true
		default:
		}
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return true
	}

	return false
}

// isInfeasible reports whether node's accumulated cost exceeds the budget.
func (e *bbEngine) isInfeasible(node *searchNode) bool {
	return node.totalCost > e.inst.budget
}

// shouldPruneBound reports whether node's bound cannot strictly improve the
// current incumbent value. The comparison is non-strict (per spec.md §4.3):
// a node whose bound merely ties the incumbent is pruned, since it cannot
// produce a strictly better solution.
func (e *bbEngine) shouldPruneBound(node *searchNode) bool {
	return node.bound <= e.incumbentValue+e.opts.Eps
}

// tryUpdateIncumbent replaces the incumbent if node is feasible and
// strictly better.
func (e *bbEngine) tryUpdateIncumbent(node *searchNode) {
	if node.totalCost <= e.inst.budget && node.totalValue > e.incumbentValue {
		e.incumbent = node
		e.incumbentValue = node.totalValue
	}
}

// makeRoot builds the root search node (level 0, nothing decided).
func (e *bbEngine) makeRoot() *searchNode {
	root := &searchNode{
		level:      0,
		included:   new(big.Int),
		totalCost:  0,
		totalValue: 0,
		seq:        e.nextSeq,
	}
	e.nextSeq++
	root.bound = bound(e.inst, root.level, root.totalCost, root.totalValue)

	return root
}

// expand produces node's two children: include the next item (level's
// canonical item), then exclude it. Children are generated lazily, here, at
// expansion time rather than at push time, so frontier memory tracks the
// live-node count rather than the full enumeration tree, per spec.md §4.5.
func (e *bbEngine) expand(node *searchNode) (include, exclude *searchNode) {
	it := e.inst.items[node.level]

	includedBits := new(big.Int).SetBit(node.included, node.level, 1)
	include = &searchNode{
		level:      node.level + 1,
		included:   includedBits,
		totalCost:  node.totalCost + it.cost,
		totalValue: node.totalValue + it.value,
		seq:        e.nextSeq,
	}
	e.nextSeq++
	include.bound = bound(e.inst, include.level, include.totalCost, include.totalValue)

	exclude = &searchNode{
		level:      node.level + 1,
		included:   node.included,
		totalCost:  node.totalCost,
		totalValue: node.totalValue,
		seq:        e.nextSeq,
	}
	e.nextSeq++
	exclude.bound = bound(e.inst, exclude.level, exclude.totalCost, exclude.totalValue)

	return include, exclude
}

// pushIfPromising applies both pruning predicates to child before inserting
// it into the frontier. This push-time check is an optional optimization
// (spec.md §9 open question): the authoritative check happens again when the
// node is popped, because incumbentValue may have risen while the node sat
// in the frontier.
func (e *bbEngine) pushIfPromising(child *searchNode) {
	if e.isInfeasible(child) {
		e.prunedInfeasible++

		return
	}
	if e.shouldPruneBound(child) {
		e.prunedBound++

		return
	}
	e.front.push(child)
}

// run drives the best-first search loop until the frontier empties or the
// deadline fires. It returns true if the deadline was exceeded.
func (e *bbEngine) run(ctx context.Context) (timedOut bool) {
	root := e.makeRoot()
	e.front.push(root)

	for !e.front.empty() {
		if e.deadlineExceeded(ctx) {
			return true
		}

		node := e.front.pop()
		if node.level > e.maxDepth {
			e.maxDepth = node.level
		}

		// Re-check both pruning predicates: incumbentValue may have
		// improved since this node was pushed, which is the entire reason
		// the bound prune is effective (spec.md §4.5).
		if e.isInfeasible(node) {
			e.prunedInfeasible++

			continue
		}
		if e.shouldPruneBound(node) {
			e.prunedBound++

			continue
		}

		if node.level == e.inst.N() {
			e.tryUpdateIncumbent(node)

			continue
		}

		e.nodesExpanded++
		include, exclude := e.expand(node)
		e.pushIfPromising(include)
		e.pushIfPromising(exclude)
	}

	return false
}

// Solve finds the optimal 0/1 knapsack assignment for inst using best-first
// branch and bound. ctx and a configured deadline (WithDeadline) are checked
// at a sparse, fixed cadence; if either fires before the search completes,
// Solve returns the current incumbent (or a zero-valued Result if none was
// found yet) with Status = StatusTimeout.
//
// Solve has no error return: inst is already validated by NewInstance, and
// there are no I/O or allocation failures this package treats as
// recoverable at this boundary.
func Solve(ctx context.Context, inst *Instance, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	e := &bbEngine{
		inst:  inst,
		opts:  cfg,
		front: newFrontier(),
	}
	if !cfg.Deadline.IsZero() {
		e.useDeadline = true
		e.deadline = cfg.Deadline
	}

	timedOut := e.run(ctx)
	elapsed := time.Since(start).Seconds()
	metrics := computeMetrics(e.nodesExpanded, e.prunedInfeasible, e.prunedBound, e.maxDepth, elapsed)

	if timedOut {
		return resultFromNode(inst, e.incumbent, StatusTimeout, metrics)
	}
	if e.incumbent == nil {
		return resultFromNode(inst, nil, StatusNoFeasibleSolution, metrics)
	}

	return resultFromNode(inst, e.incumbent, StatusOptimal, metrics)
}
