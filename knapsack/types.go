package knapsack

import (
	"errors"
	"sort"
	"time"
)

// Sentinel errors returned by NewInstance. None of them are ever raised as
// panics; an invalid Instance is never partially constructed.
var (
	// ErrEmptyItems indicates that the item list passed to NewInstance was
	// empty.
	ErrEmptyItems = errors.New("knapsack: item list is empty")

	// ErrInvalidBudget indicates that the budget passed to NewInstance was
	// not strictly positive.
	ErrInvalidBudget = errors.New("knapsack: budget must be positive")

	// ErrNegativeCost indicates that an item's cost was negative.
	ErrNegativeCost = errors.New("knapsack: item cost must be non-negative")

	// ErrNegativeValue indicates that an item's value was negative.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrDuplicateID indicates that two items in the same Instance share an id.
	ErrDuplicateID = errors.New("knapsack: duplicate item id")
)

// Item is an immutable candidate for inclusion in a knapsack instance.
//
// Efficiency is derived once at construction (value/cost, or 0 when cost is
// zero) and never recomputed; Item has no exported mutator methods.
type Item struct {
	id         int64
	name       string
	cost       float64
	value      float64
	category   string
	efficiency float64
}

// NewItem builds an Item, deriving Efficiency = Value/Cost (0 when Cost==0).
//
// NewItem itself does not reject negative cost/value; that validation is
// deferred to NewInstance so a caller assembling items incrementally isn't
// forced to pre-validate each one in isolation.
func NewItem(id int64, name string, cost, value float64, category string) Item {
	var efficiency float64
	if cost > 0 {
		efficiency = value / cost
	}

	return Item{
		id:         id,
		name:       name,
		cost:       cost,
		value:      value,
		category:   category,
		efficiency: efficiency,
	}
}

// ID returns the item's identifier.
func (it Item) ID() int64 { return it.id }

// Name returns the item's human-readable label.
func (it Item) Name() string { return it.name }

// Cost returns the item's cost.
func (it Item) Cost() float64 { return it.cost }

// Value returns the item's value (the quantity Solve maximizes).
func (it Item) Value() float64 { return it.value }

// Category returns the item's opaque category tag.
func (it Item) Category() string { return it.category }

// Efficiency returns Value/Cost, or 0 when Cost is 0.
func (it Item) Efficiency() float64 { return it.efficiency }

// Instance is a finite set of Items plus a positive budget. Construction
// rejects empty item lists, non-positive budgets, negative costs/values, and
// duplicate ids. Items are stored in canonical order: efficiency descending,
// id ascending on ties. This ordering is a precondition for bound's
// soundness (§4.2 of the design), so it is enforced once, here, rather than
// at every call site that needs it.
type Instance struct {
	items  []Item
	budget float64
}

// NewInstance validates items and budget and returns an Instance with items
// placed in canonical order. The caller's original ordering is not
// preserved; callers needing it must keep their own copy.
func NewInstance(items []Item, budget float64) (*Instance, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if budget <= 0 {
		return nil, ErrInvalidBudget
	}

	seen := make(map[int64]struct{}, len(items))
	sorted := make([]Item, len(items))
	copy(sorted, items)
	for _, it := range sorted {
		if it.cost < 0 {
			return nil, ErrNegativeCost
		}
		if it.value < 0 {
			return nil, ErrNegativeValue
		}
		if _, dup := seen[it.id]; dup {
			return nil, ErrDuplicateID
		}
		seen[it.id] = struct{}{}
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].efficiency != sorted[j].efficiency {
			return sorted[i].efficiency > sorted[j].efficiency
		}

		return sorted[i].id < sorted[j].id
	})

	return &Instance{items: sorted, budget: budget}, nil
}

// Items returns the Instance's items in canonical order (efficiency
// descending, id ascending on ties). The index of an item in this slice is
// its level index, used by searchNode.level and bound.
func (inst *Instance) Items() []Item { return inst.items }

// Budget returns the Instance's budget.
func (inst *Instance) Budget() float64 { return inst.budget }

// N returns the number of items in the Instance.
func (inst *Instance) N() int { return len(inst.items) }

// Options configures Solve. The zero value selects a search with no
// deadline. Use functional options to override individual fields.
type Options struct {
	// Deadline, if non-zero, bounds wall-clock time for Solve. If the
	// deadline elapses before the frontier is empty, Solve returns the
	// current incumbent with Status = StatusTimeout.
	Deadline time.Time

	// Eps tolerates floating-point drift when comparing a node's bound to
	// the incumbent value, avoiding spurious non-pruning on ties that are
	// only apart by rounding error.
	Eps float64
}

// DefaultOptions returns Options with no deadline and Eps = 1e-9, matching
// the tolerance the design calls for when comparing bound to incumbent
// value.
func DefaultOptions() Options {
	return Options{Eps: 1e-9}
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithDeadline bounds Solve's wall-clock budget. Solve checks the deadline
// at a sparse, fixed cadence (every 4096 nodes taken from the frontier) to keep overhead
// negligible, the same cadence the teacher's branch-and-bound engine uses.
func WithDeadline(d time.Time) Option {
	return func(o *Options) {
		o.Deadline = d
	}
}

// WithEps overrides the epsilon used when comparing bound to incumbent
// value. Must be non-negative; negative values are clamped to 0.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			eps = 0
		}
		o.Eps = eps
	}
}
