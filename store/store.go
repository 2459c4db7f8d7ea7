package store

import (
	"context"
	"errors"
	"time"

	"github.com/retentionlab/knapsack/knapsack"
)

// ErrNotFound is returned when a lookup finds no matching record.
var ErrNotFound = errors.New("store: not found")

// PredictionRecord is one saved attrition prediction, mirroring the
// "predictions" table save_prediction/get_predictions manage.
type PredictionRecord struct {
	ID          int64
	EmployeeID  int64
	Probability float64
	RiskLevel   string
	PredictedAt time.Time
}

// SolveRecord is one saved knapsack.Result, persisted to a "solves" table
// that has no Python-side analogue — the original client never persisted
// optimizer output, only predictions — added here because a cloud-database
// client that can't save the core's own output would be an odd omission in
// a complete port.
type SolveRecord struct {
	ID          int64
	Status      string
	TotalCost   float64
	TotalValue  float64
	SelectedIDs []int64
	SolvedAt    time.Time
}

// Store is the persistence boundary the httpapi and cmd layers depend on.
type Store interface {
	// SaveResult persists res and returns the new record's id.
	SaveResult(ctx context.Context, res knapsack.Result) (int64, error)

	// SavePrediction persists one attrition prediction and returns the new
	// record's id.
	SavePrediction(ctx context.Context, employeeID int64, probability float64, riskLevel string) (int64, error)

	// ListPredictions returns up to limit predictions, most recent first,
	// optionally filtered by riskLevel ("" means no filter).
	ListPredictions(ctx context.Context, riskLevel string, limit int) ([]PredictionRecord, error)

	// LatestSolve returns the most recently saved SolveRecord, or
	// ErrNotFound if none has been saved yet.
	LatestSolve(ctx context.Context) (SolveRecord, error)

	Close()
}
