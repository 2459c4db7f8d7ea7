package store

import (
	"context"
	"sync"
	"time"

	"github.com/retentionlab/knapsack/knapsack"
)

// MemoryStore is an in-memory Store, used by tests and by `knapsackctl serve`
// when no Postgres DSN is configured.
type MemoryStore struct {
	mu sync.Mutex

	predictions []PredictionRecord
	solves      []SolveRecord
	nextPredID  int64
	nextSolveID int64
}

// NewMemoryStore returns an empty MemoryStore ready for use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveResult(_ context.Context, res knapsack.Result) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSolveID++
	ids := make([]int64, len(res.SelectedIDs))
	copy(ids, res.SelectedIDs)

	s.solves = append(s.solves, SolveRecord{
		ID:          s.nextSolveID,
		Status:      string(res.Status),
		TotalCost:   res.TotalCost,
		TotalValue:  res.TotalValue,
		SelectedIDs: ids,
		SolvedAt:    time.Now(),
	})

	return s.nextSolveID, nil
}

func (s *MemoryStore) SavePrediction(_ context.Context, employeeID int64, probability float64, riskLevel string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPredID++
	s.predictions = append(s.predictions, PredictionRecord{
		ID:          s.nextPredID,
		EmployeeID:  employeeID,
		Probability: probability,
		RiskLevel:   riskLevel,
		PredictedAt: time.Now(),
	})

	return s.nextPredID, nil
}

func (s *MemoryStore) ListPredictions(_ context.Context, riskLevel string, limit int) ([]PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PredictionRecord, 0, limit)
	for i := len(s.predictions) - 1; i >= 0 && len(out) < limit; i-- {
		p := s.predictions[i]
		if riskLevel != "" && p.RiskLevel != riskLevel {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (s *MemoryStore) LatestSolve(_ context.Context) (SolveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.solves) == 0 {
		return SolveRecord{}, ErrNotFound
	}

	return s.solves[len(s.solves)-1], nil
}

func (s *MemoryStore) Close() {}
