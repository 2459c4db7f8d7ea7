package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/retentionlab/knapsack/knapsack"
)

// itemDTO is the wire shape of one knapsack item in a solve/greedy request.
type itemDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// solveRequest is the POST /v1/solve and POST /v1/greedy request body.
type solveRequest struct {
	Items          []itemDTO `json:"items"`
	Budget         float64   `json:"budget"`
	DeadlineMillis int64     `json:"deadline_millis,omitempty"`
}

func buildInstance(req solveRequest) (*knapsack.Instance, error) {
	items := make([]knapsack.Item, 0, len(req.Items))
	for _, d := range req.Items {
		items = append(items, knapsack.NewItem(d.ID, d.Name, d.Cost, d.Value, d.Category))
	}

	return knapsack.NewInstance(items, req.Budget)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := buildInstance(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	var opts []knapsack.Option
	if req.DeadlineMillis > 0 {
		ctx2, cancel := context.WithTimeout(ctx, time.Duration(req.DeadlineMillis)*time.Millisecond)
		defer cancel()
		ctx = ctx2
		opts = append(opts, knapsack.WithDeadline(time.Now().Add(time.Duration(req.DeadlineMillis)*time.Millisecond)))
	}

	result := knapsack.Solve(ctx, inst, opts...)
	s.metrics.observeSolve(result)

	if s.store != nil {
		if _, err := s.store.SaveResult(r.Context(), result); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist solve result")
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGreedy(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := buildInstance(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := knapsack.Greedy(inst)
	writeJSON(w, http.StatusOK, result)
}
