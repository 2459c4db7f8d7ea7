package httpapi

import "net/http"

// handleDashboardOverview backs the attrition dashboard: it returns the
// cached exploratory-analysis snapshot set via Server.SetEDA.
func (s *Server) handleDashboardOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentEDA())
}

// handleDashboardOptimization backs the optimization dashboard: it returns
// the most recently persisted solve Result, or 404 if none exists yet.
func (s *Server) handleDashboardOptimization(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "no store configured")
		return
	}

	latest, err := s.store.LatestSolve(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "no solve recorded yet")
		return
	}

	writeJSON(w, http.StatusOK, latest)
}
