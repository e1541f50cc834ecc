package server

import "net/http"

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.summary.BuildDashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
