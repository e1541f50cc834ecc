package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"kosboard/internal/models"
)

type createAssignmentRequest struct {
	WeekNumber     int      `json:"week_number"`
	ScheduledDate  string   `json:"scheduled_date"`
	Assignees      []string `json:"assignees"`
	RequestedSlots int      `json:"requested_slots"`
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	assignment, err := s.roster.CreateAssignment(
		r.Context(), req.WeekNumber, req.ScheduledDate, req.Assignees, req.RequestedSlots,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (s *Server) handleRemoveAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.roster.RemoveAssignment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := s.roster.ListAssignments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if assignments == nil {
		assignments = []models.DutyAssignment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"assignments": assignments})
}
