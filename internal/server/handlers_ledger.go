package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"kosboard/internal/models"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.store.ListMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []models.Member{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

type recordContributionRequest struct {
	MemberID string `json:"member_id"`
	Amount   int64  `json:"amount"`
}

func (s *Server) handleRecordContribution(w http.ResponseWriter, r *http.Request) {
	var req recordContributionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := s.ledger.RecordContribution(r.Context(), s.actor(r), req.MemberID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleRemoveContribution(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.ledger.RemoveContribution(r.Context(), s.actor(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	records, err := s.ledger.ListContributions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	totals, err := s.ledger.TotalsByMember(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.Contribution{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records":          records,
		"totals_by_member": totals,
	})
}

type recordExpenseRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	var req recordExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := s.ledger.RecordExpense(r.Context(), s.actor(r), req.Description, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.ledger.RemoveExpense(r.Context(), s.actor(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	records, err := s.ledger.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	balance, err := s.ledger.Balance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"balance": balance,
	})
}
