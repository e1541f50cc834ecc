package service

import (
	"context"
	"log/slog"
	"time"

	"kosboard/internal/metrics"
	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// RosterService manages the weekly chore rotation.
//
// Roster mutations are deliberately NOT admin gated: any caller, signed in or
// not, may create and delete assignments. The ledgers are strict, the roster
// is community-editable. That asymmetry matches the observed behavior of the
// system this replaces and is kept as-is.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// CreateAssignment validates and persists one rotation entry.
//
// Validation fails fast, first violation wins: week number present, then
// scheduled date present and well-formed, then every requested assignee slot
// (1 to 3) filled with a non-empty name.
func (s *RosterService) CreateAssignment(ctx context.Context, weekNumber int, scheduledDate string, assignees []string, requestedSlots int) (*models.DutyAssignment, error) {
	if weekNumber <= 0 {
		return nil, validationErr("week_number", "must be set")
	}
	if scheduledDate == "" {
		return nil, validationErr("scheduled_date", "must be set")
	}
	if _, err := time.Parse("2006-01-02", scheduledDate); err != nil {
		return nil, validationErr("scheduled_date", "must be a YYYY-MM-DD date")
	}
	if requestedSlots < 1 || requestedSlots > models.MaxAssignees {
		return nil, validationErr("requested_slots", "must be between 1 and 3")
	}

	filled := make([]string, 0, requestedSlots)
	for _, name := range assignees {
		if name != "" {
			filled = append(filled, name)
		}
	}
	if len(filled) != requestedSlots {
		return nil, validationErr("assignees", "every requested slot must be filled")
	}

	assignment := &models.DutyAssignment{
		WeekNumber:    weekNumber,
		ScheduledDate: scheduledDate,
		Assignees:     filled,
	}
	if err := s.store.CreateAssignment(ctx, assignment); err != nil {
		metrics.LedgerMutations.WithLabelValues("duty_assignments", "error").Inc()
		slog.Error("CreateAssignment failed", "week_number", weekNumber, "error", err)
		return nil, err
	}

	metrics.LedgerMutations.WithLabelValues("duty_assignments", "ok").Inc()
	slog.Info("Assignment created",
		"assignment_id", assignment.ID,
		"week_number", weekNumber,
		"assignees", len(filled),
	)
	return assignment, nil
}

// RemoveAssignment deletes one rotation entry.
func (s *RosterService) RemoveAssignment(ctx context.Context, id string) error {
	if err := s.store.DeleteAssignment(ctx, id); err != nil {
		if err != storage.ErrNotFound {
			metrics.LedgerMutations.WithLabelValues("duty_assignments", "error").Inc()
			slog.Error("RemoveAssignment failed", "assignment_id", id, "error", err)
		}
		return err
	}

	metrics.LedgerMutations.WithLabelValues("duty_assignments", "ok").Inc()
	slog.Info("Assignment removed", "assignment_id", id)
	return nil
}

// ListAssignments returns the rotation ordered by week number ascending.
func (s *RosterService) ListAssignments(ctx context.Context) ([]models.DutyAssignment, error) {
	return s.store.ListAssignments(ctx)
}
