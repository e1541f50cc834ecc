package service

import (
	"context"
	"log/slog"

	"kosboard/internal/calculator"
	"kosboard/internal/metrics"
	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// LedgerService owns both sides of the house ledger: dues contributions
// coming in and expenses going out. The two flows share the same admin gate
// and the same append/delete lifecycle, so they live in one service rather
// than two copies of it.
//
// Mutations are fire-and-confirm: the write goes to the store, and callers
// re-read after the store acknowledges. Nothing is retried; a failure is
// terminal for that action.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

func requireAdmin(actor Actor) error {
	if !actor.Admin {
		return ErrNotAdmin
	}
	return nil
}

// RecordContribution appends one dues payment for a member.
// Requires an admin actor, a positive amount, and a known member.
func (s *LedgerService) RecordContribution(ctx context.Context, actor Actor, memberID string, amount int64) (*models.Contribution, error) {
	if err := requireAdmin(actor); err != nil {
		metrics.LedgerMutations.WithLabelValues("contributions", "denied").Inc()
		return nil, err
	}
	if amount <= 0 {
		return nil, validationErr("amount", "must be greater than 0")
	}

	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		if err == storage.ErrNotFound {
			return nil, validationErr("member_id", "unknown member")
		}
		return nil, err
	}

	record := &models.Contribution{
		MemberID:   member.ID,
		MemberName: member.Name,
		Amount:     amount,
	}
	if err := s.store.CreateContribution(ctx, record); err != nil {
		metrics.LedgerMutations.WithLabelValues("contributions", "error").Inc()
		slog.Error("RecordContribution failed", "member_id", memberID, "error", err)
		return nil, err
	}

	metrics.LedgerMutations.WithLabelValues("contributions", "ok").Inc()
	slog.Info("Contribution recorded",
		"record_id", record.ID,
		"member_id", member.ID,
		"amount", amount,
		"actor", actor.UserID,
	)
	return record, nil
}

// RemoveContribution deletes one dues payment. Requires an admin actor.
func (s *LedgerService) RemoveContribution(ctx context.Context, actor Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		metrics.LedgerMutations.WithLabelValues("contributions", "denied").Inc()
		return err
	}

	if err := s.store.DeleteContribution(ctx, id); err != nil {
		if err != storage.ErrNotFound {
			metrics.LedgerMutations.WithLabelValues("contributions", "error").Inc()
			slog.Error("RemoveContribution failed", "record_id", id, "error", err)
		}
		return err
	}

	metrics.LedgerMutations.WithLabelValues("contributions", "ok").Inc()
	slog.Info("Contribution removed", "record_id", id, "actor", actor.UserID)
	return nil
}

// ListContributions returns the payment history, newest first.
func (s *LedgerService) ListContributions(ctx context.Context) ([]models.Contribution, error) {
	return s.store.ListContributions(ctx)
}

// TotalsByMember sums contributions per member. Members with no records map to 0.
func (s *LedgerService) TotalsByMember(ctx context.Context) (map[string]int64, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListContributions(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.TotalsByMember(members, records), nil
}

// RecordExpense appends one outgoing payment. Requires an admin actor, a
// non-empty description and a positive amount.
func (s *LedgerService) RecordExpense(ctx context.Context, actor Actor, description string, amount int64) (*models.Expense, error) {
	if err := requireAdmin(actor); err != nil {
		metrics.LedgerMutations.WithLabelValues("expenses", "denied").Inc()
		return nil, err
	}
	if description == "" {
		return nil, validationErr("description", "must not be empty")
	}
	if amount <= 0 {
		return nil, validationErr("amount", "must be greater than 0")
	}

	record := &models.Expense{
		Description: description,
		Amount:      amount,
	}
	if err := s.store.CreateExpense(ctx, record); err != nil {
		metrics.LedgerMutations.WithLabelValues("expenses", "error").Inc()
		slog.Error("RecordExpense failed", "error", err)
		return nil, err
	}

	metrics.LedgerMutations.WithLabelValues("expenses", "ok").Inc()
	slog.Info("Expense recorded",
		"record_id", record.ID,
		"amount", amount,
		"actor", actor.UserID,
	)
	return record, nil
}

// RemoveExpense deletes one outgoing payment. Requires an admin actor.
func (s *LedgerService) RemoveExpense(ctx context.Context, actor Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		metrics.LedgerMutations.WithLabelValues("expenses", "denied").Inc()
		return err
	}

	if err := s.store.DeleteExpense(ctx, id); err != nil {
		if err != storage.ErrNotFound {
			metrics.LedgerMutations.WithLabelValues("expenses", "error").Inc()
			slog.Error("RemoveExpense failed", "record_id", id, "error", err)
		}
		return err
	}

	metrics.LedgerMutations.WithLabelValues("expenses", "ok").Inc()
	slog.Info("Expense removed", "record_id", id, "actor", actor.UserID)
	return nil
}

// ListExpenses returns the expense history, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// TotalExpenses sums all outgoing payments.
func (s *LedgerService) TotalExpenses(ctx context.Context) (int64, error) {
	records, err := s.store.ListExpenses(ctx)
	if err != nil {
		return 0, err
	}
	return calculator.TotalExpenses(records), nil
}

// Balance is total contributions minus total expenses. May be negative.
func (s *LedgerService) Balance(ctx context.Context) (int64, error) {
	contributions, err := s.store.ListContributions(ctx)
	if err != nil {
		return 0, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return 0, err
	}
	return calculator.Balance(contributions, expenses), nil
}
