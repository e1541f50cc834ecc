package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// CreateExpense appends one expense record, generating ID and CreatedAt if unset.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, description, amount, created_at) VALUES (?, ?, ?, ?)",
		e.ID, e.Description, e.Amount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// DeleteExpense removes one expense record.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListExpenses returns all expense records, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, amount, created_at FROM expenses ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var records []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return records, nil
}
