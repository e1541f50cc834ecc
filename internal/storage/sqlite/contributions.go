package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// CreateContribution appends one contribution record, generating ID and
// CreatedAt if unset.
func (s *SQLiteStore) CreateContribution(ctx context.Context, c *models.Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contributions (id, member_id, member_name, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.MemberID, c.MemberName, c.Amount, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}

	return nil
}

// DeleteContribution removes one contribution record.
func (s *SQLiteStore) DeleteContribution(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM contributions WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
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

// ListContributions returns all contribution records, newest first.
func (s *SQLiteStore) ListContributions(ctx context.Context) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, member_name, amount, created_at FROM contributions ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var records []models.Contribution
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.MemberID, &c.MemberName, &c.Amount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return records, nil
}
