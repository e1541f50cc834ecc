package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// ListMembers returns all members sorted by name ascending.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM members ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, id string) (*models.Member, error) {
	m := &models.Member{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM members WHERE id = ?",
		id,
	).Scan(&m.ID, &m.Name)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// CreateMember inserts a new member, generating an ID if unset.
func (s *SQLiteStore) CreateMember(ctx context.Context, m *models.Member) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, name) VALUES (?, ?)",
		m.ID, m.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}
