package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// CreateAssignment persists a duty assignment, generating an ID if unset.
// Assignees are spread across the three slot columns; unused slots stay NULL.
func (s *SQLiteStore) CreateAssignment(ctx context.Context, a *models.DutyAssignment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	var slots [models.MaxAssignees]sql.NullString
	for i, name := range a.Assignees {
		if i >= models.MaxAssignees {
			break
		}
		if name != "" {
			slots[i] = sql.NullString{String: name, Valid: true}
		}
	}

	var date sql.NullString
	if a.ScheduledDate != "" {
		date = sql.NullString{String: a.ScheduledDate, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO duty_assignments (id, week_number, scheduled_date, assignee_1, assignee_2, assignee_3) VALUES (?, ?, ?, ?, ?, ?)",
		a.ID, a.WeekNumber, date, slots[0], slots[1], slots[2],
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	return nil
}

// DeleteAssignment removes a duty assignment.
func (s *SQLiteStore) DeleteAssignment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM duty_assignments WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
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

// ListAssignments returns all assignments ordered by week number ascending.
func (s *SQLiteStore) ListAssignments(ctx context.Context) ([]models.DutyAssignment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, week_number, scheduled_date, assignee_1, assignee_2, assignee_3 FROM duty_assignments ORDER BY week_number",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.DutyAssignment
	for rows.Next() {
		var (
			a     models.DutyAssignment
			date  sql.NullString
			slots [models.MaxAssignees]sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.WeekNumber, &date, &slots[0], &slots[1], &slots[2]); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.ScheduledDate = date.String
		for _, slot := range slots {
			if slot.Valid && slot.String != "" {
				a.Assignees = append(a.Assignees, slot.String)
			}
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}
