// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"kosboard/internal/models"
)

// ErrNotFound is returned when a mutation or lookup targets a row that does
// not exist (or is already gone).
var ErrNotFound = errors.New("record not found")

// Store defines the interface for household data storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListMembers returns all members sorted by name ascending.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// GetMember retrieves a member by ID. Returns ErrNotFound if absent.
	GetMember(ctx context.Context, id string) (*models.Member, error)

	// CreateMember persists a new member. The ID is populated by the store
	// if empty. Only the operator CLI calls this; the service treats the
	// member directory as read-only.
	CreateMember(ctx context.Context, m *models.Member) error

	// CreateContribution appends one contribution record.
	// ID and CreatedAt are populated by the store if unset.
	CreateContribution(ctx context.Context, c *models.Contribution) error

	// DeleteContribution removes one record. Returns ErrNotFound if the
	// record is already gone.
	DeleteContribution(ctx context.Context, id string) error

	// ListContributions returns all contribution records, newest first.
	ListContributions(ctx context.Context) ([]models.Contribution, error)

	// CreateExpense appends one expense record.
	CreateExpense(ctx context.Context, e *models.Expense) error

	// DeleteExpense removes one record. Returns ErrNotFound if absent.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpenses returns all expense records, newest first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// CreateAssignment persists a duty assignment.
	CreateAssignment(ctx context.Context, a *models.DutyAssignment) error

	// DeleteAssignment removes an assignment. Returns ErrNotFound if absent.
	DeleteAssignment(ctx context.Context, id string) error

	// ListAssignments returns all assignments ordered by week number ascending.
	ListAssignments(ctx context.Context) ([]models.DutyAssignment, error)

	// CreateUser inserts a new login account.
	CreateUser(ctx context.Context, u *models.User) error

	// GetUserByEmail retrieves a user by email. Returns nil, nil if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns nil, nil if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// EnsureProfile creates the profile row for a user if it does not exist.
	// It never overwrites an existing admin flag and is safe to call
	// concurrently for the same user.
	EnsureProfile(ctx context.Context, userID string) error

	// GetProfile retrieves a user's profile. Returns ErrNotFound if absent.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// SetAdmin sets the admin flag on an existing profile, creating the row
	// first if needed. Only the operator CLI calls this.
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error

	// Close releases any resources held by the store.
	Close() error
}
