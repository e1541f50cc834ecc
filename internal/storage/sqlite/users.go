package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

// CreateUser inserts a new login account.
func (s *SQLiteStore) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?",
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// EnsureProfile creates the profile row for a user if it does not exist.
// INSERT OR IGNORE keeps the call idempotent: concurrent calls for the same
// user race harmlessly and an existing is_admin value is never touched.
func (s *SQLiteStore) EnsureProfile(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO auth_profiles (user_id, is_admin) VALUES (?, 0)",
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a user's profile.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p := &models.Profile{}
	var isAdmin int
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, is_admin FROM auth_profiles WHERE user_id = ?",
		userID,
	).Scan(&p.UserID, &isAdmin)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.IsAdmin = isAdmin != 0

	return p, nil
}

// SetAdmin sets the admin flag on a profile, creating the row first if needed.
func (s *SQLiteStore) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	if err := s.EnsureProfile(ctx, userID); err != nil {
		return err
	}

	flag := 0
	if isAdmin {
		flag = 1
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE auth_profiles SET is_admin = ? WHERE user_id = ?",
		flag, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}

	return nil
}
