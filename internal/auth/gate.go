package auth

import (
	"context"
	"log/slog"
	"sync"

	"kosboard/internal/models"
)

// ProfileStore defines the profile persistence the gate needs.
type ProfileStore interface {
	EnsureProfile(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// Gate resolves an authenticated user to an authorization level and caches
// the answer until the next auth event for that user. It is the single source
// of truth the services consult before a gated mutation.
//
// Resolution is fail-closed: any profile error answers non-admin rather than
// surfacing an indeterminate state.
type Gate struct {
	store ProfileStore

	mu     sync.RWMutex
	admins map[string]bool
}

// NewGate creates a Gate backed by the given profile store.
func NewGate(store ProfileStore) *Gate {
	return &Gate{
		store:  store,
		admins: make(map[string]bool),
	}
}

// Resolve reports whether the user is an admin.
//
// On the first call after an auth event it ensures the profile row exists
// (create-if-absent; an existing admin flag is never overwritten) and then
// fetches the flag. Subsequent calls answer from the cache. An empty userID
// is always non-admin.
func (g *Gate) Resolve(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	g.mu.RLock()
	isAdmin, ok := g.admins[userID]
	g.mu.RUnlock()
	if ok {
		return isAdmin
	}

	if err := g.store.EnsureProfile(ctx, userID); err != nil {
		slog.Warn("profile ensure failed, resolving non-admin", "user_id", userID, "error", err)
		return false
	}

	profile, err := g.store.GetProfile(ctx, userID)
	if err != nil {
		slog.Warn("profile lookup failed, resolving non-admin", "user_id", userID, "error", err)
		return false
	}

	// Failures above are not cached so a later call can recover.
	g.mu.Lock()
	g.admins[userID] = profile.IsAdmin
	g.mu.Unlock()

	return profile.IsAdmin
}

// Forget drops the cached level for a user. Called on sign-out so the next
// sign-in re-runs the ensure-and-fetch sequence.
func (g *Gate) Forget(userID string) {
	g.mu.Lock()
	delete(g.admins, userID)
	g.mu.Unlock()
}
