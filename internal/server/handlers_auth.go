package server

import (
	"log/slog"
	"net/http"

	"kosboard/internal/metrics"
	"kosboard/internal/middleware"
	"kosboard/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token,omitempty"`
}

// handleLogin authenticates a user and opens a session. Credential rejections
// are surfaced verbatim; a fresh sign-in re-runs the profile ensure-and-fetch
// sequence through the gate.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, &service.ValidationError{Field: "credentials", Reason: "email and password are required"})
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		slog.Warn("Login failed", "email", req.Email)
		writeError(w, err)
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	// Sign-in is an auth event: drop any stale cached level first.
	s.gate.Forget(user.ID)
	isAdmin := s.gate.Resolve(r.Context(), user.ID)

	metrics.Logins.WithLabelValues("ok").Inc()
	slog.Info("User logged in", "user_id", user.ID, "is_admin", isAdmin)
	writeJSON(w, http.StatusOK, sessionResponse{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: isAdmin,
		Token:   token,
	})
}

// handleSession restores a session from a valid token, mirroring the
// on-load session restore of the dashboard.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	writeJSON(w, http.StatusOK, sessionResponse{
		UserID:  userID,
		Email:   middleware.GetEmail(r.Context()),
		IsAdmin: s.gate.Resolve(r.Context(), userID),
	})
}

// handleLogout closes the session. JWTs stay valid until expiry; what matters
// here is dropping the cached authorization level.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	s.gate.Forget(userID)
	slog.Info("User logged out", "user_id", userID)
	writeJSON(w, http.StatusNoContent, nil)
}
