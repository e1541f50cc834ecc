// Package server wires the services to the HTTP JSON API.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kosboard/internal/auth"
	"kosboard/internal/middleware"
	"kosboard/internal/service"
	"kosboard/internal/storage"
)

// Server holds the router and the services behind it.
type Server struct {
	router *mux.Router

	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	gate          *auth.Gate

	ledger  *service.LedgerService
	roster  *service.RosterService
	summary *service.SummaryService
}

// New builds a Server and registers all routes.
func New(
	store storage.Store,
	authenticator *auth.PasswordAuthenticator,
	jwtManager *auth.JWTManager,
	gate *auth.Gate,
	ledger *service.LedgerService,
	roster *service.RosterService,
	summary *service.SummaryService,
) *Server {
	s := &Server{
		router:        mux.NewRouter(),
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		gate:          gate,
		ledger:        ledger,
		roster:        roster,
		summary:       summary,
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(middleware.CORS)
	s.router.Use(middleware.Logging)

	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()

	// Auth surface.
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost, http.MethodOptions)

	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.RequireAuth(s.jwtManager))
	authed.HandleFunc("/auth/session", s.handleSession).Methods(http.MethodGet)
	authed.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	// Reads are public; the dashboard renders without signing in.
	api.HandleFunc("/members", s.handleListMembers).Methods(http.MethodGet)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/contributions", s.handleListContributions).Methods(http.MethodGet)
	api.HandleFunc("/expenses", s.handleListExpenses).Methods(http.MethodGet)
	api.HandleFunc("/roster", s.handleListAssignments).Methods(http.MethodGet)

	// Ledger mutations carry the caller's identity when present; the
	// services decide whether it is enough. Anonymous callers resolve to
	// non-admin and are rejected there.
	gated := api.NewRoute().Subrouter()
	gated.Use(middleware.OptionalAuth(s.jwtManager))
	gated.HandleFunc("/contributions", s.handleRecordContribution).Methods(http.MethodPost, http.MethodOptions)
	gated.HandleFunc("/contributions/{id}", s.handleRemoveContribution).Methods(http.MethodDelete, http.MethodOptions)
	gated.HandleFunc("/expenses", s.handleRecordExpense).Methods(http.MethodPost, http.MethodOptions)
	gated.HandleFunc("/expenses/{id}", s.handleRemoveExpense).Methods(http.MethodDelete, http.MethodOptions)

	// Roster mutations are intentionally ungated; see RosterService.
	api.HandleFunc("/roster", s.handleCreateAssignment).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/roster/{id}", s.handleRemoveAssignment).Methods(http.MethodDelete, http.MethodOptions)
}

// actor resolves the caller's identity and authorization level for this
// request. The gate caches the admin flag per user, so the profile lookup
// cost is paid once per session, not once per call.
func (s *Server) actor(r *http.Request) service.Actor {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		return service.Actor{}
	}
	return service.Actor{
		UserID: userID,
		Admin:  s.gate.Resolve(r.Context(), userID),
	}
}
