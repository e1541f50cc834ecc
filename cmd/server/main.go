package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"kosboard/internal/auth"
	"kosboard/internal/config"
	"kosboard/internal/server"
	"kosboard/internal/service"
	"kosboard/internal/storage/sqlite"
	"kosboard/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	gate := auth.NewGate(store)

	srv := server.New(
		store,
		authenticator,
		jwtManager,
		gate,
		service.NewLedgerService(store),
		service.NewRosterService(store),
		service.NewSummaryService(store, cfg.PerMemberTarget),
	)

	// h2c allows HTTP/2 without TLS for clients that ask for it.
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("Server starting",
		"address", addr,
		"per_member_target", cfg.PerMemberTarget,
		"house_capacity", cfg.HouseCapacity,
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
