// Command kosctl is the operator CLI for the administrative actions the
// service itself never performs: seeding the member directory, provisioning
// login accounts, and granting the admin flag.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"kosboard/internal/auth"
	"kosboard/internal/config"
	"kosboard/internal/models"
	"kosboard/internal/storage/sqlite"
	"kosboard/pkg/logging"
)

const usage = `Usage: kosctl <command> [args]

Commands:
  seed-members <name>...          add members to the directory
  list-members                    print the member directory
  create-user <email> <password>  provision a login account
  grant-admin <email>             set the admin flag on a user's profile
  revoke-admin <email>            clear the admin flag
`

func main() {
	logging.Setup()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open storage", "database", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "seed-members":
		err = seedMembers(ctx, store, args)
	case "list-members":
		err = listMembers(ctx, store)
	case "create-user":
		err = createUser(ctx, store, args)
	case "grant-admin":
		err = setAdmin(ctx, store, args, true)
	case "revoke-admin":
		err = setAdmin(ctx, store, args, false)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("Command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func seedMembers(ctx context.Context, store *sqlite.SQLiteStore, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("seed-members needs at least one name")
	}
	for _, name := range names {
		m := &models.Member{Name: name}
		if err := store.CreateMember(ctx, m); err != nil {
			return err
		}
		slog.Info("Member added", "member_id", m.ID, "name", m.Name)
	}
	return nil
}

func listMembers(ctx context.Context, store *sqlite.SQLiteStore) error {
	members, err := store.ListMembers(ctx)
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Printf("%s\t%s\n", m.ID, m.Name)
	}
	return nil
}

func createUser(ctx context.Context, store *sqlite.SQLiteStore, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("create-user needs <email> <password>")
	}
	authenticator := auth.NewPasswordAuthenticator(store)
	user, err := authenticator.Register(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	slog.Info("User created", "user_id", user.ID, "email", user.Email)
	return nil
}

func setAdmin(ctx context.Context, store *sqlite.SQLiteStore, args []string, isAdmin bool) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one email argument")
	}
	user, err := store.GetUserByEmail(ctx, args[0])
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user with email %s", args[0])
	}
	if err := store.SetAdmin(ctx, user.ID, isAdmin); err != nil {
		return err
	}
	slog.Info("Admin flag updated", "user_id", user.ID, "is_admin", isAdmin)
	return nil
}
