package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"kosboard/internal/models"
	"kosboard/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kosboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("ListMembers sorts by name", func(t *testing.T) {
		for _, name := range []string{"Citra", "Agus", "Budi"} {
			if err := store.CreateMember(ctx, &models.Member{Name: name}); err != nil {
				t.Fatalf("CreateMember failed: %v", err)
			}
		}

		members, err := store.ListMembers(ctx)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 3 {
			t.Fatalf("expected 3 members, got %d", len(members))
		}
		for i, want := range []string{"Agus", "Budi", "Citra"} {
			if members[i].Name != want {
				t.Errorf("members[%d].Name = %s, want %s", i, members[i].Name, want)
			}
		}
	})

	t.Run("GetMember returns ErrNotFound for unknown ID", func(t *testing.T) {
		if _, err := store.GetMember(ctx, "nonexistent-id"); err != storage.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Contribution round trip", func(t *testing.T) {
		members, _ := store.ListMembers(ctx)
		member := members[0]

		record := &models.Contribution{
			MemberID:   member.ID,
			MemberName: member.Name,
			Amount:     65000,
		}
		if err := store.CreateContribution(ctx, record); err != nil {
			t.Fatalf("CreateContribution failed: %v", err)
		}
		if record.ID == "" {
			t.Error("expected record ID to be generated")
		}
		if record.CreatedAt == 0 {
			t.Error("expected CreatedAt to be set")
		}

		records, err := store.ListContributions(ctx)
		if err != nil {
			t.Fatalf("ListContributions failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].MemberName != member.Name {
			t.Errorf("member name snapshot = %s, want %s", records[0].MemberName, member.Name)
		}

		if err := store.DeleteContribution(ctx, record.ID); err != nil {
			t.Fatalf("DeleteContribution failed: %v", err)
		}
		if err := store.DeleteContribution(ctx, record.ID); err != storage.ErrNotFound {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Expense round trip", func(t *testing.T) {
		record := &models.Expense{Description: "gas refill", Amount: 22000}
		if err := store.CreateExpense(ctx, record); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		records, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(records) != 1 || records[0].Description != "gas refill" {
			t.Fatalf("unexpected expense list: %+v", records)
		}

		if err := store.DeleteExpense(ctx, record.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, "gone"); err != storage.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Assignments order by week and keep slot order", func(t *testing.T) {
		first := &models.DutyAssignment{WeekNumber: 7, ScheduledDate: "2024-02-17", Assignees: []string{"Budi"}}
		second := &models.DutyAssignment{WeekNumber: 3, ScheduledDate: "2024-01-20", Assignees: []string{"Citra", "Agus"}}
		for _, a := range []*models.DutyAssignment{first, second} {
			if err := store.CreateAssignment(ctx, a); err != nil {
				t.Fatalf("CreateAssignment failed: %v", err)
			}
		}

		assignments, err := store.ListAssignments(ctx)
		if err != nil {
			t.Fatalf("ListAssignments failed: %v", err)
		}
		if len(assignments) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(assignments))
		}
		if assignments[0].WeekNumber != 3 || assignments[1].WeekNumber != 7 {
			t.Errorf("not ordered by week: %d, %d", assignments[0].WeekNumber, assignments[1].WeekNumber)
		}
		if len(assignments[0].Assignees) != 2 || assignments[0].Assignees[0] != "Citra" {
			t.Errorf("slot order lost: %v", assignments[0].Assignees)
		}

		if err := store.DeleteAssignment(ctx, first.ID); err != nil {
			t.Fatalf("DeleteAssignment failed: %v", err)
		}
		if err := store.DeleteAssignment(ctx, first.ID); err != storage.ErrNotFound {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Duplicate week numbers are allowed", func(t *testing.T) {
		a := &models.DutyAssignment{WeekNumber: 3, ScheduledDate: "2024-01-27", Assignees: []string{"Budi"}}
		b := &models.DutyAssignment{WeekNumber: 3, ScheduledDate: "2024-01-28", Assignees: []string{"Agus"}}
		if err := store.CreateAssignment(ctx, a); err != nil {
			t.Fatalf("first insert failed: %v", err)
		}
		if err := store.CreateAssignment(ctx, b); err != nil {
			t.Fatalf("duplicate week insert failed: %v", err)
		}
	})
}

func TestProfiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("warga@kos.test", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("EnsureProfile is idempotent", func(t *testing.T) {
		if err := store.EnsureProfile(ctx, user.ID); err != nil {
			t.Fatalf("first EnsureProfile failed: %v", err)
		}
		if err := store.EnsureProfile(ctx, user.ID); err != nil {
			t.Fatalf("second EnsureProfile failed: %v", err)
		}

		profile, err := store.GetProfile(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if profile.IsAdmin {
			t.Error("fresh profile should not be admin")
		}
	})

	t.Run("EnsureProfile never clears an existing admin flag", func(t *testing.T) {
		if err := store.SetAdmin(ctx, user.ID, true); err != nil {
			t.Fatalf("SetAdmin failed: %v", err)
		}
		if err := store.EnsureProfile(ctx, user.ID); err != nil {
			t.Fatalf("EnsureProfile failed: %v", err)
		}

		profile, err := store.GetProfile(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if !profile.IsAdmin {
			t.Error("EnsureProfile overwrote the admin flag")
		}
	})

	t.Run("GetProfile returns ErrNotFound before ensure", func(t *testing.T) {
		other := models.NewUser("lain@kos.test", "hash")
		if err := store.CreateUser(ctx, other); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if _, err := store.GetProfile(ctx, other.ID); err != storage.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		u, err := store.GetUserByEmail(ctx, "nobody@kos.test")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if u != nil {
			t.Errorf("expected nil user, got %+v", u)
		}
	})
}
