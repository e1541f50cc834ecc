package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kosboard/internal/models"
	"kosboard/internal/storage"
	"kosboard/internal/storage/sqlite"
)

var (
	adminActor  = Actor{UserID: "admin-user", Admin: true}
	memberActor = Actor{UserID: "plain-user"}
)

func newLedgerFixture(t *testing.T) (*LedgerService, *models.Member) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kosboard-ledger-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	member := &models.Member{Name: "Aa"}
	if err := store.CreateMember(context.Background(), member); err != nil {
		t.Fatalf("Failed to seed member: %v", err)
	}

	return NewLedgerService(store), member
}

func TestRecordContribution(t *testing.T) {
	ctx := context.Background()

	t.Run("increments the member total exactly once", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		record, err := ledger.RecordContribution(ctx, adminActor, member.ID, 65000)
		if err != nil {
			t.Fatalf("RecordContribution failed: %v", err)
		}
		if record.MemberName != "Aa" {
			t.Errorf("member name snapshot = %s, want Aa", record.MemberName)
		}

		totals, err := ledger.TotalsByMember(ctx)
		if err != nil {
			t.Fatalf("TotalsByMember failed: %v", err)
		}
		if totals[member.ID] != 65000 {
			t.Errorf("total = %d, want 65000", totals[member.ID])
		}
	})

	t.Run("accumulates across records", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		ledger.RecordContribution(ctx, adminActor, member.ID, 30000)
		ledger.RecordContribution(ctx, adminActor, member.ID, 40000)

		totals, _ := ledger.TotalsByMember(ctx)
		if totals[member.ID] != 70000 {
			t.Errorf("total = %d, want 70000", totals[member.ID])
		}
	})

	t.Run("rejects non-admin without mutating", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		for _, actor := range []Actor{memberActor, {}} {
			if _, err := ledger.RecordContribution(ctx, actor, member.ID, 65000); !errors.Is(err, ErrNotAdmin) {
				t.Errorf("actor %+v: expected ErrNotAdmin, got %v", actor, err)
			}
		}

		records, _ := ledger.ListContributions(ctx)
		if len(records) != 0 {
			t.Errorf("denied call left %d records behind", len(records))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		tests := []struct {
			name     string
			memberID string
			amount   int64
		}{
			{"zero amount", member.ID, 0},
			{"negative amount", member.ID, -500},
			{"unknown member", "no-such-member", 65000},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ledger.RecordContribution(ctx, adminActor, tt.memberID, tt.amount)
				var validation *ValidationError
				if !errors.As(err, &validation) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			})
		}
	})
}

func TestRemoveContribution(t *testing.T) {
	ctx := context.Background()

	t.Run("removes exactly one record", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		first, _ := ledger.RecordContribution(ctx, adminActor, member.ID, 30000)
		ledger.RecordContribution(ctx, adminActor, member.ID, 40000)

		if err := ledger.RemoveContribution(ctx, adminActor, first.ID); err != nil {
			t.Fatalf("RemoveContribution failed: %v", err)
		}

		totals, _ := ledger.TotalsByMember(ctx)
		if totals[member.ID] != 40000 {
			t.Errorf("total after removal = %d, want 40000", totals[member.ID])
		}
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		ledger, _ := newLedgerFixture(t)
		if err := ledger.RemoveContribution(ctx, adminActor, "already-gone"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rejects non-admin", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)
		record, _ := ledger.RecordContribution(ctx, adminActor, member.ID, 65000)

		if err := ledger.RemoveContribution(ctx, memberActor, record.ID); !errors.Is(err, ErrNotAdmin) {
			t.Errorf("expected ErrNotAdmin, got %v", err)
		}
		records, _ := ledger.ListContributions(ctx)
		if len(records) != 1 {
			t.Errorf("denied removal mutated the ledger: %d records", len(records))
		}
	})
}

func TestExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("balance can go negative", func(t *testing.T) {
		ledger, member := newLedgerFixture(t)

		ledger.RecordContribution(ctx, adminActor, member.ID, 50000)
		if _, err := ledger.RecordExpense(ctx, adminActor, "new water pump", 80000); err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}

		balance, err := ledger.Balance(ctx)
		if err != nil {
			t.Fatalf("Balance failed: %v", err)
		}
		if balance != -30000 {
			t.Errorf("balance = %d, want -30000", balance)
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		ledger, _ := newLedgerFixture(t)
		_, err := ledger.RecordExpense(ctx, adminActor, "", 1000)
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("rejects non-admin without mutating", func(t *testing.T) {
		ledger, _ := newLedgerFixture(t)

		if _, err := ledger.RecordExpense(ctx, memberActor, "snacks", 5000); !errors.Is(err, ErrNotAdmin) {
			t.Errorf("expected ErrNotAdmin, got %v", err)
		}
		if err := ledger.RemoveExpense(ctx, memberActor, "any"); !errors.Is(err, ErrNotAdmin) {
			t.Errorf("expected ErrNotAdmin, got %v", err)
		}

		records, _ := ledger.ListExpenses(ctx)
		if len(records) != 0 {
			t.Errorf("denied call left %d records behind", len(records))
		}
	})
}
