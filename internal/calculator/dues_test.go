package calculator

import (
	"testing"

	"kosboard/internal/models"
)

func TestPercentOfTarget(t *testing.T) {
	const target = 65000

	tests := []struct {
		name   string
		total  int64
		target int64
		want   int
	}{
		{"zero total", 0, target, 0},
		{"halfway", 32500, target, 50},
		{"rounds up", 42250, target, 65},
		{"exact target", target, target, 100},
		{"overpaid clamps to 100", 2 * target, target, 100},
		{"slightly over clamps to 100", target + 1, target, 100},
		{"zero target", 10000, 0, 0},
		{"negative target", 10000, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentOfTarget(tt.total, tt.target)
			if got != tt.want {
				t.Errorf("PercentOfTarget(%d, %d) = %d, want %d", tt.total, tt.target, got, tt.want)
			}
		})
	}
}

func TestPercentOfTarget_Monotonic(t *testing.T) {
	const target = 65000

	prev := -1
	for total := int64(0); total <= 2*target; total += 1300 {
		got := PercentOfTarget(total, target)
		if got < prev {
			t.Fatalf("percent decreased: PercentOfTarget(%d, %d) = %d, previous was %d", total, target, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("percent out of range: PercentOfTarget(%d, %d) = %d", total, target, got)
		}
		prev = got
	}
}

func TestTotalsByMember(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Aa"},
		{ID: "m2", Name: "Bb"},
	}
	records := []models.Contribution{
		{ID: "c1", MemberID: "m1", Amount: 30000},
		{ID: "c2", MemberID: "m1", Amount: 40000},
	}

	totals := TotalsByMember(members, records)

	if totals["m1"] != 70000 {
		t.Errorf("m1 total = %d, want 70000", totals["m1"])
	}
	if totals["m2"] != 0 {
		t.Errorf("m2 total = %d, want 0 (no records)", totals["m2"])
	}
}

func TestBuildSummary(t *testing.T) {
	const target = 65000

	tests := []struct {
		name         string
		members      []models.Member
		records      []models.Contribution
		validateFunc func(t *testing.T, summary Summary, statuses []MemberStatus)
	}{
		{
			name:    "single member pays exactly the target",
			members: []models.Member{{ID: "1", Name: "Aa"}},
			records: []models.Contribution{{ID: "c1", MemberID: "1", Amount: 65000}},
			validateFunc: func(t *testing.T, summary Summary, statuses []MemberStatus) {
				if summary.TotalCollected != 65000 {
					t.Errorf("TotalCollected = %d, want 65000", summary.TotalCollected)
				}
				if summary.UnpaidCount != 0 {
					t.Errorf("UnpaidCount = %d, want 0", summary.UnpaidCount)
				}
				if statuses[0].Percent != 100 {
					t.Errorf("percent = %d, want 100", statuses[0].Percent)
				}
				if !statuses[0].Settled {
					t.Error("expected member to be settled")
				}
				if summary.Remaining != 0 {
					t.Errorf("Remaining = %d, want 0", summary.Remaining)
				}
			},
		},
		{
			name:    "overpayment keeps the true total but caps the percent",
			members: []models.Member{{ID: "1", Name: "Aa"}},
			records: []models.Contribution{
				{ID: "c1", MemberID: "1", Amount: 30000},
				{ID: "c2", MemberID: "1", Amount: 40000},
			},
			validateFunc: func(t *testing.T, summary Summary, statuses []MemberStatus) {
				if statuses[0].Total != 70000 {
					t.Errorf("total = %d, want 70000", statuses[0].Total)
				}
				if statuses[0].Percent != 100 {
					t.Errorf("percent = %d, want 100 (clamped)", statuses[0].Percent)
				}
				wantRemaining := int64(0) // target 65000 < collected 70000
				if summary.Remaining != wantRemaining {
					t.Errorf("Remaining = %d, want %d", summary.Remaining, wantRemaining)
				}
			},
		},
		{
			name: "unpaid count is strict",
			members: []models.Member{
				{ID: "1", Name: "Aa"},
				{ID: "2", Name: "Bb"},
				{ID: "3", Name: "Cc"},
			},
			records: []models.Contribution{
				{ID: "c1", MemberID: "1", Amount: 65000},
				{ID: "c2", MemberID: "2", Amount: 64999},
			},
			validateFunc: func(t *testing.T, summary Summary, statuses []MemberStatus) {
				if summary.TotalMembers != 3 {
					t.Errorf("TotalMembers = %d, want 3", summary.TotalMembers)
				}
				if summary.TotalTarget != 3*65000 {
					t.Errorf("TotalTarget = %d, want %d", summary.TotalTarget, 3*65000)
				}
				// One short by a single unit still counts as unpaid.
				if summary.UnpaidCount != 2 {
					t.Errorf("UnpaidCount = %d, want 2", summary.UnpaidCount)
				}
				if summary.Remaining != 3*65000-(65000+64999) {
					t.Errorf("Remaining = %d, want %d", summary.Remaining, 3*65000-(65000+64999))
				}
			},
		},
		{
			name:    "no members",
			members: nil,
			records: nil,
			validateFunc: func(t *testing.T, summary Summary, statuses []MemberStatus) {
				if summary.TotalTarget != 0 {
					t.Errorf("TotalTarget = %d, want 0", summary.TotalTarget)
				}
				if summary.OverallPercent != 0 {
					t.Errorf("OverallPercent = %d, want 0 for zero target", summary.OverallPercent)
				}
				if len(statuses) != 0 {
					t.Errorf("expected no status rows, got %d", len(statuses))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, statuses := BuildSummary(tt.members, tt.records, target)
			tt.validateFunc(t, summary, statuses)
		})
	}
}

func TestBalance(t *testing.T) {
	contributions := []models.Contribution{
		{ID: "c1", MemberID: "m1", Amount: 50000},
		{ID: "c2", MemberID: "m2", Amount: 20000},
	}
	expenses := []models.Expense{
		{ID: "e1", Description: "soap", Amount: 80000},
	}

	// Overspend is a valid state, not an error.
	if got := Balance(contributions, expenses); got != -10000 {
		t.Errorf("Balance = %d, want -10000", got)
	}

	if got := Balance(contributions, nil); got != 70000 {
		t.Errorf("Balance with no expenses = %d, want 70000", got)
	}
}
