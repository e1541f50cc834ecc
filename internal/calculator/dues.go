// Package calculator contains the pure dues and balance math used by the
// dashboard. Nothing in here touches storage.
package calculator

import (
	"math"

	"kosboard/internal/models"
)

// PercentOfTarget reports how far a total has progressed toward a target as
// an integer percentage in [0, 100].
//
// The value is round(total/target*100) clamped at 100: a member who overpays
// still displays exactly 100%. The overpaid amount stays in the true total;
// only the displayed percentage is capped. A non-positive target yields 0.
func PercentOfTarget(total, target int64) int {
	if target <= 0 {
		return 0
	}
	percent := int(math.Round(float64(total) / float64(target) * 100))
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// TotalsByMember sums contribution amounts per member. Every member appears
// in the result; members with no records map to 0. Records referencing an
// unknown member are counted under their member ID anyway, so nothing is
// silently dropped.
func TotalsByMember(members []models.Member, records []models.Contribution) map[string]int64 {
	totals := make(map[string]int64, len(members))
	for _, m := range members {
		totals[m.ID] = 0
	}
	for _, r := range records {
		totals[r.MemberID] += r.Amount
	}
	return totals
}

// TotalContributions sums all contribution amounts.
func TotalContributions(records []models.Contribution) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(records []models.Expense) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// Balance is contributions minus expenses. Negative means the house has
// overspent; that is a valid, displayable state, not an error.
func Balance(contributions []models.Contribution, expenses []models.Expense) int64 {
	return TotalContributions(contributions) - TotalExpenses(expenses)
}
