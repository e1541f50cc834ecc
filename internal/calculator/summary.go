package calculator

import "kosboard/internal/models"

// MemberStatus is one row of the dues progress board.
type MemberStatus struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Total    int64  `json:"total"`
	Percent  int    `json:"percent"`
	Settled  bool   `json:"settled"`
}

// Summary is the aggregate view the dashboard header renders.
type Summary struct {
	TotalMembers   int   `json:"total_members"`
	TotalCollected int64 `json:"total_collected"`
	TotalTarget    int64 `json:"total_target"`
	UnpaidCount    int   `json:"unpaid_count"`
	OverallPercent int   `json:"overall_percent"`
	Remaining      int64 `json:"remaining"`
}

// BuildSummary composes the dashboard aggregates from the member directory
// and the contribution ledger. perMemberTarget is the monthly dues goal for
// one member.
//
// UnpaidCount counts members whose individual total is strictly below the
// per-member target. Remaining never goes negative; once the house target is
// met it reads 0 even if collections keep coming in.
func BuildSummary(members []models.Member, records []models.Contribution, perMemberTarget int64) (Summary, []MemberStatus) {
	totals := TotalsByMember(members, records)

	statuses := make([]MemberStatus, 0, len(members))
	unpaid := 0
	for _, m := range members {
		total := totals[m.ID]
		settled := total >= perMemberTarget
		if !settled {
			unpaid++
		}
		statuses = append(statuses, MemberStatus{
			MemberID: m.ID,
			Name:     m.Name,
			Total:    total,
			Percent:  PercentOfTarget(total, perMemberTarget),
			Settled:  settled,
		})
	}

	collected := TotalContributions(records)
	target := int64(len(members)) * perMemberTarget

	remaining := target - collected
	if remaining < 0 {
		remaining = 0
	}

	return Summary{
		TotalMembers:   len(members),
		TotalCollected: collected,
		TotalTarget:    target,
		UnpaidCount:    unpaid,
		OverallPercent: PercentOfTarget(collected, target),
		Remaining:      remaining,
	}, statuses
}
