package service

import (
	"context"

	"kosboard/internal/calculator"
	"kosboard/internal/models"
	"kosboard/internal/storage"
)

const (
	recentContributions = 5
	upcomingAssignments = 4
)

// Dashboard is everything the home page renders in one payload: the dues
// summary, per-member progress, the running balance, recent payments and the
// next rotation entries.
type Dashboard struct {
	Summary             calculator.Summary        `json:"summary"`
	Members             []calculator.MemberStatus `json:"members"`
	Balance             int64                     `json:"balance"`
	RecentContributions []models.Contribution     `json:"recent_contributions"`
	UpcomingRoster      []models.DutyAssignment   `json:"upcoming_roster"`
}

// SummaryService is the read-side facade over the member directory and both
// ledgers. It holds no state of its own.
type SummaryService struct {
	store           storage.Store
	perMemberTarget int64
}

// NewSummaryService creates a SummaryService. perMemberTarget is the monthly
// dues goal for a single member.
func NewSummaryService(store storage.Store, perMemberTarget int64) *SummaryService {
	return &SummaryService{store: store, perMemberTarget: perMemberTarget}
}

// BuildDashboard reads all three tables and composes the dashboard payload.
func (s *SummaryService) BuildDashboard(ctx context.Context) (*Dashboard, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	contributions, err := s.store.ListContributions(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	summary, statuses := calculator.BuildSummary(members, contributions, s.perMemberTarget)

	recent := contributions
	if len(recent) > recentContributions {
		recent = recent[:recentContributions]
	}
	upcoming := roster
	if len(upcoming) > upcomingAssignments {
		upcoming = upcoming[:upcomingAssignments]
	}

	return &Dashboard{
		Summary:             summary,
		Members:             statuses,
		Balance:             calculator.Balance(contributions, expenses),
		RecentContributions: recent,
		UpcomingRoster:      upcoming,
	}, nil
}

// PerMemberTarget exposes the configured dues goal for one member.
func (s *SummaryService) PerMemberTarget() int64 {
	return s.perMemberTarget
}
