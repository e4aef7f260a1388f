package reports

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type DashboardSummary struct {
	Headcount         int                   `json:"headcount"`
	ByDepartment      []DepartmentHeadcount `json:"byDepartment"`
	PendingLeave      int                   `json:"pendingLeave"`
	PendingExits      int                   `json:"pendingExits"`
	PendingOnboarding int                   `json:"pendingOnboarding"`
	LatestRuns        []RunTotals           `json:"latestRuns"`
}

// Summary rolls up the dashboard counters. The exit and onboarding counts
// take the caller's tenant filter separately because those tables may hold
// legacy rows without a tenant.
func (s *Service) Summary(ctx context.Context, tenantID, exitFilter string) (*DashboardSummary, error) {
	headcount, err := s.Store.ActiveHeadcount(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byDept, err := s.Store.HeadcountByDepartment(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	pendingLeave, err := s.Store.PendingLeave(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	pendingExits, err := s.Store.PendingExits(ctx, exitFilter)
	if err != nil {
		return nil, err
	}
	pendingOnboarding, err := s.Store.PendingOnboarding(ctx, exitFilter)
	if err != nil {
		return nil, err
	}
	latest, err := s.Store.LatestRunTotals(ctx, tenantID, 6)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		Headcount:         headcount,
		ByDepartment:      byDept,
		PendingLeave:      pendingLeave,
		PendingExits:      pendingExits,
		PendingOnboarding: pendingOnboarding,
		LatestRuns:        latest,
	}, nil
}
