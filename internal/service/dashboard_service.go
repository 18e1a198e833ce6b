package service

import (
	"context"

	"github.com/koperasindo/koperasi-api/internal/repository"
)

// DashboardService aggregates store totals for the console overview page.
type DashboardService struct {
	regions  *repository.RegionRepository
	coops    *repository.CooperativeRepository
	savings  *repository.ReportRepository
	loans    *repository.ReportRepository
	requests *repository.RequestRepository
	users    *repository.UserRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(
	regions *repository.RegionRepository,
	coops *repository.CooperativeRepository,
	savings, loans *repository.ReportRepository,
	requests *repository.RequestRepository,
	users *repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		regions:  regions,
		coops:    coops,
		savings:  savings,
		loans:    loans,
		requests: requests,
		users:    users,
	}
}

// Summary is the dashboard payload: store totals, request status counts and
// the monthly amounts feeding the bar chart.
type Summary struct {
	Provinces      int                       `json:"total_provinces"`
	Cities         int                       `json:"total_cities"`
	Subdistricts   int                       `json:"total_subdistricts"`
	Cooperatives   int                       `json:"total_cooperatives"`
	Users          int                       `json:"total_users"`
	SavingReports  int                       `json:"total_saving_reports"`
	LoanReports    int                       `json:"total_loan_reports"`
	Requests       map[string]int            `json:"requests_by_status"`
	MonthlySavings []repository.MonthlyTotal `json:"monthly_savings"`
	MonthlyLoans   []repository.MonthlyTotal `json:"monthly_loans"`
}

// Summary assembles the dashboard payload from current store state.
func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	provinces, cities, subdistricts := s.regions.Totals()
	return Summary{
		Provinces:      provinces,
		Cities:         cities,
		Subdistricts:   subdistricts,
		Cooperatives:   s.coops.Total(),
		Users:          s.users.Total(),
		SavingReports:  s.savings.Total(),
		LoanReports:    s.loans.Total(),
		Requests:       s.requests.CountByStatus(),
		MonthlySavings: s.savings.MonthlyTotals(),
		MonthlyLoans:   s.loans.MonthlyTotals(),
	}, nil
}
