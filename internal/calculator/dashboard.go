package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/ludus/internal/models"
)

// StatsInput is everything the dashboard numbers are derived from.
type StatsInput struct {
	Month Month

	// RevenuesDue are revenues whose due date falls in Month.
	RevenuesDue []*models.Revenue
	// Costs are costs dated in Month.
	Costs []*models.Cost
	// ActivePersons and LockedPersons are unfiltered by date.
	ActivePersons []*models.Person
	LockedPersons []*models.Person
	// PendingCount is the number of pending revenue records.
	PendingCount int

	LockedScope models.LockedScope
}

// BuildStats computes the dashboard numbers for one month.
func BuildStats(in StatsInput) models.DashboardStats {
	revenue := decimal.NewFromFloat(TotalNet(FilterRevenuesByStatus(in.RevenuesDue, models.RevenuePaid)))
	costs := decimal.NewFromFloat(TotalCosts(in.Costs))

	scope := in.LockedScope
	if scope == "" {
		scope = models.LockedScopeAll
	}

	return models.DashboardStats{
		Month:           in.Month.String(),
		MonthRevenue:    revenue.InexactFloat64(),
		MonthCosts:      costs.InexactFloat64(),
		NetProfit:       revenue.Sub(costs).InexactFloat64(),
		NewStudents:     len(NewStudents(in.ActivePersons, in.Month)),
		LockedStudents:  len(LockedStudents(in.LockedPersons, in.Month, scope)),
		LockedScope:     scope,
		DelinquentCount: in.PendingCount,
	}
}

// NewStudents returns the active persons created within the month.
func NewStudents(active []*models.Person, month Month) []*models.Person {
	var out []*models.Person
	for _, p := range active {
		if p.Status == models.PersonActive && month.ContainsUnix(p.CreatedAt) {
			out = append(out, p)
		}
	}
	return out
}

// LockedStudents returns the locked persons counted under scope. With
// LockedScopeMonth only persons last updated within the month are kept.
func LockedStudents(locked []*models.Person, month Month, scope models.LockedScope) []*models.Person {
	var out []*models.Person
	for _, p := range locked {
		if p.Status != models.PersonLocked {
			continue
		}
		if scope == models.LockedScopeMonth && !month.ContainsUnix(p.UpdatedAt) {
			continue
		}
		out = append(out, p)
	}
	return out
}
