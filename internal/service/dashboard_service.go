package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/calculator"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

var _ apiconnect.DashboardServiceHandler = (*DashboardService)(nil)

// DashboardStore is the storage the dashboard aggregates over.
type DashboardStore interface {
	storage.PersonStore
	storage.RevenueStore
	storage.CostStore
}

// DashboardService implements the Connect DashboardService.
type DashboardService struct {
	store DashboardStore
	opts  options
}

// NewDashboardService creates a new DashboardService with the given storage backend.
func NewDashboardService(store DashboardStore, opts ...Option) *DashboardService {
	return &DashboardService{store: store, opts: newOptions(opts)}
}

// GetDashboardStats computes the headline numbers for a month, the current
// one when none is given.
func (s *DashboardService) GetDashboardStats(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.DashboardStatsResponse], error) {
	month, err := s.resolveMonth(req.Msg)
	if err != nil {
		return nil, err
	}
	slog.Info("GetDashboardStats request received", "month", month.String())

	revenues, err := s.store.ListRevenuesByDueDate(ctx, month.FirstDay(), month.LastDay())
	if err != nil {
		return nil, storeError("GetDashboardStats", err, "month", month.String())
	}
	costs, err := s.store.ListCostsByDate(ctx, month.FirstDay(), month.LastDay())
	if err != nil {
		return nil, storeError("GetDashboardStats", err, "month", month.String())
	}
	active, err := s.store.ListPersonsByStatus(ctx, models.PersonActive)
	if err != nil {
		return nil, storeError("GetDashboardStats", err)
	}
	locked, err := s.store.ListPersonsByStatus(ctx, models.PersonLocked)
	if err != nil {
		return nil, storeError("GetDashboardStats", err)
	}
	pending, err := s.store.ListRevenuesByStatus(ctx, models.RevenuePending)
	if err != nil {
		return nil, storeError("GetDashboardStats", err)
	}

	stats := calculator.BuildStats(calculator.StatsInput{
		Month:         month,
		RevenuesDue:   revenues,
		Costs:         costs,
		ActivePersons: active,
		LockedPersons: locked,
		PendingCount:  len(pending),
		LockedScope:   s.opts.lockedScope,
	})

	slog.Info("GetDashboardStats successful",
		"month", stats.Month,
		"revenue", stats.MonthRevenue,
		"costs", stats.MonthCosts,
		"net_profit", stats.NetProfit,
		"delinquent_count", stats.DelinquentCount,
	)
	return connect.NewResponse(&api.DashboardStatsResponse{Stats: stats}), nil
}

// ListDelinquents returns the persons with pending revenues, largest amount
// owed first. Pending revenues of persons that no longer exist are skipped.
func (s *DashboardService) ListDelinquents(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.DelinquentListResponse], error) {
	slog.Info("ListDelinquents request received")

	pending, err := s.store.ListRevenuesByStatus(ctx, models.RevenuePending)
	if err != nil {
		return nil, storeError("ListDelinquents", err)
	}

	grouped := calculator.GroupDelinquents(pending, s.opts.now())
	delinquents := make([]*models.Delinquent, 0, len(grouped))
	for _, d := range grouped {
		person, err := s.store.GetPerson(ctx, d.PersonID)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Debug("Skipping delinquent without person", "person_id", d.PersonID)
			continue
		}
		if err != nil {
			return nil, storeError("ListDelinquents", err, "person_id", d.PersonID)
		}
		d.Name = person.Name
		d.EnrollmentCode = person.EnrollmentCode
		delinquents = append(delinquents, d)
	}

	slog.Info("ListDelinquents successful", "count", len(delinquents))
	return connect.NewResponse(&api.DelinquentListResponse{Delinquents: delinquents}), nil
}

// ListNewStudents returns the active persons created in the month.
func (s *DashboardService) ListNewStudents(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error) {
	month, err := s.resolveMonth(req.Msg)
	if err != nil {
		return nil, err
	}
	slog.Info("ListNewStudents request received", "month", month.String())

	active, err := s.store.ListPersonsByStatus(ctx, models.PersonActive)
	if err != nil {
		return nil, storeError("ListNewStudents", err)
	}
	return connect.NewResponse(&api.PersonListResponse{
		Persons: nonNil(calculator.NewStudents(active, month)),
	}), nil
}

// ListLockedStudents returns the locked persons the dashboard counts for the month.
func (s *DashboardService) ListLockedStudents(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error) {
	month, err := s.resolveMonth(req.Msg)
	if err != nil {
		return nil, err
	}
	slog.Info("ListLockedStudents request received", "month", month.String(), "scope", s.opts.lockedScope)

	locked, err := s.store.ListPersonsByStatus(ctx, models.PersonLocked)
	if err != nil {
		return nil, storeError("ListLockedStudents", err)
	}
	return connect.NewResponse(&api.PersonListResponse{
		Persons: nonNil(calculator.LockedStudents(locked, month, s.opts.lockedScope)),
	}), nil
}

func (s *DashboardService) resolveMonth(msg *api.MonthRequest) (calculator.Month, error) {
	if err := validateRequest(msg); err != nil {
		return calculator.Month{}, err
	}
	month, err := s.opts.month(msg.Month)
	if err != nil {
		return calculator.Month{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return month, nil
}
