package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/calculator"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

var _ apiconnect.RevenueServiceHandler = (*RevenueService)(nil)

// RevenueService implements the Connect RevenueService.
type RevenueService struct {
	store storage.RevenueStore
	opts  options
}

// NewRevenueService creates a new RevenueService with the given storage backend.
func NewRevenueService(store storage.RevenueStore, opts ...Option) *RevenueService {
	return &RevenueService{store: store, opts: newOptions(opts)}
}

// CreateRevenue records a new pending charge for a person.
func (s *RevenueService) CreateRevenue(ctx context.Context, req *connect.Request[api.CreateRevenueRequest]) (*connect.Response[api.RevenueResponse], error) {
	slog.Info("CreateRevenue request received",
		"person_id", req.Msg.PersonID,
		"kind", req.Msg.Kind,
		"amount", req.Msg.Amount,
		"due_date", req.Msg.DueDate,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var discount float64
	if req.Msg.Discount != nil {
		discount = *req.Msg.Discount
	}
	reference := req.Msg.Reference
	if reference == "" {
		// Charges refer to the month they are due in unless told otherwise.
		reference = req.Msg.DueDate[:len(models.MonthLayout)]
	}

	now := s.opts.now().Unix()
	revenue := &models.Revenue{
		PersonID:    req.Msg.PersonID,
		Kind:        req.Msg.Kind,
		Amount:      req.Msg.Amount,
		Status:      models.RevenuePending,
		DueDate:     req.Msg.DueDate,
		Reference:   reference,
		Description: req.Msg.Description,
		Discount:    discount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateRevenue(ctx, revenue); err != nil {
		return nil, storeError("CreateRevenue", err)
	}

	slog.Info("Revenue created", "revenue_id", revenue.ID, "net", calculator.NetAmount(revenue))
	return s.reread(ctx, "CreateRevenue", revenue.ID)
}

// GetRevenue retrieves a revenue by ID.
func (s *RevenueService) GetRevenue(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error) {
	slog.Info("GetRevenue request received", "revenue_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	return s.reread(ctx, "GetRevenue", req.Msg.ID)
}

// ListRevenues returns every revenue, newest first.
func (s *RevenueService) ListRevenues(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error) {
	slog.Info("ListRevenues request received")

	revenues, err := s.store.ListRevenues(ctx)
	if err != nil {
		return nil, storeError("ListRevenues", err)
	}
	return revenueList(revenues), nil
}

// ListRevenuesByPerson returns the revenues charged to one person.
func (s *RevenueService) ListRevenuesByPerson(ctx context.Context, req *connect.Request[api.ListRevenuesByPersonRequest]) (*connect.Response[api.RevenueListResponse], error) {
	slog.Info("ListRevenuesByPerson request received", "person_id", req.Msg.PersonID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	revenues, err := s.store.ListRevenuesByPerson(ctx, req.Msg.PersonID)
	if err != nil {
		return nil, storeError("ListRevenuesByPerson", err, "person_id", req.Msg.PersonID)
	}
	return revenueList(revenues), nil
}

// ListRevenuesByStatus returns the revenues with the given payment status.
func (s *RevenueService) ListRevenuesByStatus(ctx context.Context, req *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueListResponse], error) {
	slog.Info("ListRevenuesByStatus request received", "status", req.Msg.Status)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	revenues, err := s.store.ListRevenuesByStatus(ctx, req.Msg.Status)
	if err != nil {
		return nil, storeError("ListRevenuesByStatus", err, "status", req.Msg.Status)
	}
	return revenueList(revenues), nil
}

// ListRevenuesByPeriod returns revenues due within [from, to], latest due date first.
func (s *RevenueService) ListRevenuesByPeriod(ctx context.Context, req *connect.Request[api.ListRevenuesByPeriodRequest]) (*connect.Response[api.RevenueListResponse], error) {
	slog.Info("ListRevenuesByPeriod request received", "from", req.Msg.From, "to", req.Msg.To)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	revenues, err := s.store.ListRevenuesByDueDate(ctx, req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, storeError("ListRevenuesByPeriod", err, "from", req.Msg.From, "to", req.Msg.To)
	}
	return revenueList(revenues), nil
}

// ListRevenuesCurrentMonth returns the revenues due in the current calendar month.
func (s *RevenueService) ListRevenuesCurrentMonth(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error) {
	month := s.opts.currentMonth()
	slog.Info("ListRevenuesCurrentMonth request received", "month", month.String())

	revenues, err := s.store.ListRevenuesByDueDate(ctx, month.FirstDay(), month.LastDay())
	if err != nil {
		return nil, storeError("ListRevenuesCurrentMonth", err, "month", month.String())
	}
	return revenueList(revenues), nil
}

// MarkRevenuePaid sets a revenue's status to paid and its paid date to today.
func (s *RevenueService) MarkRevenuePaid(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error) {
	slog.Info("MarkRevenuePaid request received", "revenue_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	revenue, err := s.store.GetRevenue(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("MarkRevenuePaid", err, "revenue_id", req.Msg.ID)
	}

	revenue.Status = models.RevenuePaid
	revenue.PaidDate = s.opts.today()
	revenue.UpdatedAt = s.opts.now().Unix()

	if err := s.store.UpdateRevenue(ctx, revenue); err != nil {
		return nil, storeError("MarkRevenuePaid", err, "revenue_id", revenue.ID)
	}

	slog.Info("Revenue marked as paid", "revenue_id", revenue.ID, "paid_date", revenue.PaidDate)
	return s.reread(ctx, "MarkRevenuePaid", revenue.ID)
}

// TotalRevenuesByStatus sums the net amounts of the revenues with the given status.
func (s *RevenueService) TotalRevenuesByStatus(ctx context.Context, req *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueTotalResponse], error) {
	slog.Info("TotalRevenuesByStatus request received", "status", req.Msg.Status)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	revenues, err := s.store.ListRevenuesByStatus(ctx, req.Msg.Status)
	if err != nil {
		return nil, storeError("TotalRevenuesByStatus", err, "status", req.Msg.Status)
	}

	return connect.NewResponse(&api.RevenueTotalResponse{
		Status: req.Msg.Status,
		Total:  calculator.TotalNet(revenues),
	}), nil
}

// DeleteRevenue removes a revenue.
func (s *RevenueService) DeleteRevenue(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	slog.Info("DeleteRevenue request received", "revenue_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteRevenue(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteRevenue", err, "revenue_id", req.Msg.ID)
	}

	slog.Info("Revenue deleted", "revenue_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *RevenueService) reread(ctx context.Context, op, id string) (*connect.Response[api.RevenueResponse], error) {
	revenue, err := s.store.GetRevenue(ctx, id)
	if err != nil {
		return nil, storeError(op, err, "revenue_id", id)
	}
	return connect.NewResponse(&api.RevenueResponse{Revenue: revenue}), nil
}

func revenueList(revenues []*models.Revenue) *connect.Response[api.RevenueListResponse] {
	return connect.NewResponse(&api.RevenueListResponse{Revenues: nonNil(revenues)})
}
