package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

var _ apiconnect.CostServiceHandler = (*CostService)(nil)

// CostService implements the Connect CostService.
type CostService struct {
	store storage.CostStore
	opts  options
}

// NewCostService creates a new CostService with the given storage backend.
func NewCostService(store storage.CostStore, opts ...Option) *CostService {
	return &CostService{store: store, opts: newOptions(opts)}
}

// CreateCost records a new expense.
func (s *CostService) CreateCost(ctx context.Context, req *connect.Request[api.CreateCostRequest]) (*connect.Response[api.CostResponse], error) {
	slog.Info("CreateCost request received",
		"kind", req.Msg.Kind,
		"amount", req.Msg.Amount,
		"date", req.Msg.Date,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	now := s.opts.now().Unix()
	cost := &models.Cost{
		Kind:        req.Msg.Kind,
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateCost(ctx, cost); err != nil {
		return nil, storeError("CreateCost", err)
	}

	slog.Info("Cost created", "cost_id", cost.ID)
	return s.reread(ctx, "CreateCost", cost.ID)
}

// GetCost retrieves a cost by ID.
func (s *CostService) GetCost(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.CostResponse], error) {
	slog.Info("GetCost request received", "cost_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	return s.reread(ctx, "GetCost", req.Msg.ID)
}

// ListCosts returns every cost, newest first.
func (s *CostService) ListCosts(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error) {
	slog.Info("ListCosts request received")

	costs, err := s.store.ListCosts(ctx)
	if err != nil {
		return nil, storeError("ListCosts", err)
	}
	return costList(costs), nil
}

// UpdateCost merges the fields present in the request into the stored cost.
func (s *CostService) UpdateCost(ctx context.Context, req *connect.Request[api.UpdateCostRequest]) (*connect.Response[api.CostResponse], error) {
	slog.Info("UpdateCost request received", "cost_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	cost, err := s.store.GetCost(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateCost", err, "cost_id", req.Msg.ID)
	}

	models.CostPatch{
		Kind:        req.Msg.Kind,
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
	}.Apply(cost)
	cost.UpdatedAt = s.opts.now().Unix()

	if err := s.store.UpdateCost(ctx, cost); err != nil {
		return nil, storeError("UpdateCost", err, "cost_id", cost.ID)
	}

	slog.Info("Cost updated", "cost_id", cost.ID)
	return s.reread(ctx, "UpdateCost", cost.ID)
}

// DeleteCost removes a cost.
func (s *CostService) DeleteCost(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	slog.Info("DeleteCost request received", "cost_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteCost(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteCost", err, "cost_id", req.Msg.ID)
	}

	slog.Info("Cost deleted", "cost_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

// ListCostsByKind returns the costs of one kind.
func (s *CostService) ListCostsByKind(ctx context.Context, req *connect.Request[api.ListCostsByKindRequest]) (*connect.Response[api.CostListResponse], error) {
	slog.Info("ListCostsByKind request received", "kind", req.Msg.Kind)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	costs, err := s.store.ListCostsByKind(ctx, req.Msg.Kind)
	if err != nil {
		return nil, storeError("ListCostsByKind", err, "kind", req.Msg.Kind)
	}
	return costList(costs), nil
}

// ListCostsCurrentMonth returns the costs dated in the current calendar month.
func (s *CostService) ListCostsCurrentMonth(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error) {
	month := s.opts.currentMonth()
	slog.Info("ListCostsCurrentMonth request received", "month", month.String())

	costs, err := s.store.ListCostsByDate(ctx, month.FirstDay(), month.LastDay())
	if err != nil {
		return nil, storeError("ListCostsCurrentMonth", err, "month", month.String())
	}
	return costList(costs), nil
}

func (s *CostService) reread(ctx context.Context, op, id string) (*connect.Response[api.CostResponse], error) {
	cost, err := s.store.GetCost(ctx, id)
	if err != nil {
		return nil, storeError(op, err, "cost_id", id)
	}
	return connect.NewResponse(&api.CostResponse{Cost: cost}), nil
}

func costList(costs []*models.Cost) *connect.Response[api.CostListResponse] {
	return connect.NewResponse(&api.CostListResponse{Costs: nonNil(costs)})
}
