package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/models"
)

func (e *testEnv) createCost(t *testing.T, kind models.CostKind, amount float64, date string) *models.Cost {
	t.Helper()

	resp, err := e.costs.CreateCost(context.Background(), connect.NewRequest(&api.CreateCostRequest{
		Kind:        kind,
		Description: string(kind) + " " + date,
		Amount:      amount,
		Date:        date,
	}))
	if err != nil {
		t.Fatalf("CreateCost failed: %v", err)
	}
	return resp.Msg.Cost
}

func TestCreateCost_And_GetCost(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	created := env.createCost(t, models.CostCourtRental, 350, "2025-01-12")

	resp, err := env.costs.GetCost(context.Background(), connect.NewRequest(&api.IDRequest{ID: created.ID}))
	if err != nil {
		t.Fatalf("GetCost failed: %v", err)
	}

	cost := resp.Msg.Cost
	if cost.Kind != models.CostCourtRental || cost.Amount != 350 || cost.Date != "2025-01-12" {
		t.Errorf("unexpected cost: %+v", cost)
	}
}

func TestCreateCost_Validation(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.CreateCostRequest
	}{
		{"unknown kind", &api.CreateCostRequest{Kind: "rent", Description: "x", Amount: 1, Date: "2025-01-01"}},
		{"missing description", &api.CreateCostRequest{Kind: models.CostGeneral, Amount: 1, Date: "2025-01-01"}},
		{"missing date", &api.CreateCostRequest{Kind: models.CostGeneral, Description: "x", Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.costs.CreateCost(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestUpdateCost_MergesSetFields(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	cost := env.createCost(t, models.CostUniform, 80, "2025-01-03")

	resp, err := env.costs.UpdateCost(context.Background(), connect.NewRequest(&api.UpdateCostRequest{
		ID:     cost.ID,
		Amount: ptr(95.5),
	}))
	if err != nil {
		t.Fatalf("UpdateCost failed: %v", err)
	}

	updated := resp.Msg.Cost
	if updated.Amount != 95.5 {
		t.Errorf("amount: expected 95.5, got %v", updated.Amount)
	}
	if updated.Kind != cost.Kind || updated.Description != cost.Description || updated.Date != cost.Date {
		t.Errorf("unset fields changed: %+v", updated)
	}

	_, err = env.costs.UpdateCost(context.Background(), connect.NewRequest(&api.UpdateCostRequest{
		ID:     "missing",
		Amount: ptr(1.0),
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListCostsByKind(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	env.createCost(t, models.CostInstructorPayment, 1000, "2025-01-05")
	env.createCost(t, models.CostInstructorPayment, 1200, "2025-01-06")
	env.createCost(t, models.CostGeneral, 40, "2025-01-07")

	resp, err := env.costs.ListCostsByKind(context.Background(), connect.NewRequest(&api.ListCostsByKindRequest{
		Kind: models.CostInstructorPayment,
	}))
	if err != nil {
		t.Fatalf("ListCostsByKind failed: %v", err)
	}
	if len(resp.Msg.Costs) != 2 {
		t.Fatalf("expected 2 costs, got %d", len(resp.Msg.Costs))
	}
	for _, c := range resp.Msg.Costs {
		if c.Kind != models.CostInstructorPayment {
			t.Errorf("unexpected kind %s", c.Kind)
		}
	}
}

func TestListCostsCurrentMonth_Boundaries(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	env.createCost(t, models.CostGeneral, 1, "2024-12-31")
	env.createCost(t, models.CostGeneral, 2, "2025-01-01")
	env.createCost(t, models.CostGeneral, 3, "2025-01-31")
	env.createCost(t, models.CostGeneral, 4, "2025-02-01")

	resp, err := env.costs.ListCostsCurrentMonth(context.Background(), connect.NewRequest(&api.Empty{}))
	if err != nil {
		t.Fatalf("ListCostsCurrentMonth failed: %v", err)
	}

	costs := resp.Msg.Costs
	if len(costs) != 2 {
		t.Fatalf("expected 2 costs in January, got %d", len(costs))
	}
	if costs[0].Date != "2025-01-31" || costs[1].Date != "2025-01-01" {
		t.Errorf("unexpected dates: %s, %s", costs[0].Date, costs[1].Date)
	}
}

func TestDeleteCost(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	cost := env.createCost(t, models.CostGeneral, 10, "2025-01-01")

	if _, err := env.costs.DeleteCost(context.Background(), connect.NewRequest(&api.IDRequest{ID: cost.ID})); err != nil {
		t.Fatalf("DeleteCost failed: %v", err)
	}

	_, err := env.costs.GetCost(context.Background(), connect.NewRequest(&api.IDRequest{ID: cost.ID}))
	assertCode(t, err, connect.CodeNotFound)

	list, err := env.costs.ListCosts(context.Background(), connect.NewRequest(&api.Empty{}))
	if err != nil {
		t.Fatalf("ListCosts failed: %v", err)
	}
	if len(list.Msg.Costs) != 0 {
		t.Errorf("expected no costs, got %d", len(list.Msg.Costs))
	}
}
