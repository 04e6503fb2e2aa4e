package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/models"
)

func TestCreateRevenue_Defaults(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Ana Costa")
	resp, err := env.revenues.CreateRevenue(context.Background(), connect.NewRequest(&api.CreateRevenueRequest{
		PersonID:    person.ID,
		Kind:        models.RevenueEnrollmentFee,
		Amount:      150,
		DueDate:     "2025-01-10",
		Description: "Matrícula",
	}))
	if err != nil {
		t.Fatalf("CreateRevenue failed: %v", err)
	}

	revenue := resp.Msg.Revenue
	if revenue.Status != models.RevenuePending {
		t.Errorf("status: expected pending, got %s", revenue.Status)
	}
	if revenue.Discount != 0 {
		t.Errorf("discount: expected 0, got %v", revenue.Discount)
	}
	if revenue.Reference != "2025-01" {
		t.Errorf("reference: expected 2025-01, got %q", revenue.Reference)
	}
	if revenue.PaidDate != "" {
		t.Errorf("paidDate: expected empty, got %q", revenue.PaidDate)
	}
}

func TestCreateRevenue_Validation(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.CreateRevenueRequest
	}{
		{"missing person", &api.CreateRevenueRequest{Kind: models.RevenueUniform, Amount: 10, DueDate: "2025-01-10"}},
		{"unknown kind", &api.CreateRevenueRequest{PersonID: "p1", Kind: "donation", Amount: 10, DueDate: "2025-01-10"}},
		{"negative amount", &api.CreateRevenueRequest{PersonID: "p1", Kind: models.RevenueUniform, Amount: -1, DueDate: "2025-01-10"}},
		{"bad due date", &api.CreateRevenueRequest{PersonID: "p1", Kind: models.RevenueUniform, Amount: 10, DueDate: "2025-13-01"}},
		{"bad reference", &api.CreateRevenueRequest{PersonID: "p1", Kind: models.RevenueUniform, Amount: 10, DueDate: "2025-01-10", Reference: "jan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.revenues.CreateRevenue(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestTotalRevenuesByStatus_MatchesListReduce(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Bruno Dias")
	env.createRevenue(t, person.ID, 100, 10, "2025-01-05")
	env.createRevenue(t, person.ID, 50.1, 0, "2025-01-06")
	env.createRevenue(t, person.ID, 30, 40, "2025-01-07") // net may be negative
	paid := env.createRevenue(t, person.ID, 200, 0, "2025-01-08")

	if _, err := env.revenues.MarkRevenuePaid(context.Background(), connect.NewRequest(&api.IDRequest{ID: paid.ID})); err != nil {
		t.Fatalf("MarkRevenuePaid failed: %v", err)
	}

	tests := []struct {
		status models.RevenueStatus
		want   float64
	}{
		{models.RevenuePending, 90 + 50.1 - 10},
		{models.RevenuePaid, 200},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			total, err := env.revenues.TotalRevenuesByStatus(context.Background(), connect.NewRequest(&api.RevenueStatusRequest{
				Status: tt.status,
			}))
			if err != nil {
				t.Fatalf("TotalRevenuesByStatus failed: %v", err)
			}

			list, err := env.revenues.ListRevenuesByStatus(context.Background(), connect.NewRequest(&api.RevenueStatusRequest{
				Status: tt.status,
			}))
			if err != nil {
				t.Fatalf("ListRevenuesByStatus failed: %v", err)
			}

			var manual float64
			for _, r := range list.Msg.Revenues {
				manual += r.Amount - r.Discount
			}

			if math.Abs(total.Msg.Total-manual) > 1e-9 {
				t.Errorf("total %v does not match manual reduce %v", total.Msg.Total, manual)
			}
			if math.Abs(total.Msg.Total-tt.want) > 1e-9 {
				t.Errorf("total: expected %v, got %v", tt.want, total.Msg.Total)
			}
		})
	}
}

func TestMarkRevenuePaid(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Clara Nunes")
	revenue := env.createRevenue(t, person.ID, 120, 20, "2025-01-15")

	resp, err := env.revenues.MarkRevenuePaid(context.Background(), connect.NewRequest(&api.IDRequest{ID: revenue.ID}))
	if err != nil {
		t.Fatalf("MarkRevenuePaid failed: %v", err)
	}

	paid := resp.Msg.Revenue
	if paid.Status != models.RevenuePaid {
		t.Errorf("status: expected paid, got %s", paid.Status)
	}
	if paid.PaidDate != "2025-01-20" {
		t.Errorf("paidDate: expected 2025-01-20, got %q", paid.PaidDate)
	}
	if paid.Amount != 120 || paid.Discount != 20 {
		t.Errorf("amounts changed: %+v", paid)
	}

	_, err = env.revenues.MarkRevenuePaid(context.Background(), connect.NewRequest(&api.IDRequest{ID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListRevenuesCurrentMonth_Boundaries(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Diego Melo")
	first := env.createRevenue(t, person.ID, 100, 0, "2025-01-01")
	last := env.createRevenue(t, person.ID, 100, 0, "2025-01-31")
	env.createRevenue(t, person.ID, 100, 0, "2024-12-31")
	env.createRevenue(t, person.ID, 100, 0, "2025-02-01")

	resp, err := env.revenues.ListRevenuesCurrentMonth(context.Background(), connect.NewRequest(&api.Empty{}))
	if err != nil {
		t.Fatalf("ListRevenuesCurrentMonth failed: %v", err)
	}

	revenues := resp.Msg.Revenues
	if len(revenues) != 2 {
		t.Fatalf("expected 2 revenues in January, got %d", len(revenues))
	}
	// Latest due date first.
	if revenues[0].ID != last.ID || revenues[1].ID != first.ID {
		t.Errorf("unexpected revenues: %s, %s", revenues[0].DueDate, revenues[1].DueDate)
	}
}

func TestListRevenuesByPeriod(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Eva Prado")
	env.createRevenue(t, person.ID, 10, 0, "2025-03-01")
	env.createRevenue(t, person.ID, 10, 0, "2025-03-15")
	env.createRevenue(t, person.ID, 10, 0, "2025-03-31")
	env.createRevenue(t, person.ID, 10, 0, "2025-04-01")

	resp, err := env.revenues.ListRevenuesByPeriod(context.Background(), connect.NewRequest(&api.ListRevenuesByPeriodRequest{
		From: "2025-03-01",
		To:   "2025-03-31",
	}))
	if err != nil {
		t.Fatalf("ListRevenuesByPeriod failed: %v", err)
	}

	var dates []string
	for _, r := range resp.Msg.Revenues {
		dates = append(dates, r.DueDate)
	}
	want := []string{"2025-03-31", "2025-03-15", "2025-03-01"}
	if len(dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("expected %v, got %v", want, dates)
			break
		}
	}
}

func TestListRevenuesByPerson(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	alice := env.createPerson(t, "Alice")
	bob := env.createPerson(t, "Bob")
	env.createRevenue(t, alice.ID, 10, 0, "2025-01-05")
	env.createRevenue(t, alice.ID, 20, 0, "2025-01-06")
	env.createRevenue(t, bob.ID, 30, 0, "2025-01-07")

	resp, err := env.revenues.ListRevenuesByPerson(context.Background(), connect.NewRequest(&api.ListRevenuesByPersonRequest{
		PersonID: alice.ID,
	}))
	if err != nil {
		t.Fatalf("ListRevenuesByPerson failed: %v", err)
	}
	if len(resp.Msg.Revenues) != 2 {
		t.Fatalf("expected 2 revenues, got %d", len(resp.Msg.Revenues))
	}
	for _, r := range resp.Msg.Revenues {
		if r.PersonID != alice.ID {
			t.Errorf("revenue %s belongs to %s", r.ID, r.PersonID)
		}
	}
}

func TestDeleteRevenue(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Fábio")
	revenue := env.createRevenue(t, person.ID, 10, 0, "2025-01-05")

	if _, err := env.revenues.DeleteRevenue(context.Background(), connect.NewRequest(&api.IDRequest{ID: revenue.ID})); err != nil {
		t.Fatalf("DeleteRevenue failed: %v", err)
	}

	_, err := env.revenues.GetRevenue(context.Background(), connect.NewRequest(&api.IDRequest{ID: revenue.ID}))
	assertCode(t, err, connect.CodeNotFound)
}
