package api

import "github.com/mmynk/ludus/internal/models"

type CreateRevenueRequest struct {
	PersonID    string             `json:"personId" validate:"required"`
	Kind        models.RevenueKind `json:"kind" validate:"required,oneof=enrollment_fee monthly_fee uniform other"`
	Amount      float64            `json:"amount" validate:"gte=0"`
	DueDate     string             `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Reference   string             `json:"reference" validate:"omitempty,datetime=2006-01"`
	Description string             `json:"description"`
	// Discount defaults to 0 when omitted.
	Discount *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
}

type ListRevenuesByPersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type RevenueStatusRequest struct {
	Status models.RevenueStatus `json:"status" validate:"required,oneof=paid pending"`
}

// ListRevenuesByPeriodRequest selects revenues by due date, both ends inclusive.
type ListRevenuesByPeriodRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

type RevenueResponse struct {
	Revenue *models.Revenue `json:"revenue"`
}

type RevenueListResponse struct {
	Revenues []*models.Revenue `json:"revenues"`
}

type RevenueTotalResponse struct {
	Status models.RevenueStatus `json:"status"`
	// Total is the summed net amount (amount minus discount).
	Total float64 `json:"total"`
}
