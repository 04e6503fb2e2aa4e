package api

import "github.com/mmynk/ludus/internal/models"

type CreateCostRequest struct {
	Kind        models.CostKind `json:"kind" validate:"required,oneof=instructor_payment uniform general court_rental"`
	Description string          `json:"description" validate:"required"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateCostRequest struct {
	ID          string           `json:"id" validate:"required"`
	Kind        *models.CostKind `json:"kind,omitempty" validate:"omitempty,oneof=instructor_payment uniform general court_rental"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Amount      *float64         `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ListCostsByKindRequest struct {
	Kind models.CostKind `json:"kind" validate:"required,oneof=instructor_payment uniform general court_rental"`
}

type CostResponse struct {
	Cost *models.Cost `json:"cost"`
}

type CostListResponse struct {
	Costs []*models.Cost `json:"costs"`
}
