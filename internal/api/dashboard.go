package api

import "github.com/mmynk/ludus/internal/models"

// MonthRequest selects a calendar month; an empty month means the current one.
type MonthRequest struct {
	Month string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type DashboardStatsResponse struct {
	Stats models.DashboardStats `json:"stats"`
}

type DelinquentListResponse struct {
	Delinquents []*models.Delinquent `json:"delinquents"`
}
