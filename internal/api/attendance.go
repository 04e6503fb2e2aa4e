package api

import "github.com/mmynk/ludus/internal/models"

type RegisterAttendanceRequest struct {
	ClassID  string `json:"classId" validate:"required"`
	PersonID string `json:"personId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Present  bool   `json:"present"`
	Note     string `json:"note,omitempty"`
}

type ClassDateRequest struct {
	ClassID string `json:"classId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ListAttendanceByPersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type ListAttendanceByClassRequest struct {
	ClassID string `json:"classId" validate:"required"`
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"id" validate:"required"`
	ClassID  *string `json:"classId,omitempty" validate:"omitempty,min=1"`
	PersonID *string `json:"personId,omitempty" validate:"omitempty,min=1"`
	Date     *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Present  *bool   `json:"present,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// AttendanceRateRequest limits the rate to an optional, inclusive date range.
type AttendanceRateRequest struct {
	PersonID string `json:"personId" validate:"required"`
	From     string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type AttendanceResponse struct {
	Attendance *models.Attendance `json:"attendance"`
	// Created is false when an existing record for the same class, person
	// and date was updated instead.
	Created bool `json:"created"`
}

type AttendanceListResponse struct {
	Records []*models.Attendance `json:"records"`
}

type AttendanceRateResponse struct {
	PersonID string                `json:"personId"`
	Rate     models.AttendanceRate `json:"rate"`
}
