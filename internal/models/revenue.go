package models

// RevenueKind classifies what a revenue charges for.
type RevenueKind string

const (
	RevenueEnrollmentFee RevenueKind = "enrollment_fee"
	RevenueMonthlyFee    RevenueKind = "monthly_fee"
	RevenueUniform       RevenueKind = "uniform"
	RevenueOther         RevenueKind = "other"
)

// RevenueStatus is the payment state of a revenue.
type RevenueStatus string

const (
	RevenuePaid    RevenueStatus = "paid"
	RevenuePending RevenueStatus = "pending"
)

// Revenue represents a billable charge owed by a person.
type Revenue struct {
	// ID is the unique identifier for the revenue (UUID format).
	ID string `json:"id"`

	// PersonID is the person being charged.
	PersonID string `json:"personId"`

	Kind   RevenueKind   `json:"kind"`
	Amount float64       `json:"amount"`
	Status RevenueStatus `json:"status"`

	// DueDate is the date the charge is due (YYYY-MM-DD).
	DueDate string `json:"dueDate"`

	// PaidDate is set when the revenue is marked as paid.
	PaidDate string `json:"paidDate,omitempty"`

	// Reference is the billing period the charge refers to (e.g., "2025-10").
	Reference string `json:"reference"`

	Description string `json:"description"`

	// Discount is subtracted from Amount to obtain the amount owed.
	Discount float64 `json:"discount"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}
