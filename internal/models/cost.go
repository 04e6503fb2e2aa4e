package models

// CostKind classifies a school expense.
type CostKind string

const (
	CostInstructorPayment CostKind = "instructor_payment"
	CostUniform           CostKind = "uniform"
	CostGeneral           CostKind = "general"
	CostCourtRental       CostKind = "court_rental"
)

// Cost represents a school expense. Costs are not tied to a person.
type Cost struct {
	ID          string   `json:"id"`
	Kind        CostKind `json:"kind"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`

	// Date is the date the expense was incurred (YYYY-MM-DD).
	Date string `json:"date"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CostPatch holds the fields of a partial cost update.
type CostPatch struct {
	Kind        *CostKind
	Description *string
	Amount      *float64
	Date        *string
}

// Apply merges the set fields of the patch into c.
func (patch CostPatch) Apply(c *Cost) {
	if patch.Kind != nil {
		c.Kind = *patch.Kind
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Amount != nil {
		c.Amount = *patch.Amount
	}
	if patch.Date != nil {
		c.Date = *patch.Date
	}
}
