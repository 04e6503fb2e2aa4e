package models

// LockedScope selects which locked persons the dashboard counts.
type LockedScope string

const (
	// LockedScopeAll counts every locked person regardless of when they locked.
	LockedScopeAll LockedScope = "all"
	// LockedScopeMonth counts persons whose record was last updated in the month.
	LockedScopeMonth LockedScope = "month"
)

// DashboardStats are the headline numbers for one calendar month.
type DashboardStats struct {
	// Month is the month the stats cover ("YYYY-MM").
	Month string `json:"month"`

	// MonthRevenue is the net amount of paid revenues due in the month.
	MonthRevenue float64 `json:"monthRevenue"`

	// MonthCosts is the sum of costs dated in the month.
	MonthCosts float64 `json:"monthCosts"`

	// NetProfit is MonthRevenue minus MonthCosts.
	NetProfit float64 `json:"netProfit"`

	// NewStudents counts active persons created in the month.
	NewStudents int `json:"newStudents"`

	// LockedStudents counts locked persons, scoped by LockedScope.
	LockedStudents int         `json:"lockedStudents"`
	LockedScope    LockedScope `json:"lockedScope"`

	// DelinquentCount is the number of pending revenue records.
	DelinquentCount int `json:"delinquentCount"`
}

// Delinquent is a person with one or more pending revenues.
type Delinquent struct {
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	EnrollmentCode string `json:"enrollmentCode"`

	// AmountOwed is the summed net amount of the person's pending revenues.
	AmountOwed float64 `json:"amountOwed"`

	// DaysOverdue is the largest overdue day count across those revenues.
	DaysOverdue int `json:"daysOverdue"`

	// LastDueDate is the latest due date among those revenues.
	LastDueDate string `json:"lastDueDate"`
}
