package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/ludus/internal/models"
)

// AttendanceRate computes present/total × 100 rounded to 2 decimals.
// It returns a zero rate for an empty record set.
func AttendanceRate(records []*models.Attendance) models.AttendanceRate {
	summary := models.AttendanceRate{TotalClasses: len(records)}
	for _, r := range records {
		if r.Present {
			summary.PresentCount++
		}
	}
	if summary.TotalClasses == 0 {
		return summary
	}

	rate := decimal.NewFromInt(int64(summary.PresentCount)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(summary.TotalClasses))).
		Round(2)
	summary.Rate = rate.InexactFloat64()
	return summary
}
