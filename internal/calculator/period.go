package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/ludus/internal/models"
)

// Month is a calendar month in a fixed location.
type Month struct {
	Year     int
	Month    time.Month
	Location *time.Location
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month(), Location: t.Location()}
}

// ParseMonth parses a "YYYY-MM" month reference in loc.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	t, err := time.ParseInLocation(models.MonthLayout, s, loc)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return MonthOf(t), nil
}

// Start is midnight of the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, m.location())
}

// End is midnight of the first day of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// FirstDay is the first date of the month (YYYY-MM-DD).
func (m Month) FirstDay() string {
	return m.Start().Format(models.DateLayout)
}

// LastDay is the last date of the month (YYYY-MM-DD).
func (m Month) LastDay() string {
	return m.End().AddDate(0, 0, -1).Format(models.DateLayout)
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return m.Start().Format(models.MonthLayout)
}

// ContainsUnix reports whether a Unix timestamp falls within the month.
func (m Month) ContainsUnix(ts int64) bool {
	return ts >= m.Start().Unix() && ts < m.End().Unix()
}

// ContainsDate reports whether a YYYY-MM-DD date falls within the month.
func (m Month) ContainsDate(date string) bool {
	return date >= m.FirstDay() && date <= m.LastDay()
}

func (m Month) location() *time.Location {
	if m.Location == nil {
		return time.Local
	}
	return m.Location
}

// DaysOverdue is the number of whole days between the due date and today,
// floored at zero. Unparseable due dates count as not overdue.
func DaysOverdue(dueDate string, today time.Time) int {
	due, err := time.ParseInLocation(models.DateLayout, dueDate, today.Location())
	if err != nil {
		return 0
	}
	days := int(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
