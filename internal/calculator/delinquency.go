package calculator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/ludus/internal/models"
)

// GroupDelinquents groups pending revenues by person. Each entry sums the
// net amounts owed and keeps the largest overdue day count. Name and
// EnrollmentCode are left for the caller to fill in. Entries are sorted by
// amount owed, largest first.
func GroupDelinquents(pending []*models.Revenue, today time.Time) []*models.Delinquent {
	byPerson := make(map[string]*models.Delinquent)
	owed := make(map[string]decimal.Decimal)
	var order []string

	for _, r := range pending {
		if r.Status != models.RevenuePending {
			continue
		}
		d, ok := byPerson[r.PersonID]
		if !ok {
			d = &models.Delinquent{PersonID: r.PersonID, LastDueDate: r.DueDate}
			byPerson[r.PersonID] = d
			owed[r.PersonID] = decimal.Zero
			order = append(order, r.PersonID)
		}

		owed[r.PersonID] = owed[r.PersonID].Add(netDecimal(r))
		if days := DaysOverdue(r.DueDate, today); days > d.DaysOverdue {
			d.DaysOverdue = days
		}
		if r.DueDate > d.LastDueDate {
			d.LastDueDate = r.DueDate
		}
	}

	out := make([]*models.Delinquent, 0, len(order))
	for _, personID := range order {
		d := byPerson[personID]
		d.AmountOwed = owed[personID].InexactFloat64()
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AmountOwed > out[j].AmountOwed
	})
	return out
}
