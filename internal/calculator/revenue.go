// Package calculator holds the pure aggregation logic behind billing,
// attendance and the dashboard. Money is summed with decimal arithmetic and
// converted back to float64 at the edges.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/ludus/internal/models"
)

// NetAmount is what the person owes for a revenue: Amount minus Discount.
// The result is not floored at zero.
func NetAmount(r *models.Revenue) float64 {
	return netDecimal(r).InexactFloat64()
}

// TotalNet sums the net amounts of revenues.
func TotalNet(revenues []*models.Revenue) float64 {
	total := decimal.Zero
	for _, r := range revenues {
		total = total.Add(netDecimal(r))
	}
	return total.InexactFloat64()
}

// TotalCosts sums the amounts of costs.
func TotalCosts(costs []*models.Cost) float64 {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(decimal.NewFromFloat(c.Amount))
	}
	return total.InexactFloat64()
}

// FilterRevenuesByStatus returns the revenues with the given status, in order.
func FilterRevenuesByStatus(revenues []*models.Revenue, status models.RevenueStatus) []*models.Revenue {
	var out []*models.Revenue
	for _, r := range revenues {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

func netDecimal(r *models.Revenue) decimal.Decimal {
	return decimal.NewFromFloat(r.Amount).Sub(decimal.NewFromFloat(r.Discount))
}
