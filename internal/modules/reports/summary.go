package reports

import (
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/modules/orders"
)

type Summary struct {
	Revenue       decimal.Decimal
	OrderCount    int
	ItemsSold     int
	AverageTicket decimal.Decimal
	Orders        []orders.Order
}

// Summarize filters finalized orders by period and aggregates revenue,
// order count, item quantity and average ticket. Input should already be
// finalized orders sorted most recent first; the filtered slice keeps that
// order for display.
func Summarize(finalized []orders.Order, p Period) Summary {
	s := Summary{Revenue: decimal.Zero, AverageTicket: decimal.Zero}

	for _, o := range finalized {
		if !p.All {
			day, ok := ParseOrderDate(o.Date)
			if !ok || !p.Contains(day) {
				continue
			}
		}
		s.OrderCount++
		s.ItemsSold += o.ItemCount()
		s.Revenue = s.Revenue.Add(o.Total())
		s.Orders = append(s.Orders, o)
	}

	// average is zero for an empty period, never a division error
	if s.OrderCount > 0 {
		s.AverageTicket = s.Revenue.Div(decimal.NewFromInt(int64(s.OrderCount)))
	}
	return s
}
