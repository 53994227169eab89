package customers

import (
	"strings"

	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/modules/orders"
)

// Stats is derived on demand, never stored.
type Stats struct {
	TotalOrders   int
	TotalSpent    decimal.Decimal
	LastOrderDate string
	History       []orders.Order
}

// StatsFor aggregates a customer's finalized orders. Orders carrying the
// customer id are matched by id; orders from before the id link existed
// fall back to a case-insensitive name match.
func StatsFor(c Customer, all []orders.Order) Stats {
	st := Stats{TotalSpent: decimal.Zero, LastOrderDate: "-"}

	for _, o := range all {
		if !o.Finalized || !belongsTo(c, o) {
			continue
		}
		st.TotalOrders++
		st.TotalSpent = st.TotalSpent.Add(o.Total())
		st.History = append(st.History, o)
	}

	// "last" means the highest sequence number, not the lexically
	// greatest date string
	best := -1
	for _, o := range st.History {
		if o.Number > best {
			best = o.Number
			st.LastOrderDate = o.Date
		}
	}
	return st
}

func belongsTo(c Customer, o orders.Order) bool {
	if o.CustomerID != "" {
		return o.CustomerID == c.ID
	}
	return strings.EqualFold(o.Customer, c.Name)
}
