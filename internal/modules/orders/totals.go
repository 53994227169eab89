package orders

import "github.com/shopspring/decimal"

// LineTotal is quantity × unit price at full precision. Rounding to two
// digits happens only at presentation time so long orders don't accumulate
// rounding error.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// ItemCount is the summed quantity across all line items.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
