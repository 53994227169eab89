package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"comercialsoares.com/app/internal/modules/orders"
)

func finalized(num int, date string, items ...orders.Item) orders.Order {
	return orders.Order{ID: date, Number: num, Customer: "Maria", Date: date, Items: items, Finalized: true}
}

func it(qty int, price string) orders.Item {
	return orders.Item{Product: "p", Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestSummarizeAllTime(t *testing.T) {
	all := []orders.Order{
		finalized(2, "10/03/2025 12:00:00", it(2, "10.00"), it(1, "5.50")),
		finalized(1, "01/03/2025 09:00:00", it(3, "0.99")),
	}
	s := Summarize(all, Period{All: true})
	assert.Equal(t, 2, s.OrderCount)
	assert.Equal(t, 6, s.ItemsSold)
	assert.Equal(t, "28.47", s.Revenue.StringFixed(2))
	assert.Equal(t, "14.24", s.AverageTicket.StringFixed(2))
}

func TestSummarizeFiltersByPeriod(t *testing.T) {
	all := []orders.Order{
		finalized(3, "15/03/2025 12:00:00", it(1, "30.00")),
		finalized(2, "10/03/2025 12:00:00", it(1, "20.00")),
		finalized(1, "28/02/2025 12:00:00", it(1, "10.00")),
	}
	p := Resolve(PresetCustom, "2025-03-01", "2025-03-12", today)
	s := Summarize(all, p)
	assert.Equal(t, 1, s.OrderCount)
	assert.Equal(t, "20.00", s.Revenue.StringFixed(2))
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	all := []orders.Order{finalized(1, "10/03/2025 12:00:00", it(1, "20.00"))}
	p := Resolve(PresetCustom, "2025-03-20", "2025-03-10", today)
	s := Summarize(all, p)
	assert.Zero(t, s.OrderCount)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.AverageTicket.IsZero(), "empty period must average to zero, not divide by zero")
}

func TestSummarizeSkipsUnparseableDatesWhenFiltering(t *testing.T) {
	all := []orders.Order{
		finalized(2, "not-a-date", it(1, "50.00")),
		finalized(1, "10/03/2025 12:00:00", it(1, "20.00")),
	}
	p := Resolve(PresetMonth, "", "", today)
	s := Summarize(all, p)
	assert.Equal(t, 1, s.OrderCount)

	// all-time still counts them
	s = Summarize(all, Period{All: true})
	assert.Equal(t, 2, s.OrderCount)
}

func TestSummarizePreservesInputOrder(t *testing.T) {
	all := []orders.Order{
		finalized(2, "10/03/2025 12:00:00", it(1, "20.00")),
		finalized(1, "01/03/2025 09:00:00", it(1, "10.00")),
	}
	s := Summarize(all, Period{All: true})
	assert.Equal(t, 2, s.Orders[0].Number)
	assert.Equal(t, 1, s.Orders[1].Number)
}
