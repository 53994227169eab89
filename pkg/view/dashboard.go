package view

import (
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/modules/reports"
)

type Dashboard struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	RevenueText   string          `json:"totalRevenueFormatado"`
	TotalOrders   int             `json:"totalOrders"`
	ItemsSold     int             `json:"totalItemsSold"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	AverageText   string          `json:"averageTicketFormatado"`
	Orders        []Order         `json:"orders"`
}

func NewDashboard(s reports.Summary) Dashboard {
	return Dashboard{
		TotalRevenue:  s.Revenue,
		RevenueText:   Money(s.Revenue),
		TotalOrders:   s.OrderCount,
		ItemsSold:     s.ItemsSold,
		AverageTicket: s.AverageTicket.Round(2),
		AverageText:   Money(s.AverageTicket),
		Orders:        NewOrders(s.Orders),
	}
}
