package view

import (
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/modules/customers"
)

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

type CustomerStats struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	TotalText     string          `json:"totalSpentFormatado"`
	LastOrderDate string          `json:"lastOrderDate"`
	History       []Order         `json:"history"`
}

func NewCustomer(c customers.Customer) Customer {
	return Customer{
		ID: c.ID, Name: c.Name, Phone: c.Phone,
		Email: c.Email, Notes: c.Notes, CreatedAt: c.CreatedAt,
	}
}

func NewCustomers(list []customers.Customer) []Customer {
	out := make([]Customer, len(list))
	for i, c := range list {
		out[i] = NewCustomer(c)
	}
	return out
}

func NewCustomerStats(st customers.Stats) CustomerStats {
	return CustomerStats{
		TotalOrders:   st.TotalOrders,
		TotalSpent:    st.TotalSpent,
		TotalText:     Money(st.TotalSpent),
		LastOrderDate: st.LastOrderDate,
		History:       NewOrders(st.History),
	}
}
