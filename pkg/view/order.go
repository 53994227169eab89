package view

import (
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/modules/orders"
)

type OrderItem struct {
	Product   string          `json:"produto"`
	Quantity  int             `json:"quantidade"`
	Price     decimal.Decimal `json:"preco"`
	LineTotal string          `json:"total"`
}

type Order struct {
	ID         string          `json:"id"`
	Number     int             `json:"numero"`
	Customer   string          `json:"cliente"`
	CustomerID string          `json:"customerId,omitempty"`
	Date       string          `json:"data"`
	Items      []OrderItem     `json:"itens"`
	Finalized  bool            `json:"finalizado"`
	IsCopy     bool            `json:"isCopy"`
	Total      decimal.Decimal `json:"total"`
	TotalText  string          `json:"totalFormatado"`
}

func NewOrder(o orders.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			Product:   it.Product,
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: Money(it.LineTotal()),
		}
	}
	total := o.Total()
	return Order{
		ID:         o.ID,
		Number:     o.Number,
		Customer:   o.Customer,
		CustomerID: o.CustomerID,
		Date:       o.Date,
		Items:      items,
		Finalized:  o.Finalized,
		IsCopy:     o.IsCopy,
		Total:      total,
		TotalText:  Money(total),
	}
}

func NewOrders(list []orders.Order) []Order {
	out := make([]Order, len(list))
	for i, o := range list {
		out[i] = NewOrder(o)
	}
	return out
}
