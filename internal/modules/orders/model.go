package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the locale format the frontend always wrote order dates in.
// It is display text, not a sortable timestamp; reports re-parse the day part.
const DateLayout = "02/01/2006 15:04:05"

type Item struct {
	Product  string          `json:"produto"`
	Quantity int             `json:"quantidade"`
	Price    decimal.Decimal `json:"preco"`
}

type Order struct {
	ID     string `json:"id"`
	Number int    `json:"numero"`
	// Customer keeps the display name for history even if the customer
	// record is renamed or deleted later.
	Customer   string `json:"cliente"`
	CustomerID string `json:"customerId,omitempty"`
	Date       string `json:"data"`
	Items      []Item `json:"itens"`
	Finalized  bool   `json:"finalizado"`
	IsCopy     bool   `json:"isCopy,omitempty"`
}

func NowDate() string { return time.Now().Format(DateLayout) }
