package store

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
)

// Gorm persists each order as one row with its items embedded as a JSON
// column, keeping the document-per-order shape of the data.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db: db} }

// DB returns the underlying database connection for direct queries.
func (g *Gorm) DB() *gorm.DB { return g.db }

type orderRow struct {
	ID         string  `gorm:"primaryKey;type:char(36)"`
	Numero     int     `gorm:"not null;index:ix_orders_numero"`
	Cliente    string  `gorm:"type:varchar(255);not null"`
	CustomerID *string `gorm:"type:char(36);index:ix_orders_customer_id"`
	Data       string  `gorm:"type:varchar(32);not null"`
	Itens      datatypes.JSON
	Finalizado bool `gorm:"not null;index:ix_orders_finalizado"`
	IsCopy     bool `gorm:"not null"`
}

func (orderRow) TableName() string { return "orders" }

type customerRow struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	Name      string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(64)"`
	Email     string `gorm:"type:varchar(255)"`
	Notes     string `gorm:"type:text"`
	CreatedAt string `gorm:"type:varchar(32)"`
	// Position keeps the directory's registration order stable
	Position int64 `gorm:"autoIncrement;uniqueIndex:ux_customers_position"`
}

func (customerRow) TableName() string { return "customers" }

func (g *Gorm) FetchAll(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	var rows []orderRow
	if err := g.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return Snapshot{}, err
	}
	for _, r := range rows {
		o, err := r.toOrder()
		if err != nil {
			return Snapshot{}, err
		}
		snap.Orders = append(snap.Orders, o)
	}

	var crows []customerRow
	if err := g.db.WithContext(ctx).Order("position ASC").Find(&crows).Error; err != nil {
		return Snapshot{}, err
	}
	for _, r := range crows {
		snap.Customers = append(snap.Customers, customers.Customer{
			ID: r.ID, Name: r.Name, Phone: r.Phone, Email: r.Email,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		})
	}
	return snap, nil
}

func (g *Gorm) SaveOrder(ctx context.Context, o orders.Order) error {
	row, err := toOrderRow(o)
	if err != nil {
		return err
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

func (g *Gorm) DeleteOrder(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&orderRow{}, "id = ?", id).Error
}

func (g *Gorm) SaveCustomer(ctx context.Context, c customers.Customer) error {
	row := customerRow{
		ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email,
		Notes: c.Notes, CreatedAt: c.CreatedAt,
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "email", "notes", "created_at"}),
		}).
		Create(&row).Error
}

func (g *Gorm) DeleteCustomer(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&customerRow{}, "id = ?", id).Error
}

func toOrderRow(o orders.Order) (orderRow, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderRow{}, err
	}
	var customerID *string
	if o.CustomerID != "" {
		id := o.CustomerID
		customerID = &id
	}
	return orderRow{
		ID:         o.ID,
		Numero:     o.Number,
		Cliente:    o.Customer,
		CustomerID: customerID,
		Data:       o.Date,
		Itens:      datatypes.JSON(items),
		Finalizado: o.Finalized,
		IsCopy:     o.IsCopy,
	}, nil
}

func (r orderRow) toOrder() (orders.Order, error) {
	var items []orders.Item
	if len(r.Itens) > 0 {
		if err := json.Unmarshal(r.Itens, &items); err != nil {
			return orders.Order{}, err
		}
	}
	customerID := ""
	if r.CustomerID != nil {
		customerID = *r.CustomerID
	}
	return orders.Order{
		ID:         r.ID,
		Number:     r.Numero,
		Customer:   r.Cliente,
		CustomerID: customerID,
		Date:       r.Data,
		Items:      items,
		Finalized:  r.Finalizado,
		IsCopy:     r.IsCopy,
	}, nil
}
