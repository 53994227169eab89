package store

import (
	"context"

	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
)

// Snapshot is the whole persisted working set, loaded once at boot.
type Snapshot struct {
	Orders    []orders.Order
	Customers []customers.Customer
}

// Persistence is the durable side of the store. The in-memory repos stay
// authoritative; implementations are only ever called from the write queue
// (or at boot) and their failures are logged, not surfaced.
type Persistence interface {
	FetchAll(ctx context.Context) (Snapshot, error)
	SaveOrder(ctx context.Context, o orders.Order) error
	DeleteOrder(ctx context.Context, id string) error
	SaveCustomer(ctx context.Context, c customers.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}
