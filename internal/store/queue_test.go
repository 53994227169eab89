package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
)

type recordingPersistence struct {
	mu   sync.Mutex
	ops  []string
	fail map[string]error
}

func (r *recordingPersistence) record(op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	if err, ok := r.fail[op]; ok {
		return err
	}
	return nil
}

func (r *recordingPersistence) FetchAll(context.Context) (Snapshot, error) { return Snapshot{}, nil }
func (r *recordingPersistence) SaveOrder(_ context.Context, o orders.Order) error {
	return r.record("save_order:" + o.ID)
}
func (r *recordingPersistence) DeleteOrder(_ context.Context, id string) error {
	return r.record("delete_order:" + id)
}
func (r *recordingPersistence) SaveCustomer(_ context.Context, c customers.Customer) error {
	return r.record("save_customer:" + c.ID)
}
func (r *recordingPersistence) DeleteCustomer(_ context.Context, id string) error {
	return r.record("delete_customer:" + id)
}

func TestQueuePreservesWriteOrder(t *testing.T) {
	p := &recordingPersistence{}
	q := NewQueue(p, slog.Default())

	q.SaveOrder(orders.Order{ID: "o1"})
	q.SaveOrder(orders.Order{ID: "o1"})
	q.DeleteOrder("o1")
	q.SaveCustomer(customers.Customer{ID: "c1"})
	q.DeleteCustomer("c1")
	q.Close()

	require.Equal(t, []string{
		"save_order:o1",
		"save_order:o1",
		"delete_order:o1",
		"save_customer:c1",
		"delete_customer:c1",
	}, p.ops)
}

func TestQueueFailureDoesNotStopWorker(t *testing.T) {
	p := &recordingPersistence{fail: map[string]error{
		"save_order:bad": errors.New("disk on fire"),
	}}
	q := NewQueue(p, slog.Default())

	q.SaveOrder(orders.Order{ID: "bad"})
	q.SaveOrder(orders.Order{ID: "good"})
	q.Close()

	assert.Equal(t, []string{"save_order:bad", "save_order:good"}, p.ops)
}

func TestQueueCloseDrainsPendingJobs(t *testing.T) {
	p := &recordingPersistence{}
	q := NewQueue(p, slog.Default())
	for i := 0; i < 100; i++ {
		q.SaveOrder(orders.Order{ID: "o"})
	}
	q.Close()
	assert.Len(t, p.ops, 100)
}
