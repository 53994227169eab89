package store

import (
	"context"
	"log/slog"
	"time"

	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
)

// Queue applies writes to persistence in the background so handlers never
// block on the database. A single worker drains a FIFO, which preserves
// per-entity write order and keeps last-write-wins deterministic. A failed
// write is logged and dropped; the in-memory state is not rolled back.
type Queue struct {
	p       Persistence
	log     *slog.Logger
	jobs    chan job
	done    chan struct{}
	timeout time.Duration
}

type job struct {
	op string
	id string
	fn func(ctx context.Context) error
}

func NewQueue(p Persistence, l *slog.Logger) *Queue {
	q := &Queue{
		p:       p,
		log:     l,
		jobs:    make(chan job, 256),
		done:    make(chan struct{}),
		timeout: 10 * time.Second,
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for j := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		if err := j.fn(ctx); err != nil {
			q.log.Error("persist_failed", "op", j.op, "id", j.id, "err", err)
		}
		cancel()
	}
}

// Close drains pending writes and stops the worker. Call after the HTTP
// server has stopped accepting requests.
func (q *Queue) Close() {
	close(q.jobs)
	<-q.done
}

func (q *Queue) enqueue(op, id string, fn func(ctx context.Context) error) {
	q.jobs <- job{op: op, id: id, fn: fn}
}

// SaveOrder and DeleteOrder satisfy orders.Writer.

func (q *Queue) SaveOrder(o orders.Order) {
	q.enqueue("save_order", o.ID, func(ctx context.Context) error {
		return q.p.SaveOrder(ctx, o)
	})
}

func (q *Queue) DeleteOrder(id string) {
	q.enqueue("delete_order", id, func(ctx context.Context) error {
		return q.p.DeleteOrder(ctx, id)
	})
}

func (q *Queue) SaveCustomer(c customers.Customer) {
	q.enqueue("save_customer", c.ID, func(ctx context.Context) error {
		return q.p.SaveCustomer(ctx, c)
	})
}

func (q *Queue) DeleteCustomer(id string) {
	q.enqueue("delete_customer", id, func(ctx context.Context) error {
		return q.p.DeleteCustomer(ctx, id)
	})
}
