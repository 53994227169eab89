package orders

import (
	"sort"
	"sync"
)

// Repo is the authoritative in-memory order store. The whole working set is
// loaded at boot and every mutation is mirrored to persistence through the
// write queue, so reads never touch the database.
type Repo struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewRepo() *Repo {
	return &Repo{orders: make(map[string]Order)}
}

// Load replaces the working set. Called once at boot with the persisted
// snapshot.
func (r *Repo) Load(all []Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = make(map[string]Order, len(all))
	for _, o := range all {
		r.orders[o.ID] = o
	}
}

func (r *Repo) Get(id string) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	return o, ok
}

func (r *Repo) Upsert(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
}

// Create assigns the next sequence number and inserts under a single lock
// so numbers stay distinct even with deletions in between.
func (r *Repo) Create(o Order) Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, ex := range r.orders {
		if ex.Number > max {
			max = ex.Number
		}
	}
	o.Number = max + 1
	r.orders[o.ID] = o
	return o
}

func (r *Repo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return false
	}
	delete(r.orders, id)
	return true
}

// List returns all orders, most recent first (sequence number descending).
// Map iteration order is meaningless, so sorting is always explicit.
func (r *Repo) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out
}

// Finalized returns finalized orders, most recent first.
func (r *Repo) Finalized() []Order {
	all := r.List()
	out := all[:0]
	for _, o := range all {
		if o.Finalized {
			out = append(out, o)
		}
	}
	return out
}

func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
