package customers

import (
	"strings"
	"sync"
)

// Repo keeps the customer directory in memory as an ordered list.
// Save has append-or-replace-by-id semantics so the registration order of
// the directory is stable across edits.
type Repo struct {
	mu   sync.RWMutex
	list []Customer
}

func NewRepo() *Repo { return &Repo{} }

func (r *Repo) Load(all []Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append([]Customer(nil), all...)
}

func (r *Repo) Get(id string) (Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.list {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

func (r *Repo) Save(c Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.list {
		if r.list[i].ID == c.ID {
			r.list[i] = c
			return
		}
	}
	r.list = append(r.list, c)
}

func (r *Repo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.list {
		if r.list[i].ID == id {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Repo) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Customer(nil), r.list...)
}

// Search filters the directory by case-insensitive name substring.
func (r *Repo) Search(term string) []Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	all := r.List()
	if term == "" {
		return all
	}
	out := all[:0]
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}
