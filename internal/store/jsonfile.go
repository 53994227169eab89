package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
)

// JSONFile persists the whole data set as one pretty-printed JSON document
// ({"orders": {...}, "customers": [...]}), the same layout the old flat-file
// server used. Every write rewrites the file; fine for a single register,
// useless beyond that.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

type jsonDoc struct {
	Orders    map[string]orders.Order `json:"orders"`
	Customers []customers.Customer    `json:"customers"`
}

func NewJSONFile(path string) (*JSONFile, error) {
	s := &JSONFile{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := s.write(jsonDoc{Orders: map[string]orders.Order{}, Customers: []customers.Customer{}}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *JSONFile) FetchAll(ctx context.Context) (Snapshot, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{Customers: doc.Customers}
	for _, o := range doc.Orders {
		snap.Orders = append(snap.Orders, o)
	}
	return snap, nil
}

func (s *JSONFile) SaveOrder(ctx context.Context, o orders.Order) error {
	_ = ctx
	return s.update(func(doc *jsonDoc) {
		doc.Orders[o.ID] = o
	})
}

func (s *JSONFile) DeleteOrder(ctx context.Context, id string) error {
	_ = ctx
	return s.update(func(doc *jsonDoc) {
		delete(doc.Orders, id)
	})
}

func (s *JSONFile) SaveCustomer(ctx context.Context, c customers.Customer) error {
	_ = ctx
	return s.update(func(doc *jsonDoc) {
		for i := range doc.Customers {
			if doc.Customers[i].ID == c.ID {
				doc.Customers[i] = c
				return
			}
		}
		doc.Customers = append(doc.Customers, c)
	})
}

func (s *JSONFile) DeleteCustomer(ctx context.Context, id string) error {
	_ = ctx
	return s.update(func(doc *jsonDoc) {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
				return
			}
		}
	})
}

func (s *JSONFile) update(fn func(*jsonDoc)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(&doc)
	return s.write(doc)
}

func (s *JSONFile) read() (jsonDoc, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return jsonDoc{}, err
	}
	doc := jsonDoc{Orders: map[string]orders.Order{}}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return jsonDoc{}, fmt.Errorf("jsonfile corrupt (%s): %w", s.path, err)
	}
	if doc.Orders == nil {
		doc.Orders = map[string]orders.Order{}
	}
	return doc, nil
}

func (s *JSONFile) write(doc jsonDoc) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	// write-then-rename so a crash mid-write can't corrupt the database
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONFile) String() string { return fmt.Sprintf("jsonfile(%s)", s.path) }
