package orders

import (
	"log/slog"

	"github.com/google/uuid"
)

// Writer mirrors repo mutations to persistence. Calls never block and never
// fail from the caller's point of view; the in-memory state stays
// authoritative and persistence errors are logged downstream.
type Writer interface {
	SaveOrder(o Order)
	DeleteOrder(id string)
}

// Renderer produces the receipt document for a finalized order snapshot.
type Renderer interface {
	Render(o Order)
}

type Service struct {
	repo     *Repo
	writer   Writer
	renderer Renderer
	log      *slog.Logger
}

func NewService(repo *Repo, w Writer, r Renderer, l *slog.Logger) *Service {
	return &Service{repo: repo, writer: w, renderer: r, log: l}
}

// Start opens an empty sale for the given customer. The name is copied onto
// the order so history survives customer renames and deletions.
func (s *Service) Start(customerID, customerName string) Order {
	o := Order{
		ID:         uuid.NewString(),
		Customer:   customerName,
		CustomerID: customerID,
		Date:       NowDate(),
		Items:      []Item{},
		Finalized:  false,
		IsCopy:     false,
	}
	o = s.repo.Create(o)
	s.writer.SaveOrder(o)
	s.log.Info("order_started", "order_id", o.ID, "numero", o.Number, "cliente", o.Customer)
	return o
}

func (s *Service) Get(id string) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) List() []Order          { return s.repo.List() }
func (s *Service) ListFinalized() []Order { return s.repo.Finalized() }

func (s *Service) AddItem(id string, it Item) (Order, error) {
	return s.mutateOpen(id, func(o *Order) error {
		o.Items = append(o.Items, it)
		return nil
	})
}

// AddBulk parses pasted text and appends the recognized items. When nothing
// is recognized the order is left untouched so the caller can keep the
// paste buffer intact.
func (s *Service) AddBulk(id string, text string) (Order, int, error) {
	items, skipped := ParseBulk(text)
	if len(items) == 0 {
		o, err := s.Get(id)
		return o, 0, err
	}
	o, err := s.mutateOpen(id, func(o *Order) error {
		o.Items = append(o.Items, items...)
		return nil
	})
	if err == nil && skipped > 0 {
		s.log.Warn("bulk_paste_partial", "order_id", id, "added", len(items), "skipped", skipped)
	}
	return o, len(items), err
}

func (s *Service) RemoveItem(id string, index int) (Order, error) {
	return s.mutateOpen(id, func(o *Order) error {
		if index < 0 || index >= len(o.Items) {
			return ErrItemOutOfRange
		}
		o.Items = append(o.Items[:index], o.Items[index+1:]...)
		return nil
	})
}

// SetCopy toggles the duplicate/reprint marker printed on every receipt page.
func (s *Service) SetCopy(id string, isCopy bool) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	o.IsCopy = isCopy
	s.repo.Upsert(o)
	s.writer.SaveOrder(o)
	return o, nil
}

// Finalize marks the order complete and renders its receipt exactly once
// with the snapshot taken here.
func (s *Service) Finalize(id string) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	if o.Finalized {
		return Order{}, ErrAlreadyFinalized
	}
	if len(o.Items) == 0 {
		return Order{}, ErrNoItems
	}
	o.Finalized = true
	s.repo.Upsert(o)
	s.writer.SaveOrder(o)
	s.renderer.Render(o)
	s.log.Info("order_finalized", "order_id", o.ID, "numero", o.Number, "total", o.Total().StringFixed(2))
	return o, nil
}

// Reprint re-renders the receipt for an already finalized order.
func (s *Service) Reprint(id string) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	if !o.Finalized {
		return Order{}, ErrNotFinalized
	}
	s.renderer.Render(o)
	return o, nil
}

// Reopen reverts a finalized order to edit mode. Items and the sequence
// number are kept as they are.
func (s *Service) Reopen(id string) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	if !o.Finalized {
		return Order{}, ErrNotFinalized
	}
	o.Finalized = false
	s.repo.Upsert(o)
	s.writer.SaveOrder(o)
	s.log.Info("order_reopened", "order_id", o.ID, "numero", o.Number)
	return o, nil
}

// Delete removes an order regardless of its finalized state.
func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	s.writer.DeleteOrder(id)
	return nil
}

func (s *Service) mutateOpen(id string, fn func(*Order) error) (Order, error) {
	o, ok := s.repo.Get(id)
	if !ok {
		return Order{}, ErrNotFound
	}
	if o.Finalized {
		return Order{}, ErrAlreadyFinalized
	}
	if err := fn(&o); err != nil {
		return Order{}, err
	}
	s.repo.Upsert(o)
	s.writer.SaveOrder(o)
	return o, nil
}
