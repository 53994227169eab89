package orders

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writerMock struct {
	mu      sync.Mutex
	saved   []Order
	deleted []string
}

func (w *writerMock) SaveOrder(o Order) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.saved = append(w.saved, o)
}

func (w *writerMock) DeleteOrder(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deleted = append(w.deleted, id)
}

type rendererMock struct {
	rendered []Order
}

func (r *rendererMock) Render(o Order) { r.rendered = append(r.rendered, o) }

func newTestService() (*Service, *writerMock, *rendererMock) {
	w := &writerMock{}
	r := &rendererMock{}
	return NewService(NewRepo(), w, r, slog.Default()), w, r
}

func TestStartAssignsSequentialNumbers(t *testing.T) {
	s, w, _ := newTestService()
	a := s.Start("c1", "Maria")
	b := s.Start("c1", "Maria")
	assert.Equal(t, 1, a.Number)
	assert.Equal(t, 2, b.Number)
	assert.False(t, a.Finalized)
	assert.Empty(t, a.Items)
	assert.Len(t, w.saved, 2)
}

func TestNumbersStayDistinctAfterDelete(t *testing.T) {
	s, _, _ := newTestService()
	a := s.Start("c1", "Maria")
	b := s.Start("c1", "Maria")
	require.NoError(t, s.Delete(a.ID))
	c := s.Start("c1", "Maria")
	assert.Equal(t, 3, c.Number)
	assert.NotEqual(t, b.Number, c.Number)
}

func TestFinalizeRendersReceiptOnce(t *testing.T) {
	s, _, r := newTestService()
	o := s.Start("c1", "Maria")
	_, err := s.AddItem(o.ID, item("Coca", 2, "5.00"))
	require.NoError(t, err)

	got, err := s.Finalize(o.ID)
	require.NoError(t, err)
	assert.True(t, got.Finalized)
	require.Len(t, r.rendered, 1)
	assert.Equal(t, o.ID, r.rendered[0].ID)
	assert.True(t, r.rendered[0].Finalized, "renderer must see the finalized snapshot")

	_, err = s.Finalize(o.ID)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Len(t, r.rendered, 1)
}

func TestFinalizeEmptyOrderRejected(t *testing.T) {
	s, _, r := newTestService()
	o := s.Start("c1", "Maria")
	_, err := s.Finalize(o.ID)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Empty(t, r.rendered)
}

func TestReprintRendersAgain(t *testing.T) {
	s, _, r := newTestService()
	o := s.Start("c1", "Maria")
	_, _ = s.AddItem(o.ID, item("Coca", 1, "5.00"))
	_, err := s.Finalize(o.ID)
	require.NoError(t, err)
	_, err = s.Reprint(o.ID)
	require.NoError(t, err)
	assert.Len(t, r.rendered, 2)
}

func TestReopenKeepsItemsAndNumber(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	_, _ = s.AddItem(o.ID, item("Coca", 2, "5.00"))
	_, _ = s.AddItem(o.ID, item("Suco", 1, "3.50"))
	fin, err := s.Finalize(o.ID)
	require.NoError(t, err)

	re, err := s.Reopen(o.ID)
	require.NoError(t, err)
	assert.False(t, re.Finalized)
	assert.Equal(t, fin.Number, re.Number)
	assert.Equal(t, fin.Items, re.Items)

	// editable again
	_, err = s.AddItem(o.ID, item("Pastel", 1, "7.00"))
	assert.NoError(t, err)
}

func TestReopenOpenOrderRejected(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	_, err := s.Reopen(o.ID)
	assert.ErrorIs(t, err, ErrNotFinalized)
}

func TestMutationsRejectedWhileFinalized(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	_, _ = s.AddItem(o.ID, item("Coca", 1, "5.00"))
	_, _ = s.Finalize(o.ID)

	_, err := s.AddItem(o.ID, item("Suco", 1, "3.00"))
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	_, _, err = s.AddBulk(o.ID, "2 Coca v5,00")
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	_, err = s.RemoveItem(o.ID, 0)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestAddBulkAppendsParsedItems(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	got, added, err := s.AddBulk(o.ID, "1 Pizza G v50,00 3 Suco v5,50")
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Pizza G", got.Items[0].Product)
}

func TestAddBulkNothingRecognizedLeavesOrderUntouched(t *testing.T) {
	s, w, _ := newTestService()
	o := s.Start("c1", "Maria")
	savedBefore := len(w.saved)

	got, added, err := s.AddBulk(o.ID, "5 NoPriceHere")
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Empty(t, got.Items)
	assert.Len(t, w.saved, savedBefore, "no write when nothing was added")
}

func TestRemoveItem(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	_, _ = s.AddItem(o.ID, item("A", 1, "1.00"))
	_, _ = s.AddItem(o.ID, item("B", 1, "2.00"))

	got, err := s.RemoveItem(o.ID, 0)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "B", got.Items[0].Product)

	_, err = s.RemoveItem(o.ID, 5)
	assert.ErrorIs(t, err, ErrItemOutOfRange)
}

func TestSetCopy(t *testing.T) {
	s, _, _ := newTestService()
	o := s.Start("c1", "Maria")
	got, err := s.SetCopy(o.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsCopy)
}

func TestDeleteIndependentOfFinalizedState(t *testing.T) {
	s, w, _ := newTestService()
	a := s.Start("c1", "Maria")
	b := s.Start("c1", "Maria")
	_, _ = s.AddItem(b.ID, item("Coca", 1, "5.00"))
	_, _ = s.Finalize(b.ID)

	require.NoError(t, s.Delete(a.ID))
	require.NoError(t, s.Delete(b.ID))
	assert.Equal(t, []string{a.ID, b.ID}, w.deleted)

	assert.ErrorIs(t, s.Delete(a.ID), ErrNotFound)
}

func TestListMostRecentFirst(t *testing.T) {
	s, _, _ := newTestService()
	s.Start("c1", "Maria")
	s.Start("c2", "João")
	s.Start("c3", "Ana")
	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].Number, got[1].Number, got[2].Number})
}
