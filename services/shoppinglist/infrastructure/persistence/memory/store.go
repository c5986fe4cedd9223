// Package memory is an in-process implementation of the shopping list store.
// It backs STORE_BACKEND=memory for local development and the service and
// handler tests. Records are copied on the way in and out so callers never
// share mutable state with the store.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
)

type itemKey struct {
	listID uuid.UUID
	itemID uuid.UUID
}

// Store holds lists, items and receipts in maps guarded by one RWMutex.
type Store struct {
	mu       sync.RWMutex
	lists    map[uuid.UUID]*models.List
	items    map[itemKey]*models.Item
	receipts map[uuid.UUID]*models.Receipt
}

var _ repositories.Store = (*Store)(nil)

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		lists:    make(map[uuid.UUID]*models.List),
		items:    make(map[itemKey]*models.Item),
		receipts: make(map[uuid.UUID]*models.Receipt),
	}
}

func (s *Store) Lists() repositories.ListRepository       { return listRepo{s} }
func (s *Store) Items() repositories.ItemRepository       { return itemRepo{s} }
func (s *Store) Receipts() repositories.ReceiptRepository { return receiptRepo{s} }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

func cloneItem(i *models.Item) *models.Item {
	c := *i
	c.ItemDetails = slices.Clone(i.ItemDetails)
	if i.Cost != nil {
		v := *i.Cost
		c.Cost = &v
	}
	if i.PurchasedAt != nil {
		v := *i.PurchasedAt
		c.PurchasedAt = &v
	}
	return &c
}

func cloneReceipt(r *models.Receipt) *models.Receipt {
	c := *r
	return &c
}

type listRepo struct{ s *Store }

func (r listRepo) Create(_ context.Context, l *models.List) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lists[l.ID] = l.Clone()
	return nil
}

func (r listRepo) Get(_ context.Context, id uuid.UUID) (*models.List, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lists[id]
	if !ok {
		return nil, domain.ErrListNotFound
	}
	return l.Clone(), nil
}

func (r listRepo) UpdateMembers(_ context.Context, l *models.List, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.lists[l.ID]
	if !ok {
		return domain.ErrListNotFound
	}
	if cur.Version != expectedVersion {
		return domain.ErrConflict
	}
	next := cur.Clone()
	next.AllowedUsers = slices.Clone(l.AllowedUsers)
	next.Version = expectedVersion + 1
	r.s.lists[l.ID] = next
	l.Version = next.Version
	return nil
}

func (r listRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.lists, id)
	return nil
}

func (r listRepo) ListByMember(_ context.Context, userID string) ([]*models.List, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*models.List
	for _, l := range r.s.lists {
		if l.IsMember(userID) {
			out = append(out, l.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type itemRepo struct{ s *Store }

func (r itemRepo) Create(_ context.Context, i *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[itemKey{i.ListID, i.ID}] = cloneItem(i)
	return nil
}

func (r itemRepo) Get(_ context.Context, listID, itemID uuid.UUID) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.items[itemKey{listID, itemID}]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return cloneItem(i), nil
}

func (r itemRepo) MarkPurchased(_ context.Context, listID, itemID uuid.UUID, p models.Purchase, expectedVersion *int64) (*models.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.items[itemKey{listID, itemID}]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if expectedVersion != nil && cur.Version != *expectedVersion {
		return nil, domain.ErrConflict
	}
	next := cloneItem(cur)
	next.Apply(p)
	next.Version = cur.Version + 1
	r.s.items[itemKey{listID, itemID}] = next
	return cloneItem(next), nil
}

func (r itemRepo) Delete(_ context.Context, listID, itemID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, itemKey{listID, itemID})
	return nil
}

func (r itemRepo) ListByList(_ context.Context, listID uuid.UUID) ([]*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*models.Item
	for k, i := range r.s.items {
		if k.listID == listID {
			out = append(out, cloneItem(i))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].AddedAt.Before(out[b].AddedAt) })
	return out, nil
}

type receiptRepo struct{ s *Store }

func (r receiptRepo) Create(_ context.Context, rc *models.Receipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.receipts[rc.ID] = cloneReceipt(rc)
	return nil
}

func (r receiptRepo) Get(_ context.Context, id uuid.UUID) (*models.Receipt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rc, ok := r.s.receipts[id]
	if !ok {
		return nil, domain.ErrReceiptNotFound
	}
	return cloneReceipt(rc), nil
}

func (r receiptRepo) ListByList(_ context.Context, listID uuid.UUID) ([]*models.Receipt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*models.Receipt
	for _, rc := range r.s.receipts {
		if rc.ListID == listID {
			out = append(out, cloneReceipt(rc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r receiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.receipts, id)
	return nil
}
