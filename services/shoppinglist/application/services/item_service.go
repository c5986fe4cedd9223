package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/services"
)

// AddItemInput carries the parameters of ItemService.Add.
type AddItemInput struct {
	ListID   uuid.UUID
	Name     string
	Quantity int // 0 means 1
	Unit     string
	AddedBy  string
}

// PurchaseInput carries the parameters of ItemService.MarkPurchased.
type PurchaseInput struct {
	ListID      uuid.UUID
	ItemID      uuid.UUID
	PurchasedBy string
	Cost        *float64
	ItemDetails json.RawMessage
	// ExpectedVersion, when set, makes the write fail with ErrConflict unless
	// the stored item is still at that version.
	ExpectedVersion *int64
}

// ItemService manages items within a list. Every operation first checks that
// the caller is a member of the list through ListService.
type ItemService struct {
	items repositories.ItemRepository
	lists *ListService
}

// NewItemService returns an ItemService.
func NewItemService(items repositories.ItemRepository, lists *ListService) *ItemService {
	return &ItemService{items: items, lists: lists}
}

// Add validates and persists a new unpurchased item.
func (s *ItemService) Add(ctx context.Context, in AddItemInput) (item *models.Item, err error) {
	defer func() { record(ctx, "item.add", err) }()

	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := domainsvcs.ValidateName(name.String()); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	qty, err := models.NewQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}

	if _, err := s.lists.Get(ctx, in.ListID, in.AddedBy); err != nil {
		return nil, err
	}

	item, err = models.NewItem(in.ListID, name, qty, in.Unit, in.AddedBy)
	if err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, domain.Op("item.add", item.ID.String(), domain.Dependency(err))
	}
	return item, nil
}

// MarkPurchased overwrites the item's purchase state. Without ExpectedVersion
// the last writer wins.
func (s *ItemService) MarkPurchased(ctx context.Context, in PurchaseInput) (item *models.Item, err error) {
	defer func() { record(ctx, "item.mark_purchased", err) }()

	p, err := models.NewPurchase(in.PurchasedBy, in.Cost, in.ItemDetails)
	if err != nil {
		return nil, err
	}
	if _, err := s.lists.Get(ctx, in.ListID, in.PurchasedBy); err != nil {
		return nil, err
	}

	item, err = s.items.MarkPurchased(ctx, in.ListID, in.ItemID, p, in.ExpectedVersion)
	if err != nil {
		return nil, domain.Op("item.mark_purchased", in.ItemID.String(), domain.Dependency(err))
	}
	return item, nil
}

// Remove deletes an item. Removing an absent item, or an item of a list that
// no longer exists, succeeds.
func (s *ItemService) Remove(ctx context.Context, listID, itemID uuid.UUID, requestingUserID string) (err error) {
	defer func() { record(ctx, "item.remove", err) }()

	if _, err := s.lists.Get(ctx, listID, requestingUserID); err != nil {
		if domain.Kind(err) == domain.KindNotFound {
			return nil
		}
		return err
	}

	err = retryDo(ctx, func(ctx context.Context) error {
		return s.items.Delete(ctx, listID, itemID)
	})
	if err != nil {
		return domain.Op("item.remove", itemID.String(), domain.Dependency(err))
	}
	return nil
}

// List returns the items of a list, oldest first.
func (s *ItemService) List(ctx context.Context, listID uuid.UUID, requestingUserID string) (items []*models.Item, err error) {
	defer func() { record(ctx, "item.list", err) }()

	if _, err := s.lists.Get(ctx, listID, requestingUserID); err != nil {
		return nil, err
	}
	items, err = withRetry(ctx, func(ctx context.Context) ([]*models.Item, error) {
		return s.items.ListByList(ctx, listID)
	})
	if err != nil {
		return nil, domain.Op("item.list", listID.String(), domain.Dependency(err))
	}
	return items, nil
}
