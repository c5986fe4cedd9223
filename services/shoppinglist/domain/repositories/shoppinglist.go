package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ListRepository is the persistence interface for the List aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ListRepository interface {
	// Create persists a new List.
	Create(ctx context.Context, list *models.List) error

	// Get returns the list or ErrListNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.List, error)

	// UpdateMembers writes list.AllowedUsers only if the stored Version still
	// equals expectedVersion, then sets list.Version to expectedVersion+1.
	// Returns ErrConflict when the precondition fails and ErrListNotFound when
	// the list is gone.
	UpdateMembers(ctx context.Context, list *models.List, expectedVersion int64) error

	// Delete removes the list record. Deleting an absent list is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByMember returns every list userID belongs to, newest first.
	ListByMember(ctx context.Context, userID string) ([]*models.List, error)
}

// ItemRepository is the persistence interface for Items, partitioned by list.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error

	// Get returns the item or ErrItemNotFound.
	Get(ctx context.Context, listID, itemID uuid.UUID) (*models.Item, error)

	// MarkPurchased overwrites the purchase state of an existing item and bumps
	// its Version. The write is conditional on the item existing
	// (ErrItemNotFound otherwise) and, when expectedVersion is non-nil, on the
	// stored Version matching it (ErrConflict otherwise).
	MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, p models.Purchase, expectedVersion *int64) (*models.Item, error)

	// Delete removes the item. Deleting an absent item is not an error.
	Delete(ctx context.Context, listID, itemID uuid.UUID) error

	// ListByList returns all items in the list partition, oldest first.
	ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error)
}

// ReceiptRepository is the persistence interface for receipt metadata.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error

	// Get returns the receipt or ErrReceiptNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.Receipt, error)

	// ListByList returns the receipts recorded against a list, newest first.
	ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Receipt, error)

	// Delete removes the receipt record. Used by upload reconciliation only.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store groups the three collections behind one backend.
type Store interface {
	Lists() ListRepository
	Items() ItemRepository
	Receipts() ReceiptRepository
	Ping(ctx context.Context) error
}
