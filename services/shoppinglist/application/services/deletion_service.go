package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/services"
)

// DeletionService cascades a list delete to its items.
//
// Items are deleted one by one before the list record. The store offers no
// multi-record transaction, so a crash part-way leaves some items without a
// list; they are unreachable and are not reclaimed. Calling DeleteList again
// before the list record is gone finishes the job.
type DeletionService struct {
	lists *ListService
	items repositories.ItemRepository
	log   logger.Logger
}

// NewDeletionService returns a DeletionService.
func NewDeletionService(lists *ListService, items repositories.ItemRepository, log logger.Logger) *DeletionService {
	return &DeletionService{lists: lists, items: items, log: log}
}

// DeleteList removes the list and all of its items. Only the creator may
// delete a list.
func (s *DeletionService) DeleteList(ctx context.Context, listID uuid.UUID, requestingUserID string) (err error) {
	defer func() { record(ctx, "list.delete", err) }()

	l, err := s.lists.fetch(ctx, listID)
	if err != nil {
		return err
	}
	if err := domainsvcs.AuthorizeDeletion(l, requestingUserID); err != nil {
		return err
	}

	items, err := withRetry(ctx, func(ctx context.Context) ([]uuid.UUID, error) {
		all, err := s.items.ListByList(ctx, listID)
		if err != nil {
			return nil, err
		}
		ids := make([]uuid.UUID, 0, len(all))
		for _, i := range all {
			ids = append(ids, i.ID)
		}
		return ids, nil
	})
	if err != nil {
		return domain.Op("list.delete", listID.String(), domain.Dependency(err))
	}

	for _, itemID := range items {
		err := retryDo(ctx, func(ctx context.Context) error {
			return s.items.Delete(ctx, listID, itemID)
		})
		if err != nil {
			return domain.Op("list.delete_item", itemID.String(), domain.Dependency(err))
		}
	}

	err = retryDo(ctx, func(ctx context.Context) error {
		return s.lists.lists.Delete(ctx, listID)
	})
	if err != nil {
		return domain.Op("list.delete", listID.String(), domain.Dependency(err))
	}
	s.lists.markDeleted(ctx, listID)

	s.log.InfoContext(ctx, "list deleted", "list_id", listID, "items_deleted", len(items))
	return nil
}
