package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/cache"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ListCache is the read-through cache the list service consults before the
// store. *cache.ListCache implements it.
//
// Set must not replace a newer version, and must be rejected after
// Invalidate with a higher version or after MarkDeleted.
type ListCache interface {
	Get(ctx context.Context, listID uuid.UUID) (*cache.CachedList, error)
	Set(ctx context.Context, l *cache.CachedList) error
	Invalidate(ctx context.Context, listID uuid.UUID, version int64) error
	MarkDeleted(ctx context.Context, listID uuid.UUID) error
}

var _ ListCache = (*cache.ListCache)(nil)

// ToCachedList converts a list into its cache representation.
func ToCachedList(l *models.List) *cache.CachedList {
	return &cache.CachedList{
		ID:           l.ID,
		Name:         l.Name.String(),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		AllowedUsers: append([]string(nil), l.AllowedUsers...),
		Version:      l.Version,
	}
}

func fromCachedList(c *cache.CachedList) *models.List {
	return &models.List{
		ID:           c.ID,
		Name:         models.ListName(c.Name),
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		AllowedUsers: models.Membership(append([]string(nil), c.AllowedUsers...)),
		Version:      c.Version,
	}
}
