package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/services"
)

// Membership change outcomes reported by AddUser and RemoveUser.
const (
	StatusAdded         = "added"
	StatusAlreadyMember = "already_member"
	StatusRemoved       = "removed"
	StatusNotMember     = "not_member"
)

// MembershipResult is the outcome of a membership change. List is the stored
// state after the call, whether or not anything was written.
type MembershipResult struct {
	Status string
	List   *models.List
}

// ListService owns list creation, reads and membership.
// Reads go through the list cache; membership writes are conditional on the
// version read from the store, never the cached copy.
type ListService struct {
	lists repositories.ListRepository
	cache ListCache
	log   logger.Logger
}

// NewListService returns a ListService. cache may be nil.
func NewListService(lists repositories.ListRepository, cache ListCache, log logger.Logger) *ListService {
	return &ListService{lists: lists, cache: cache, log: log}
}

// Create validates and persists a new list. createdBy is always a member.
func (s *ListService) Create(ctx context.Context, listName, createdBy string, allowedUsers []string) (l *models.List, err error) {
	defer func() { record(ctx, "list.create", err) }()

	name, err := models.NewListName(listName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := domainsvcs.ValidateName(name.String()); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	l, err = models.NewList(name, createdBy, allowedUsers)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Create(ctx, l); err != nil {
		return nil, domain.Op("list.create", l.ID.String(), domain.Dependency(err))
	}
	s.cacheSet(ctx, l)
	return l, nil
}

// Get returns the list if requestingUserID is a member.
func (s *ListService) Get(ctx context.Context, listID uuid.UUID, requestingUserID string) (l *models.List, err error) {
	defer func() { record(ctx, "list.get", err) }()

	l, err = s.load(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.AuthorizeMember(l, requestingUserID); err != nil {
		return nil, err
	}
	return l, nil
}

// ListForUser returns every list userID belongs to, newest first.
func (s *ListService) ListForUser(ctx context.Context, userID string) (lists []*models.List, err error) {
	defer func() { record(ctx, "list.list_for_user", err) }()

	if userID == "" {
		return nil, domain.ErrAuthentication
	}
	lists, err = withRetry(ctx, func(ctx context.Context) ([]*models.List, error) {
		return s.lists.ListByMember(ctx, userID)
	})
	if err != nil {
		return nil, domain.Op("list.list_for_user", userID, domain.Dependency(err))
	}
	return lists, nil
}

// AddUser adds userID to the list. Only current members may invite.
func (s *ListService) AddUser(ctx context.Context, listID uuid.UUID, requestingUserID, userID string) (res *MembershipResult, err error) {
	defer func() { record(ctx, "list.add_user", err) }()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	l, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.AuthorizeMember(l, requestingUserID); err != nil {
		return nil, err
	}

	expected := l.Version
	added, err := l.AddMember(userID)
	if err != nil {
		return nil, err
	}
	if !added {
		return &MembershipResult{Status: StatusAlreadyMember, List: l}, nil
	}
	if err := s.lists.UpdateMembers(ctx, l, expected); err != nil {
		return nil, domain.Op("list.add_user", listID.String(), domain.Dependency(err))
	}
	s.invalidate(ctx, listID, l.Version)
	return &MembershipResult{Status: StatusAdded, List: l}, nil
}

// RemoveUser removes userID from the list. The creator cannot be removed.
func (s *ListService) RemoveUser(ctx context.Context, listID uuid.UUID, requestingUserID, userID string) (res *MembershipResult, err error) {
	defer func() { record(ctx, "list.remove_user", err) }()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	l, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.AuthorizeMember(l, requestingUserID); err != nil {
		return nil, err
	}

	expected := l.Version
	removed, err := l.RemoveMember(userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return &MembershipResult{Status: StatusNotMember, List: l}, nil
	}
	if err := s.lists.UpdateMembers(ctx, l, expected); err != nil {
		return nil, domain.Op("list.remove_user", listID.String(), domain.Dependency(err))
	}
	s.invalidate(ctx, listID, l.Version)
	return &MembershipResult{Status: StatusRemoved, List: l}, nil
}

// load reads a list through the cache. The fill after a miss is
// version-conditional, so a snapshot read before a concurrent membership
// write or delete is dropped by the cache instead of being served.
func (s *ListService) load(ctx context.Context, listID uuid.UUID) (*models.List, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listID)
		if err == nil {
			return fromCachedList(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "list cache read failed", "list_id", listID, "error", err)
		}
	}

	l, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, l)
	return l, nil
}

// fetch reads a list from the store, bypassing the cache.
func (s *ListService) fetch(ctx context.Context, listID uuid.UUID) (*models.List, error) {
	l, err := withRetry(ctx, func(ctx context.Context) (*models.List, error) {
		return s.lists.Get(ctx, listID)
	})
	if err != nil {
		return nil, domain.Op("list.get", listID.String(), domain.Dependency(err))
	}
	return l, nil
}

func (s *ListService) cacheSet(ctx context.Context, l *models.List) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, ToCachedList(l)); err != nil {
		s.log.WarnContext(ctx, "list cache write failed", "list_id", l.ID, "error", err)
	}
}

// invalidate marks cached snapshots older than version stale. The worker
// repeats this from list.members_changed if the call here fails.
func (s *ListService) invalidate(ctx context.Context, listID uuid.UUID, version int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, listID, version); err != nil {
		s.log.WarnContext(ctx, "list cache invalidation failed", "list_id", listID, "error", err)
	}
}

func (s *ListService) markDeleted(ctx context.Context, listID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkDeleted(ctx, listID); err != nil {
		s.log.WarnContext(ctx, "list cache delete marker failed", "list_id", listID, "error", err)
	}
}
