package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

// MaxAllowedUsers bounds the membership of a single list, creator included.
const MaxAllowedUsers = 10

// Membership is the ordered, duplicate-free set of user ids allowed on a list.
type Membership []string

// NewMembership normalizes users into a Membership that starts with createdBy.
// Blank ids are dropped and duplicates collapsed. Returns ErrCapacity when the
// result would exceed MaxAllowedUsers.
func NewMembership(createdBy string, users []string) (Membership, error) {
	m := Membership{createdBy}
	for _, u := range users {
		u = strings.TrimSpace(u)
		if u == "" || m.Contains(u) {
			continue
		}
		m = append(m, u)
	}
	if len(m) > MaxAllowedUsers {
		return nil, fmt.Errorf("%w: a list cannot have more than %d users", domain.ErrCapacity, MaxAllowedUsers)
	}
	return m, nil
}

// Contains reports whether userID is a member.
func (m Membership) Contains(userID string) bool {
	return slices.Contains(m, userID)
}

// List is the aggregate root of the shopping list bounded context.
// Version is the optimistic-lock token checked by conditional membership writes.
type List struct {
	ID           uuid.UUID
	Name         ListName
	CreatedBy    string
	CreatedAt    time.Time
	AllowedUsers Membership
	Version      int64
}

// NewList constructs a List with a fresh id, Version 1 and normalized membership.
func NewList(name ListName, createdBy string, allowedUsers []string) (*List, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return nil, fmt.Errorf("%w: createdBy is required", domain.ErrValidation)
	}
	members, err := NewMembership(createdBy, allowedUsers)
	if err != nil {
		return nil, err
	}
	return &List{
		ID:           uuid.New(),
		Name:         name,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
		AllowedUsers: members,
		Version:      1,
	}, nil
}

// IsMember reports whether userID may read and mutate the list.
func (l *List) IsMember(userID string) bool {
	return l.AllowedUsers.Contains(userID)
}

// AddMember appends userID. Returns false without error when already a member.
func (l *List) AddMember(userID string) (bool, error) {
	if l.IsMember(userID) {
		return false, nil
	}
	if len(l.AllowedUsers) >= MaxAllowedUsers {
		return false, fmt.Errorf("%w: cannot add more than %d users to the list", domain.ErrCapacity, MaxAllowedUsers)
	}
	l.AllowedUsers = append(slices.Clone(l.AllowedUsers), userID)
	return true, nil
}

// RemoveMember drops userID. Returns false without error when not a member.
// The creator can never be removed.
func (l *List) RemoveMember(userID string) (bool, error) {
	if userID == l.CreatedBy {
		return false, domain.ErrCannotRemoveCreator
	}
	if !l.IsMember(userID) {
		return false, nil
	}
	l.AllowedUsers = slices.DeleteFunc(slices.Clone(l.AllowedUsers), func(u string) bool { return u == userID })
	return true, nil
}

// Clone returns a deep copy so callers can mutate membership without touching
// a shared (e.g. cached) instance.
func (l *List) Clone() *List {
	c := *l
	c.AllowedUsers = slices.Clone(l.AllowedUsers)
	return &c
}
