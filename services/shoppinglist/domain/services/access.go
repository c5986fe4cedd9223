// Package services contains stateless domain services for the shopping list
// bounded context: access policy and name rules that operate purely on
// domain types.
package services

import (
	"fmt"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// AuthorizeMember fails with ErrAuthorization unless userID is on the list.
// Every list-scoped read and mutation goes through this check, including
// invites (member-only invite policy).
func AuthorizeMember(list *models.List, userID string) error {
	if userID == "" || !list.IsMember(userID) {
		return fmt.Errorf("%w: unauthorized access to the shopping list", domain.ErrAuthorization)
	}
	return nil
}

// AuthorizeDeletion fails with ErrAuthorization unless userID created the list.
func AuthorizeDeletion(list *models.List, userID string) error {
	if userID == "" || userID != list.CreatedBy {
		return fmt.Errorf("%w: only the list creator can delete the list", domain.ErrAuthorization)
	}
	return nil
}
