package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

const listColumns = `id, name, created_by, created_at, allowed_users, version`

// ListRepository implements repositories.ListRepository against PostgreSQL.
type ListRepository struct {
	s *Store
}

// Create inserts the list and publishes ListCreatedEvent in one transaction.
func (r *ListRepository) Create(ctx context.Context, l *models.List) error {
	members, err := json.Marshal(l.AllowedUsers)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shopping_lists (`+listColumns+`) VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
			l.ID, l.Name.String(), l.CreatedBy, l.CreatedAt, string(members), l.Version,
		); err != nil {
			return mapWriteErr("insert list", err)
		}
		evt := domainevents.NewListCreated(l)
		return r.s.publish(ctx, tx, domainevents.TopicListCreated, evt.EventID, evt)
	})
}

// Get returns the list or ErrListNotFound.
func (r *ListRepository) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	row := r.s.db.DB().QueryRowContext(ctx, `SELECT `+listColumns+` FROM shopping_lists WHERE id = $1`, id)
	l, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query list: %w", err)
	}
	return l, nil
}

// UpdateMembers replaces allowed_users if version still equals expectedVersion.
func (r *ListRepository) UpdateMembers(ctx context.Context, l *models.List, expectedVersion int64) error {
	members, err := json.Marshal(l.AllowedUsers)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var version int64
		err := tx.QueryRowContext(ctx,
			`UPDATE shopping_lists SET allowed_users = $2::jsonb, version = version + 1
			 WHERE id = $1 AND version = $3
			 RETURNING version`,
			l.ID, string(members), expectedVersion,
		).Scan(&version)
		if errors.Is(err, sql.ErrNoRows) {
			return r.missOrConflict(ctx, tx, l.ID)
		}
		if err != nil {
			return fmt.Errorf("update members: %w", err)
		}
		l.Version = version
		evt := domainevents.NewListMembersChanged(l)
		return r.s.publish(ctx, tx, domainevents.TopicListMembersChanged, evt.EventID, evt)
	})
}

func (r *ListRepository) missOrConflict(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM shopping_lists WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check list exists: %w", err)
	}
	if !exists {
		return domain.ErrListNotFound
	}
	return domain.ErrConflict
}

// Delete removes the list row and publishes ListDeletedEvent. Absent lists are
// not an error and publish nothing.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		evt := domainevents.NewListDeleted(id)
		return r.s.publish(ctx, tx, domainevents.TopicListDeleted, evt.EventID, evt)
	})
}

// ListByMember uses the GIN index on allowed_users.
func (r *ListRepository) ListByMember(ctx context.Context, userID string) ([]*models.List, error) {
	rows, err := r.s.db.DB().QueryContext(ctx,
		`SELECT `+listColumns+` FROM shopping_lists
		 WHERE allowed_users @> jsonb_build_array($1::text)
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanList(row scanner) (*models.List, error) {
	var (
		l       models.List
		name    string
		members []byte
	)
	if err := row.Scan(&l.ID, &name, &l.CreatedBy, &l.CreatedAt, &members, &l.Version); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(members, &l.AllowedUsers); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	l.Name = models.ListName(name)
	l.CreatedAt = l.CreatedAt.UTC()
	return &l, nil
}
