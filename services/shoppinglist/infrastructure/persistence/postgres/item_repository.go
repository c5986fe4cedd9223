package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

const itemColumns = `list_id, id, name, quantity, unit, added_by, added_at,
	purchased, purchased_by, purchased_at, cost, item_details, version`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	s *Store
}

// Create inserts the item and publishes ItemAddedEvent in one transaction.
func (r *ItemRepository) Create(ctx context.Context, i *models.Item) error {
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shopping_list_items (list_id, id, name, quantity, unit, added_by, added_at, purchased, version)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)`,
			i.ListID, i.ID, i.Name.String(), i.Quantity.Int(), i.Unit, i.AddedBy, i.AddedAt, i.Version,
		); err != nil {
			return mapWriteErr("insert item", err)
		}
		evt := domainevents.NewItemAdded(i)
		return r.s.publish(ctx, tx, domainevents.TopicItemAdded, evt.EventID, evt)
	})
}

// Get returns the item or ErrItemNotFound.
func (r *ItemRepository) Get(ctx context.Context, listID, itemID uuid.UUID) (*models.Item, error) {
	row := r.s.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM shopping_list_items WHERE list_id = $1 AND id = $2`, listID, itemID)
	i, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return i, nil
}

// MarkPurchased overwrites the purchase columns of an existing row. The
// UPDATE never inserts, so a missing item surfaces as ErrItemNotFound.
func (r *ItemRepository) MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, p models.Purchase, expectedVersion *int64) (*models.Item, error) {
	var (
		cost    sql.NullFloat64
		details sql.NullString
		version sql.NullInt64
	)
	if p.Cost != nil {
		cost = sql.NullFloat64{Float64: *p.Cost, Valid: true}
	}
	if p.Details != nil {
		details = sql.NullString{String: string(p.Details), Valid: true}
	}
	if expectedVersion != nil {
		version = sql.NullInt64{Int64: *expectedVersion, Valid: true}
	}

	var item *models.Item
	err := r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`UPDATE shopping_list_items
			 SET purchased = TRUE, purchased_by = $3, purchased_at = $4, cost = $5,
			     item_details = $6::jsonb, version = version + 1
			 WHERE list_id = $1 AND id = $2 AND ($7::bigint IS NULL OR version = $7::bigint)
			 RETURNING `+itemColumns,
			listID, itemID, p.By, p.At, cost, details, version,
		)
		var err error
		item, err = scanItem(row)
		if errors.Is(err, sql.ErrNoRows) {
			if expectedVersion == nil {
				return domain.ErrItemNotFound
			}
			return r.missOrConflict(ctx, tx, listID, itemID)
		}
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		evt := domainevents.NewItemPurchased(item)
		return r.s.publish(ctx, tx, domainevents.TopicItemPurchased, evt.EventID, evt)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) missOrConflict(ctx context.Context, tx *sql.Tx, listID, itemID uuid.UUID) error {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shopping_list_items WHERE list_id = $1 AND id = $2)`, listID, itemID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check item exists: %w", err)
	}
	if !exists {
		return domain.ErrItemNotFound
	}
	return domain.ErrConflict
}

// Delete removes the item and publishes ItemRemovedEvent. Deleting an absent
// item succeeds without an event.
func (r *ItemRepository) Delete(ctx context.Context, listID, itemID uuid.UUID) error {
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM shopping_list_items WHERE list_id = $1 AND id = $2`, listID, itemID)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		evt := domainevents.NewItemRemoved(listID, itemID)
		return r.s.publish(ctx, tx, domainevents.TopicItemRemoved, evt.EventID, evt)
	})
}

// ListByList returns the list partition ordered by added_at.
func (r *ItemRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.s.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM shopping_list_items WHERE list_id = $1 ORDER BY added_at, id`, listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func scanItem(row scanner) (*models.Item, error) {
	var (
		i           models.Item
		name        string
		quantity    int
		purchasedBy sql.NullString
		purchasedAt sql.NullTime
		cost        sql.NullFloat64
		details     []byte
	)
	if err := row.Scan(
		&i.ListID, &i.ID, &name, &quantity, &i.Unit, &i.AddedBy, &i.AddedAt,
		&i.Purchased, &purchasedBy, &purchasedAt, &cost, &details, &i.Version,
	); err != nil {
		return nil, err
	}
	i.Name = models.ItemName(name)
	i.Quantity = models.Quantity(quantity)
	i.AddedAt = i.AddedAt.UTC()
	i.PurchasedBy = purchasedBy.String
	if purchasedAt.Valid {
		t := purchasedAt.Time.UTC()
		i.PurchasedAt = &t
	}
	if cost.Valid {
		v := cost.Float64
		i.Cost = &v
	}
	if len(details) > 0 {
		i.ItemDetails = details
	}
	return &i, nil
}
