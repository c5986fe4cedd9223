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

const receiptColumns = `id, list_id, uploaded_by, object_key, image_url, uploaded_at`

// ReceiptRepository implements repositories.ReceiptRepository against PostgreSQL.
type ReceiptRepository struct {
	s *Store
}

// Create inserts receipt metadata and publishes ReceiptUploadIssuedEvent.
func (r *ReceiptRepository) Create(ctx context.Context, rc *models.Receipt) error {
	return r.s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO receipts (`+receiptColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
			rc.ID, rc.ListID, rc.UploadedBy, rc.ObjectKey, rc.ImageURL, rc.UploadedAt,
		); err != nil {
			return mapWriteErr("insert receipt", err)
		}
		evt := domainevents.NewReceiptUploadIssued(rc)
		return r.s.publish(ctx, tx, domainevents.TopicReceiptUploadIssued, evt.EventID, evt)
	})
}

// Get returns the receipt or ErrReceiptNotFound.
func (r *ReceiptRepository) Get(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	row := r.s.db.DB().QueryRowContext(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id)
	rc, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query receipt: %w", err)
	}
	return rc, nil
}

// ListByList returns receipts for a list, newest first.
func (r *ReceiptRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Receipt, error) {
	rows, err := r.s.db.DB().QueryContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE list_id = $1 ORDER BY uploaded_at DESC`, listID)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// Delete removes receipt metadata. Absent receipts are not an error.
func (r *ReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.s.db.DB().ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

func scanReceipt(row scanner) (*models.Receipt, error) {
	var rc models.Receipt
	if err := row.Scan(&rc.ID, &rc.ListID, &rc.UploadedBy, &rc.ObjectKey, &rc.ImageURL, &rc.UploadedAt); err != nil {
		return nil, err
	}
	rc.UploadedAt = rc.UploadedAt.UTC()
	return &rc, nil
}
