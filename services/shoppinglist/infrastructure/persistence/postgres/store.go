// Package postgres implements the shopping list store on PostgreSQL.
// Every mutation publishes its domain event through the Watermill SQL outbox
// inside the same transaction as the write.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SamWeninger/shopping-assistant/pkg/database"
	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
)

// outbox is the part of *events.EventBus the repositories need.
type outbox interface {
	PublishTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error
}

// Store bundles the list, item and receipt repositories over one pool.
type Store struct {
	db  *database.Database
	bus outbox
}

var _ repositories.Store = (*Store)(nil)

// NewStore returns a Store backed by db. bus may be nil, in which case no
// events are published.
func NewStore(db *database.Database, bus *events.EventBus) *Store {
	s := &Store{db: db}
	if bus != nil {
		s.bus = bus
	}
	return s
}

func (s *Store) Lists() repositories.ListRepository       { return &ListRepository{s} }
func (s *Store) Items() repositories.ItemRepository       { return &ItemRepository{s} }
func (s *Store) Receipts() repositories.ReceiptRepository { return &ReceiptRepository{s} }

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// publish writes evt to the outbox within tx. No-op without a bus.
func (s *Store) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, evt any) error {
	if s.bus == nil {
		return nil
	}
	msg, err := events.NewMessage(eventID, domainevents.SchemaVersion, evt)
	if err != nil {
		return err
	}
	if err := s.bus.PublishTx(ctx, tx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// mapWriteErr translates unique violations into ErrConflict.
func mapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
