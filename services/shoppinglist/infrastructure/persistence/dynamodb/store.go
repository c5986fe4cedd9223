package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
)

// Store bundles the DynamoDB-backed repositories.
//
// DynamoDB has no transactional outbox shared with the event bus, so events
// are published after the write succeeds. A publish failure is logged and the
// write is kept.
type Store struct {
	client Client
	tables Tables
	pub    events.Publisher
	log    logger.Logger
}

var _ repositories.Store = (*Store)(nil)

// NewStore returns a Store over client. pub may be nil.
func NewStore(client Client, tables Tables, pub events.Publisher, log logger.Logger) *Store {
	return &Store{client: client, tables: tables, pub: pub, log: log}
}

func (s *Store) Lists() repositories.ListRepository       { return &ListRepository{s} }
func (s *Store) Items() repositories.ItemRepository       { return &ItemRepository{s} }
func (s *Store) Receipts() repositories.ReceiptRepository { return &ReceiptRepository{s} }

// Ping describes the lists table.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tables.Lists)})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", s.tables.Lists, err)
	}
	return nil
}

func (s *Store) publish(ctx context.Context, topic string, eventID uuid.UUID, evt any) {
	if s.pub == nil {
		return
	}
	msg, err := events.NewMessage(eventID, domainevents.SchemaVersion, evt)
	if err == nil {
		err = s.pub.Publish(ctx, topic, msg)
	}
	if err != nil {
		s.log.WarnContext(ctx, "event publish failed", "topic", topic, "event_id", eventID, "error", err)
	}
}

func stringKey(attrs ...string) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		key[attrs[i]] = &types.AttributeValueMemberS{Value: attrs[i+1]}
	}
	return key
}

// conditionFailed reports whether err is a failed ConditionExpression and,
// if so, whether the record existed before the write.
func conditionFailed(err error) (failed, existed bool) {
	var ccf *types.ConditionalCheckFailedException
	if !errors.As(err, &ccf) {
		return false, false
	}
	return true, len(ccf.Item) > 0
}

// versionMatches is the condition for a write that expects the stored Version
// to equal :expected. A record written before versioning has no Version
// attribute and counts as 1.
func versionMatches(expected int64) string {
	if expected == 1 {
		return "(Version = :expected OR attribute_not_exists(Version))"
	}
	return "Version = :expected"
}

func sortItems(items []*models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ID.String() < items[j].ID.String()
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
}
