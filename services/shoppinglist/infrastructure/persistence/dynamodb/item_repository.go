package dynamodb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ItemRepository implements repositories.ItemRepository on the items table,
// keyed by (ListId, ItemId).
type ItemRepository struct {
	s *Store
}

func itemKey(listID, itemID uuid.UUID) map[string]types.AttributeValue {
	return stringKey(attrListID, listID.String(), attrItemID, itemID.String())
}

// Create puts a new item, refusing to overwrite an existing one.
func (r *ItemRepository) Create(ctx context.Context, i *models.Item) error {
	rec, err := toItemRecord(i)
	if err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = r.s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.s.tables.Items),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(ItemId)"),
	})
	if failed, _ := conditionFailed(err); failed {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	evt := domainevents.NewItemAdded(i)
	r.s.publish(ctx, domainevents.TopicItemAdded, evt.EventID, evt)
	return nil
}

// Get reads one item.
func (r *ItemRepository) Get(ctx context.Context, listID, itemID uuid.UUID) (*models.Item, error) {
	out, err := r.s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.s.tables.Items),
		Key:            itemKey(listID, itemID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return unmarshalItem(out.Item)
}

// MarkPurchased updates the purchase attributes in place. The condition on
// ItemId keeps UpdateItem from upserting a phantom item.
func (r *ItemRepository) MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, p models.Purchase, expectedVersion *int64) (*models.Item, error) {
	set := []string{
		"Purchased = :true",
		"PurchasedBy = :by",
		"PurchasedAt = :at",
		"Version = if_not_exists(Version, :one) + :one",
	}
	var remove []string
	values := map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
		":by":   &types.AttributeValueMemberS{Value: p.By},
		":at":   &types.AttributeValueMemberS{Value: p.At.UTC().Format(time.RFC3339Nano)},
		":one":  &types.AttributeValueMemberN{Value: "1"},
	}

	if p.Cost != nil {
		set = append(set, "Cost = :cost")
		values[":cost"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*p.Cost, 'f', -1, 64)}
	} else {
		remove = append(remove, "Cost")
	}

	details, err := decodeDetails(p.Details)
	if err != nil {
		return nil, err
	}
	if details != nil {
		av, err := attributevalue.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("marshal item details: %w", err)
		}
		set = append(set, "ItemDetails = :details")
		values[":details"] = av
	} else {
		remove = append(remove, "ItemDetails")
	}

	update := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		update += " REMOVE " + strings.Join(remove, ", ")
	}

	cond := "attribute_exists(ItemId)"
	if expectedVersion != nil {
		cond += " AND " + versionMatches(*expectedVersion)
		values[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*expectedVersion, 10)}
	}

	out, err := r.s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.s.tables.Items),
		Key:                                 itemKey(listID, itemID),
		UpdateExpression:                    aws.String(update),
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if failed, existed := conditionFailed(err); failed {
		if !existed {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	item, err := unmarshalItem(out.Attributes)
	if err != nil {
		return nil, err
	}
	evt := domainevents.NewItemPurchased(item)
	r.s.publish(ctx, domainevents.TopicItemPurchased, evt.EventID, evt)
	return item, nil
}

// Delete removes the item. Absent items publish nothing.
func (r *ItemRepository) Delete(ctx context.Context, listID, itemID uuid.UUID) error {
	out, err := r.s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.s.tables.Items),
		Key:          itemKey(listID, itemID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil
	}
	evt := domainevents.NewItemRemoved(listID, itemID)
	r.s.publish(ctx, domainevents.TopicItemRemoved, evt.EventID, evt)
	return nil
}

// ListByList queries the ListId partition, following pagination.
func (r *ItemRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error) {
	p := dynamodb.NewQueryPaginator(r.s.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.s.tables.Items),
		KeyConditionExpression: aws.String("ListId = :l"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":l": &types.AttributeValueMemberS{Value: listID.String()},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []*models.Item
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query items: %w", err)
		}
		for _, av := range page.Items {
			i, err := unmarshalItem(av)
			if err != nil {
				return nil, err
			}
			out = append(out, i)
		}
	}
	sortItems(out)
	return out, nil
}

func unmarshalItem(av map[string]types.AttributeValue) (*models.Item, error) {
	var rec itemRecord
	if err := attributevalue.UnmarshalMap(av, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return rec.toModel()
}
