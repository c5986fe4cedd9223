package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ListRepository implements repositories.ListRepository on the lists table.
type ListRepository struct {
	s *Store
}

// Create puts the list, refusing to overwrite an existing ListId.
func (r *ListRepository) Create(ctx context.Context, l *models.List) error {
	item, err := attributevalue.MarshalMap(toListRecord(l))
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}
	_, err = r.s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.s.tables.Lists),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(ListId)"),
	})
	if failed, _ := conditionFailed(err); failed {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("put list: %w", err)
	}
	evt := domainevents.NewListCreated(l)
	r.s.publish(ctx, domainevents.TopicListCreated, evt.EventID, evt)
	return nil
}

// Get reads the list with a strongly consistent read.
func (r *ListRepository) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	out, err := r.s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.s.tables.Lists),
		Key:            stringKey(attrListID, id.String()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrListNotFound
	}
	var rec listRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	return rec.toModel()
}

// UpdateMembers sets AllowedUsers conditioned on the stored Version.
func (r *ListRepository) UpdateMembers(ctx context.Context, l *models.List, expectedVersion int64) error {
	members, err := attributevalue.Marshal([]string(l.AllowedUsers))
	if err != nil {
		return fmt.Errorf("marshal members: %w", err)
	}
	cond := "attribute_exists(ListId) AND " + versionMatches(expectedVersion)

	_, err = r.s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.s.tables.Lists),
		Key:                 stringKey(attrListID, l.ID.String()),
		UpdateExpression:    aws.String("SET AllowedUsers = :members, Version = :next"),
		ConditionExpression: aws.String(cond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":members":  members,
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":next":     &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if failed, existed := conditionFailed(err); failed {
		if !existed {
			return domain.ErrListNotFound
		}
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("update members: %w", err)
	}
	l.Version = expectedVersion + 1
	evt := domainevents.NewListMembersChanged(l)
	r.s.publish(ctx, domainevents.TopicListMembersChanged, evt.EventID, evt)
	return nil
}

// Delete removes the list record. Absent lists publish nothing.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	out, err := r.s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.s.tables.Lists),
		Key:          stringKey(attrListID, id.String()),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil
	}
	evt := domainevents.NewListDeleted(id)
	r.s.publish(ctx, domainevents.TopicListDeleted, evt.EventID, evt)
	return nil
}

// ListByMember scans for lists whose AllowedUsers contains userID. The lists
// table has no membership index; the scan is bounded by the table size.
func (r *ListRepository) ListByMember(ctx context.Context, userID string) ([]*models.List, error) {
	p := dynamodb.NewScanPaginator(r.s.client, &dynamodb.ScanInput{
		TableName:        aws.String(r.s.tables.Lists),
		FilterExpression: aws.String("contains(AllowedUsers, :u)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []*models.List
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan lists: %w", err)
		}
		var recs []listRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal lists: %w", err)
		}
		for _, rec := range recs {
			l, err := rec.toModel()
			if err != nil {
				return nil, err
			}
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
