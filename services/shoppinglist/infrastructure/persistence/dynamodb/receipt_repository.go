package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	domainevents "github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ReceiptRepository implements repositories.ReceiptRepository on the receipts table.
type ReceiptRepository struct {
	s *Store
}

// Create puts receipt metadata.
func (r *ReceiptRepository) Create(ctx context.Context, rc *models.Receipt) error {
	item, err := attributevalue.MarshalMap(toReceiptRecord(rc))
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}
	_, err = r.s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.s.tables.Receipts),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(ReceiptId)"),
	})
	if failed, _ := conditionFailed(err); failed {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("put receipt: %w", err)
	}
	evt := domainevents.NewReceiptUploadIssued(rc)
	r.s.publish(ctx, domainevents.TopicReceiptUploadIssued, evt.EventID, evt)
	return nil
}

// Get reads one receipt.
func (r *ReceiptRepository) Get(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	out, err := r.s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.s.tables.Receipts),
		Key:            stringKey(attrReceiptID, id.String()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrReceiptNotFound
	}
	var rec receiptRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal receipt: %w", err)
	}
	return rec.toModel()
}

// ListByList scans the receipts table filtered on ListId.
func (r *ReceiptRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]*models.Receipt, error) {
	p := dynamodb.NewScanPaginator(r.s.client, &dynamodb.ScanInput{
		TableName:        aws.String(r.s.tables.Receipts),
		FilterExpression: aws.String("ListId = :l"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":l": &types.AttributeValueMemberS{Value: listID.String()},
		},
	})

	var out []*models.Receipt
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan receipts: %w", err)
		}
		var recs []receiptRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal receipts: %w", err)
		}
		for _, rec := range recs {
			rc, err := rec.toModel()
			if err != nil {
				return nil, err
			}
			out = append(out, rc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

// Delete removes receipt metadata.
func (r *ReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.s.tables.Receipts),
		Key:       stringKey(attrReceiptID, id.String()),
	})
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
