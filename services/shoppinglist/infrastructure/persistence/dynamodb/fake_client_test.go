package dynamodb

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient keeps put items in memory and lets tests override UpdateItem,
// Query and Scan.
type fakeClient struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	putErr  error

	updateFn func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	queryFn  func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanFn   func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func newFakeClient() *fakeClient {
	return &fakeClient{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

func keyString(key map[string]types.AttributeValue) string {
	parts := make([]string, 0, len(key))
	for name, av := range key {
		if s, ok := av.(*types.AttributeValueMemberS); ok {
			parts = append(parts, name+"="+s.Value)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, "/")
}

func keyOf(table string, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{}
	for _, name := range []string{attrListID, attrItemID, attrReceiptID} {
		if v, ok := item[name]; ok {
			key[name] = v
		}
	}
	if table == "lists" {
		return map[string]types.AttributeValue{attrListID: key[attrListID]}
	}
	if table == "receipts" {
		return map[string]types.AttributeValue{attrReceiptID: key[attrReceiptID]}
	}
	return key
}

func (f *fakeClient) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	table := *in.TableName
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	k := keyString(keyOf(table, in.Item))
	if _, exists := f.tables[table][k]; exists && in.ConditionExpression != nil &&
		strings.HasPrefix(*in.ConditionExpression, "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.tables[table][k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.tables[*in.TableName][keyString(in.Key)]}, nil
}

func (f *fakeClient) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	f.updates = append(f.updates, in)
	fn := f.updateFn
	f.mu.Unlock()
	if fn == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return fn(in)
}

func (f *fakeClient) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := keyString(in.Key)
	old := f.tables[*in.TableName][k]
	delete(f.tables[*in.TableName], k)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeClient) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.queryFn == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryFn(in)
}

func (f *fakeClient) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanFn == nil {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scanFn(in)
}

func (f *fakeClient) DescribeTable(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *fakePublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for range msgs {
		p.topics = append(p.topics, topic)
	}
	return nil
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}
