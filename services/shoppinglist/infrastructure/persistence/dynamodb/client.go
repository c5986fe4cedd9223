// Package dynamodb implements the shopping list store on Amazon DynamoDB,
// using the ShoppingLists, ShoppingListItems and Receipts tables.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/SamWeninger/shopping-assistant/pkg/config"
)

// Client is the subset of the DynamoDB API the store uses.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ Client = (*dynamodb.Client)(nil)

// Tables names the three tables backing the store.
type Tables struct {
	Lists    string
	Items    string
	Receipts string
}

// TablesFromConfig reads table names from cfg.
func TablesFromConfig(cfg *config.Config) Tables {
	return Tables{
		Lists:    cfg.DynamoDBListsTable,
		Items:    cfg.DynamoDBItemsTable,
		Receipts: cfg.DynamoDBReceiptsTable,
	}
}

// NewClient builds a DynamoDB client with static credentials. A non-empty
// DynamoDBEndpoint points it at DynamoDB Local.
func NewClient(cfg *config.Config) *dynamodb.Client {
	opts := dynamodb.Options{
		Region:      cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
	}
	if cfg.DynamoDBEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
	}
	return dynamodb.New(opts)
}
