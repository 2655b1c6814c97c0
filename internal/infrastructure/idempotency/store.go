// Package idempotency stores first responses in DynamoDB so retried writes replay them.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// DefaultTTL is how long a stored response is replayed.
const DefaultTTL = 24 * time.Hour

// DynamoDBAPI is the subset of the DynamoDB client used here.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ddbIdempotencyItem is the DynamoDB shape of a stored response.
type ddbIdempotencyItem struct {
	PK          string `dynamodbav:"PK"`
	SK          string `dynamodbav:"SK"`
	StatusCode  int    `dynamodbav:"StatusCode"`
	ContentType string `dynamodbav:"ContentType"`
	Body        []byte `dynamodbav:"Body"`
	CreatedAt   string `dynamodbav:"CreatedAt"`
	TTL         int64  `dynamodbav:"TTL"`
}

// Store implements repository.IdempotencyStore on a DynamoDB table.
type Store struct {
	client    DynamoDBAPI
	tableName string
	now       func() time.Time
}

// NewStore creates a store over tableName.
func NewStore(client DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName, now: time.Now}
}

func itemKey(key string) map[string]types.AttributeValue {
	sum := sha256.Sum256([]byte(key))
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "IDEMPOTENCY#" + hex.EncodeToString(sum[:])},
		"SK": &types.AttributeValueMemberS{Value: "RESPONSE"},
	}
}

func (s *Store) Get(ctx context.Context, key string) (*repository.StoredResponse, bool, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, appErrors.NewUpstream("failed to get idempotency key", err)
	}
	if result.Item == nil {
		return nil, false, nil
	}

	var item ddbIdempotencyItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, false, appErrors.Wrap(err, "failed to unmarshal idempotency item")
	}
	// TTL deletion is lazy.
	if item.TTL > 0 && s.now().Unix() >= item.TTL {
		return nil, false, nil
	}

	createdAt, _ := time.Parse(time.RFC3339, item.CreatedAt)
	return &repository.StoredResponse{
		StatusCode:  item.StatusCode,
		ContentType: item.ContentType,
		Body:        item.Body,
		CreatedAt:   createdAt,
	}, true, nil
}

func (s *Store) Put(ctx context.Context, key string, resp repository.StoredResponse, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := s.now()
	k := itemKey(key)

	item := ddbIdempotencyItem{
		PK:          k["PK"].(*types.AttributeValueMemberS).Value,
		SK:          k["SK"].(*types.AttributeValueMemberS).Value,
		StatusCode:  resp.StatusCode,
		ContentType: resp.ContentType,
		Body:        resp.Body,
		CreatedAt:   now.UTC().Format(time.RFC3339),
		TTL:         now.Add(ttl).Unix(),
	}
	itemMap, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, appErrors.Wrap(err, "failed to marshal idempotency item")
	}

	// Only the first writer wins; concurrent duplicates see the condition fail.
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                itemMap,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, appErrors.NewUpstream("failed to store idempotency key", err)
	}
	return true, nil
}

var _ repository.IdempotencyStore = (*Store)(nil)
