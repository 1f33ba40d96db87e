// Package dynamo provides DynamoDB-backed access to the legacy
// lifting-tracker tables.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// Client exposes the minimal DynamoDB surface needed by the repositories.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// CredentialRepository reads the credential table keyed by username.
type CredentialRepository struct {
	client Client
	table  string
}

// NewCredentialRepository constructs a CredentialRepository.
func NewCredentialRepository(client Client, table string) *CredentialRepository {
	return &CredentialRepository{client: client, table: table}
}

// Get fetches a credential by exact username key. A missing row yields
// (nil, nil) so callers can distinguish absence from transport failures.
func (r *CredentialRepository) Get(ctx context.Context, username string) (*domain.Credential, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var cred domain.Credential
	if err := attributevalue.UnmarshalMap(out.Item, &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &cred, nil
}

// WorkoutRepository reads and appends rows in the workout table, which is
// partition-keyed by user_id with workout_id as the range key.
type WorkoutRepository struct {
	client Client
	table  string
}

// NewWorkoutRepository constructs a WorkoutRepository.
func NewWorkoutRepository(client Client, table string) *WorkoutRepository {
	return &WorkoutRepository{client: client, table: table}
}

// ListByUser queries the full workout partition for userID and normalizes the
// sets attribute of every row.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutView, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("user_id = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	views := make([]domain.WorkoutView, 0, len(out.Items))
	for _, item := range out.Items {
		sets, err := normalizeSets(item["sets"])
		if err != nil {
			return nil, fmt.Errorf("decode workout sets: %w", err)
		}
		views = append(views, domain.WorkoutView{
			Exercise: stringAttr(item["exercise"]),
			Date:     stringAttr(item["date"]),
			Sets:     sets,
		})
	}
	return views, nil
}

// Put appends a workout row. Sets is already serialized to a JSON string by
// the caller; the repository never re-encodes it.
func (r *WorkoutRepository) Put(ctx context.Context, record domain.WorkoutRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("encode workout: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put workout: %w", err)
	}
	return nil
}

func stringAttr(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
