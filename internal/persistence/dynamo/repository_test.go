package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

func TestCredentialGetFound(t *testing.T) {
	client := &stubClient{
		getOut: &dynamodb.GetItemOutput{
			Item: map[string]types.AttributeValue{
				"username":   &types.AttributeValueMemberS{Value: "alice"},
				"password":   &types.AttributeValueMemberS{Value: "deadbeef"},
				"created_at": &types.AttributeValueMemberS{Value: "2024-01-01T00:00:00Z"},
			},
		},
	}
	repo := NewCredentialRepository(client, "users-table")

	cred, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", cred.Username)
	require.Equal(t, "deadbeef", cred.PasswordHash)
	require.Equal(t, "2024-01-01T00:00:00Z", cred.CreatedAt)

	require.Equal(t, "users-table", *client.gotGet.TableName)
	key, ok := client.gotGet.Key["username"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "alice", key.Value)
}

func TestCredentialGetAbsent(t *testing.T) {
	repo := NewCredentialRepository(&stubClient{getOut: &dynamodb.GetItemOutput{}}, "users-table")

	cred, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, cred)
}

func TestCredentialGetWrapsClientError(t *testing.T) {
	clientErr := errors.New("throttled")
	repo := NewCredentialRepository(&stubClient{getErr: clientErr}, "users-table")

	_, err := repo.Get(context.Background(), "alice")
	require.ErrorIs(t, err, clientErr)
}

func TestListByUserNormalizesBothSetShapes(t *testing.T) {
	nativeSets := &types.AttributeValueMemberL{Value: []types.AttributeValue{
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"weight": &types.AttributeValueMemberN{Value: "100"},
			"reps":   &types.AttributeValueMemberN{Value: "5"},
		}},
	}}
	client := &stubClient{
		queryOut: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"exercise": &types.AttributeValueMemberS{Value: "squat"},
					"date":     &types.AttributeValueMemberS{Value: "2024-01-01"},
					"sets":     &types.AttributeValueMemberS{Value: `[{"weight":100,"reps":5}]`},
				},
				{
					"exercise": &types.AttributeValueMemberS{Value: "squat"},
					"date":     &types.AttributeValueMemberS{Value: "2024-01-02"},
					"sets":     nativeSets,
				},
			},
		},
	}
	repo := NewWorkoutRepository(client, "workouts-table")

	views, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	want := []domain.Set{{Weight: 100, Reps: 5}}
	require.Equal(t, want, views[0].Sets)
	require.Equal(t, want, views[1].Sets)

	require.Equal(t, "user_id = :userId", *client.gotQuery.KeyConditionExpression)
	value, ok := client.gotQuery.ExpressionAttributeValues[":userId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "u1", value.Value)
}

func TestListByUserPassesUnexpectedSetsThrough(t *testing.T) {
	client := &stubClient{
		queryOut: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"exercise": &types.AttributeValueMemberS{Value: "squat"},
					"date":     &types.AttributeValueMemberS{Value: "2024-01-01"},
					"sets":     &types.AttributeValueMemberN{Value: "7"},
				},
			},
		},
	}
	repo := NewWorkoutRepository(client, "workouts-table")

	views, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, float64(7), views[0].Sets)
}

func TestListByUserFailsOnMalformedSetsString(t *testing.T) {
	client := &stubClient{
		queryOut: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"exercise": &types.AttributeValueMemberS{Value: "squat"},
					"date":     &types.AttributeValueMemberS{Value: "2024-01-01"},
					"sets":     &types.AttributeValueMemberS{Value: `[{"weight":`},
				},
			},
		},
	}
	repo := NewWorkoutRepository(client, "workouts-table")

	_, err := repo.ListByUser(context.Background(), "u1")
	require.Error(t, err)
}

func TestListByUserToleratesMissingSets(t *testing.T) {
	client := &stubClient{
		queryOut: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"exercise": &types.AttributeValueMemberS{Value: "squat"},
					"date":     &types.AttributeValueMemberS{Value: "2024-01-01"},
				},
			},
		},
	}
	repo := NewWorkoutRepository(client, "workouts-table")

	views, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Nil(t, views[0].Sets)
}

func TestPutStoresSetsAsString(t *testing.T) {
	client := &stubClient{putOut: &dynamodb.PutItemOutput{}}
	repo := NewWorkoutRepository(client, "workouts-table")

	err := repo.Put(context.Background(), domain.WorkoutRecord{
		UserID:    "u1",
		WorkoutID: "squat#2024-01-01#1704103200000",
		Exercise:  "squat",
		Date:      "2024-01-01",
		Sets:      `[{"weight":100,"reps":5}]`,
		CreatedAt: "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	require.Equal(t, "workouts-table", *client.gotPut.TableName)
	sets, ok := client.gotPut.Item["sets"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, `[{"weight":100,"reps":5}]`, sets.Value)
	user, ok := client.gotPut.Item["user_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "u1", user.Value)
}

type stubClient struct {
	getOut   *dynamodb.GetItemOutput
	getErr   error
	queryOut *dynamodb.QueryOutput
	queryErr error
	putOut   *dynamodb.PutItemOutput
	putErr   error

	gotGet   *dynamodb.GetItemInput
	gotQuery *dynamodb.QueryInput
	gotPut   *dynamodb.PutItemInput
}

func (s *stubClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.gotGet = params
	return s.getOut, s.getErr
}

func (s *stubClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.gotQuery = params
	return s.queryOut, s.queryErr
}

func (s *stubClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.gotPut = params
	return s.putOut, s.putErr
}
