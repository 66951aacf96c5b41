package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"fotopanel/internal/models/db_models"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type notificationItem struct {
	UserID     string `dynamodbav:"user_id"`
	SortKey    string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"type"`
	Title      string `dynamodbav:"title"`
	Message    string `dynamodbav:"message"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
	RelatedID  string `dynamodbav:"related_id,omitempty"`
	IsRead     bool   `dynamodbav:"is_read"`
	CreatedAt  int64  `dynamodbav:"created_at"`
}

// NotificationDynamoRepository stores notifications in one table.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: sk (string), "<zero padded unix nanos>#<id>" so a reverse query is newest first
type NotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ NotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoDBAPI, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func sortKey(createdAt time.Time, id uuid.UUID) string {
	return fmt.Sprintf("%020d#%s", createdAt.UnixNano(), id)
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n *db_models.Notification) error {
	now := time.Now()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = now.Unix()
	n.UpdatedAt = n.CreatedAt

	it := notificationItem{
		UserID:    n.UserID.String(),
		SortKey:   sortKey(now, n.ID),
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.CustomerID != nil {
		it.CustomerID = n.CustomerID.String()
	}
	if n.RelatedID != nil {
		it.RelatedID = n.RelatedID.String()
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	return err
}

func (r *NotificationDynamoRepository) query(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]notificationItem, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID.String()},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if unreadOnly {
		in.FilterExpression = aws.String("is_read = :false")
		in.ExpressionAttributeValues[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	}

	var items []notificationItem
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Notification, error) {
	items, err := r.query(ctx, userID, limit, false)
	if err != nil {
		return nil, err
	}
	out := make([]db_models.Notification, 0, len(items))
	for _, it := range items {
		out = append(out, fromNotificationItem(it))
	}
	return out, nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	items, err := r.query(ctx, userID, 0, true)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (r *NotificationDynamoRepository) setRead(ctx context.Context, it notificationItem) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: it.UserID},
			"sk":      &types.AttributeValueMemberS{Value: it.SortKey},
		},
		UpdateExpression: aws.String("SET is_read = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	return err
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	items, err := r.query(ctx, userID, 0, false)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.ID == id.String() {
			return true, r.setRead(ctx, it)
		}
	}
	return false, nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	items, err := r.query(ctx, userID, 0, true)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, it := range items {
		if err := r.setRead(ctx, it); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func fromNotificationItem(it notificationItem) db_models.Notification {
	n := db_models.Notification{
		Type:    db_models.NotificationType(it.Type),
		Title:   it.Title,
		Message: it.Message,
		IsRead:  it.IsRead,
	}
	n.ID, _ = uuid.Parse(it.ID)
	n.UserID, _ = uuid.Parse(it.UserID)
	n.CreatedAt = it.CreatedAt
	n.UpdatedAt = it.CreatedAt
	if id, err := uuid.Parse(it.CustomerID); err == nil {
		n.CustomerID = &id
	}
	if id, err := uuid.Parse(it.RelatedID); err == nil {
		n.RelatedID = &id
	}
	return n
}
