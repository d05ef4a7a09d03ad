package repository

import (
	"context"
	"time"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const calendarMonthIndex = "month-index"

type calendarItem struct {
	ID          string   `dynamodbav:"id"`
	Month       string   `dynamodbav:"month"`
	Platform    string   `dynamodbav:"platform"`
	Content     string   `dynamodbav:"content"`
	Hashtags    []string `dynamodbav:"hashtags"`
	ScheduledAt string   `dynamodbav:"scheduled_at"`
	Status      string   `dynamodbav:"status"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// CalendarDynamoRepository persists scheduled posts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI month-index: PK month (string, "2006-01"), SK scheduled_at (string)
type CalendarDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(ddb DynamoAPI, tableName string) *CalendarDynamoRepository {
	return &CalendarDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CalendarDynamoRepository) Create(ctx context.Context, p entities.CalendarPost) (entities.CalendarPost, error) {
	av, err := attributevalue.MarshalMap(toCalendarItem(p))
	if err != nil {
		return entities.CalendarPost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CalendarPost{}, err
	}
	return p, nil
}

// ListBetween queries the month index once per month touched by [from, to).
func (r *CalendarDynamoRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entities.CalendarPost, error) {
	posts := []entities.CalendarPost{}
	for _, month := range monthsBetween(from, to) {
		var startKey map[string]types.AttributeValue
		for {
			out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(r.tableName),
				IndexName:              aws.String(calendarMonthIndex),
				KeyConditionExpression: aws.String("#month = :month AND #scheduled_at >= :from"),
				FilterExpression:       aws.String("#scheduled_at < :to"),
				ExpressionAttributeNames: map[string]string{
					"#month":        "month",
					"#scheduled_at": "scheduled_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":month": &types.AttributeValueMemberS{Value: month},
					":from":  &types.AttributeValueMemberS{Value: formatTime(from)},
					":to":    &types.AttributeValueMemberS{Value: formatTime(to)},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}

			var items []calendarItem
			if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				posts = append(posts, fromCalendarItem(it))
			}

			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			startKey = out.LastEvaluatedKey
		}
	}
	return posts, nil
}

func (r *CalendarDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// monthsBetween lists the month keys covering [from, to).
func monthsBetween(from, to time.Time) []string {
	if !to.After(from) {
		return nil
	}
	last := entities.MonthKey(to.Add(-time.Nanosecond))
	cur := from.UTC()
	cur = time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []string
	for {
		key := entities.MonthKey(cur)
		months = append(months, key)
		if key == last {
			return months
		}
		cur = cur.AddDate(0, 1, 0)
	}
}

func toCalendarItem(p entities.CalendarPost) calendarItem {
	return calendarItem{
		ID:          p.ID,
		Month:       entities.MonthKey(p.ScheduledAt),
		Platform:    string(p.Platform),
		Content:     p.Content,
		Hashtags:    p.Hashtags,
		ScheduledAt: formatTime(p.ScheduledAt),
		Status:      string(p.Status),
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromCalendarItem(it calendarItem) entities.CalendarPost {
	hashtags := it.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return entities.CalendarPost{
		ID:          it.ID,
		Platform:    entities.Platform(it.Platform),
		Content:     it.Content,
		Hashtags:    hashtags,
		ScheduledAt: parseTime(it.ScheduledAt),
		Status:      entities.CalendarPostStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
