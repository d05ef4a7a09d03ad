package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"damage_report/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarPost(id string, at time.Time) entities.CalendarPost {
	return entities.CalendarPost{
		ID:          id,
		Platform:    entities.PlatformInstagram,
		Content:     "Fresh bread at 7am",
		Hashtags:    []string{"#bakery"},
		ScheduledAt: at,
		Status:      entities.CalendarPostStatusScheduled,
		CreatedAt:   at.Add(-time.Hour),
	}
}

func TestCalendarMemoryRepository(t *testing.T) {
	repo := NewCalendarMemoryRepository()
	ctx := context.Background()
	nov := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, calendarPost("p-1", nov))
	require.NoError(t, err)
	_, err = repo.Create(ctx, calendarPost("p-2", nov.AddDate(0, 1, 0)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, calendarPost("p-1", nov))
	if !errors.Is(err, ErrDuplicateCalendarPost) {
		t.Fatalf("expected ErrDuplicateCalendarPost, got %v", err)
	}

	posts, err := repo.ListBetween(ctx, nov, nov.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p-1", posts[0].ID)

	ok, err := repo.Delete(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name     string
		from, to time.Time
		want     []string
	}{
		{
			name: "single month",
			from: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			want: []string{"2026-11"},
		},
		{
			name: "crosses year",
			from: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2027, 1, 3, 0, 0, 0, 0, time.UTC),
			want: []string{"2026-11", "2026-12", "2027-01"},
		},
		{
			name: "empty range",
			from: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, monthsBetween(tc.from, tc.to))
		})
	}
}

func TestSortableTimeOrdering(t *testing.T) {
	a := time.Date(2026, 11, 1, 9, 0, 0, 5, time.UTC)
	b := time.Date(2026, 11, 1, 9, 0, 0, 40, time.UTC)
	assert.Less(t, formatTime(a), formatTime(b))
	assert.True(t, parseTime(formatTime(a)).Equal(a))
	assert.True(t, parseTime("2026-11-01T09:00:00Z").Equal(time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)))
}

func TestCalendarDynamoRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 11, 5, 15, 30, 0, 0, time.UTC)

	t.Run("create writes month bucket and guards id", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCalendarDynamoRepository(ddb, "calendar_posts")

		_, err := repo.Create(ctx, calendarPost("p-1", at))
		require.NoError(t, err)
		assert.Equal(t, "attribute_not_exists(#id)", *ddb.lastPut.ConditionExpression)

		var it calendarItem
		require.NoError(t, attributevalue.UnmarshalMap(ddb.lastPut.Item, &it))
		assert.Equal(t, "2026-11", it.Month)
		assert.Equal(t, "2026-11-05T15:30:00.000000000Z", it.ScheduledAt)

		_, err = repo.Create(ctx, calendarPost("p-1", at))
		var ccf *types.ConditionalCheckFailedException
		assert.True(t, errors.As(err, &ccf))
	})

	t.Run("list queries every month and follows pages", func(t *testing.T) {
		ddb := newFakeDynamo()
		page1, err := attributevalue.MarshalMap(toCalendarItem(calendarPost("p-1", at)))
		require.NoError(t, err)
		page2, err := attributevalue.MarshalMap(toCalendarItem(calendarPost("p-2", at.AddDate(0, 1, 0))))
		require.NoError(t, err)
		ddb.pages = []*dynamodb.QueryOutput{
			{Items: []map[string]types.AttributeValue{page1}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "p-1"}}},
			{},
			{Items: []map[string]types.AttributeValue{page2}},
		}
		repo := NewCalendarDynamoRepository(ddb, "calendar_posts")

		from := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
		posts, err := repo.ListBetween(ctx, from, from.AddDate(0, 2, 0))
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "p-1", posts[0].ID)
		assert.True(t, posts[0].ScheduledAt.Equal(at))
		assert.Equal(t, []string{"#bakery"}, posts[0].Hashtags)
		assert.Equal(t, "p-2", posts[1].ID)

		require.Len(t, ddb.queries, 3)
		assert.Equal(t, "month-index", *ddb.queries[0].IndexName)
		assert.Nil(t, ddb.queries[0].ExclusiveStartKey)
		assert.NotNil(t, ddb.queries[1].ExclusiveStartKey)
		month := ddb.queries[2].ExpressionAttributeValues[":month"].(*types.AttributeValueMemberS)
		assert.Equal(t, "2026-12", month.Value)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCalendarDynamoRepository(ddb, "calendar_posts")
		_, err := repo.Create(ctx, calendarPost("p-1", at))
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, "p-1")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.Delete(ctx, "p-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
