package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"damage_report/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment() entities.Assessment {
	return entities.Assessment{
		ID:          "a-1",
		CreatedAt:   time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		VehicleInfo: entities.VehicleInfo{Year: 2019, Make: "Honda", Model: "Civic"},
		Summary: entities.DamageSummary{
			OverallSeverity: entities.SeverityModerate,
			Summary:         "Rear bumper dent",
		},
		DamagedParts: []entities.DamagedPart{{
			Name:     "Rear Bumper",
			PartCost: &entities.Range{Low: 200, High: 450},
		}},
		HiddenDamage:          []entities.HiddenDamage{},
		RepairRecommendations: []string{"Replace bumper cover"},
		SafetyWarnings:        []string{},
		ImageURLs:             []string{},
	}
}

func TestAssessmentMemoryRepository(t *testing.T) {
	repo := NewAssessmentMemoryRepository()
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	a := sampleAssessment()
	require.NoError(t, repo.Put(ctx, a))

	got, err = repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAssessmentDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewAssessmentDynamoRepository(ddb, "assessments")

		a := sampleAssessment()
		require.NoError(t, repo.Put(ctx, a))
		assert.Equal(t, "assessments", *ddb.lastPut.TableName)
		assert.Nil(t, ddb.lastPut.ConditionExpression)

		got, err := repo.GetByID(ctx, "a-1")
		require.NoError(t, err)
		assert.True(t, *ddb.lastGet.ConsistentRead)
		assert.Equal(t, a.ID, got.ID)
		assert.True(t, a.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, a.VehicleInfo, got.VehicleInfo)
		assert.Equal(t, a.Summary, got.Summary)
		require.Len(t, got.DamagedParts, 1)
		assert.Equal(t, 450.0, got.DamagedParts[0].PartCost.High)
	})

	t.Run("not found is zero value", func(t *testing.T) {
		repo := NewAssessmentDynamoRepository(newFakeDynamo(), "assessments")
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("errors propagate", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.err = errors.New("throttled")
		repo := NewAssessmentDynamoRepository(ddb, "assessments")

		assert.EqualError(t, repo.Put(ctx, sampleAssessment()), "throttled")
		_, err := repo.GetByID(ctx, "a-1")
		assert.EqualError(t, err, "throttled")
	})
}
