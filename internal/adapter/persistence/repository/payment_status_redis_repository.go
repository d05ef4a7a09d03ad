package repository

import (
	"context"
	"fmt"
	"strconv"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	keyPaymentStatus        = "payment_status:%s"
	fieldPaidForFullReport  = "has_paid_for_full_report"
	fieldPaidForEbayUpgrade = "has_paid_for_ebay_upgrade"
)

// RedisHashAPI is the part of *redis.Client used for payment flags.
type RedisHashAPI interface {
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

var _ RedisHashAPI = (*redis.Client)(nil)

// PaymentStatusRedisRepository stores the flags of an assessment as one hash.
// HSET writes only the patched fields, so products never clobber each other.
type PaymentStatusRedisRepository struct {
	client RedisHashAPI
}

var _ interfaces.IPaymentStatusRepository = (*PaymentStatusRedisRepository)(nil)

func NewPaymentStatusRedisRepository(client RedisHashAPI) *PaymentStatusRedisRepository {
	return &PaymentStatusRedisRepository{client: client}
}

func (r *PaymentStatusRedisRepository) Get(ctx context.Context, assessmentID string) (entities.PaymentStatus, error) {
	fields, err := r.client.HGetAll(ctx, fmt.Sprintf(keyPaymentStatus, assessmentID)).Result()
	if err != nil {
		return entities.PaymentStatus{}, err
	}
	return entities.PaymentStatus{
		AssessmentID:          assessmentID,
		HasPaidForFullReport:  parseFlag(fields[fieldPaidForFullReport]),
		HasPaidForEbayUpgrade: parseFlag(fields[fieldPaidForEbayUpgrade]),
	}, nil
}

func (r *PaymentStatusRedisRepository) Merge(ctx context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error) {
	values := make([]interface{}, 0, 4)
	if patch.HasPaidForFullReport != nil {
		values = append(values, fieldPaidForFullReport, strconv.FormatBool(*patch.HasPaidForFullReport))
	}
	if patch.HasPaidForEbayUpgrade != nil {
		values = append(values, fieldPaidForEbayUpgrade, strconv.FormatBool(*patch.HasPaidForEbayUpgrade))
	}
	if len(values) > 0 {
		if err := r.client.HSet(ctx, fmt.Sprintf(keyPaymentStatus, assessmentID), values...).Err(); err != nil {
			return entities.PaymentStatus{}, err
		}
	}
	return r.Get(ctx, assessmentID)
}

func parseFlag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
