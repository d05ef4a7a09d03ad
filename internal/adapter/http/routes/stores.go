package routes

import (
	"context"
	"fmt"
	"io"

	"damage_report/internal/adapter/persistence/repository"
	"damage_report/internal/config"
	"damage_report/internal/infrastructure/database"
	"damage_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

type stores struct {
	assessments   interfaces.IAssessmentRepository
	paymentStatus interfaces.IPaymentStatusRepository
	calendar      interfaces.ICalendarRepository
	closers       []io.Closer
}

func (s *stores) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			zap.L().Warn("[storage] close failed", zap.Error(err))
		}
	}
}

// newStores builds the repositories for the configured backends. The
// DynamoDB client is shared and created only when some store needs it.
func newStores(ctx context.Context, cfg config.Config) (*stores, error) {
	s := &stores{}
	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		c, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		ddb = c
		return ddb, nil
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		s.assessments = repository.NewAssessmentMemoryRepository()
		s.calendar = repository.NewCalendarMemoryRepository()
	case config.BackendDynamoDB:
		c, err := dynamo()
		if err != nil {
			return nil, err
		}
		s.assessments = repository.NewAssessmentDynamoRepository(c, cfg.Storage.AssessmentsTable)
		s.calendar = repository.NewCalendarDynamoRepository(c, cfg.Storage.CalendarTable)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.Storage.Backend)
	}

	switch cfg.Storage.PaymentStatusBackend {
	case config.BackendMemory:
		s.paymentStatus = repository.NewPaymentStatusMemoryRepository()
	case config.BackendDynamoDB:
		c, err := dynamo()
		if err != nil {
			return nil, err
		}
		s.paymentStatus = repository.NewPaymentStatusDynamoRepository(c, cfg.Storage.PaymentStatusTable)
	case config.BackendRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		s.paymentStatus = repository.NewPaymentStatusRedisRepository(rdb)
		s.closers = append(s.closers, rdb)
	default:
		return nil, fmt.Errorf("unsupported PAYMENT_STATUS_BACKEND %q", cfg.Storage.PaymentStatusBackend)
	}

	zap.L().Info("[storage] repositories ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("payment_status_backend", cfg.Storage.PaymentStatusBackend))
	return s, nil
}
