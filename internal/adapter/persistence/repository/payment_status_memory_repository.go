package repository

import (
	"context"
	"sync"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
)

// PaymentStatusMemoryRepository keeps payment flags in process memory.
// Merge holds the write lock across read and write.
type PaymentStatusMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PaymentStatus
}

var _ interfaces.IPaymentStatusRepository = (*PaymentStatusMemoryRepository)(nil)

func NewPaymentStatusMemoryRepository() *PaymentStatusMemoryRepository {
	return &PaymentStatusMemoryRepository{items: make(map[string]entities.PaymentStatus)}
}

func (r *PaymentStatusMemoryRepository) Get(_ context.Context, assessmentID string) (entities.PaymentStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.items[assessmentID]
	s.AssessmentID = assessmentID
	return s, nil
}

func (r *PaymentStatusMemoryRepository) Merge(_ context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := patch.Apply(r.items[assessmentID])
	s.AssessmentID = assessmentID
	r.items[assessmentID] = s
	return s, nil
}
