package repository

import (
	"context"
	"sync"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
)

// AssessmentMemoryRepository keeps assessments in process memory. Records
// are lost on restart.
type AssessmentMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Assessment
}

var _ interfaces.IAssessmentRepository = (*AssessmentMemoryRepository)(nil)

func NewAssessmentMemoryRepository() *AssessmentMemoryRepository {
	return &AssessmentMemoryRepository{items: make(map[string]entities.Assessment)}
}

func (r *AssessmentMemoryRepository) Put(_ context.Context, a entities.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return nil
}

func (r *AssessmentMemoryRepository) GetByID(_ context.Context, id string) (entities.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}
