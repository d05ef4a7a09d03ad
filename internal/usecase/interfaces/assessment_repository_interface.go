package interfaces

import (
	"context"
	"damage_report/internal/domain/entities"
)

// IAssessmentRepository stores complete assessment records by id.
//
// Put overwrites any previous value for the id. GetByID returns a zero
// Assessment (empty ID) and a nil error when the id is unknown.
type IAssessmentRepository interface {
	Put(ctx context.Context, a entities.Assessment) error
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
}
