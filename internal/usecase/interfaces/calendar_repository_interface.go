package interfaces

import (
	"context"
	"damage_report/internal/domain/entities"
	"time"
)

// ICalendarRepository persists scheduled content.
//
// Delete returns false when no post matched the id.
type ICalendarRepository interface {
	Create(ctx context.Context, p entities.CalendarPost) (entities.CalendarPost, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entities.CalendarPost, error)
	Delete(ctx context.Context, id string) (bool, error)
}
