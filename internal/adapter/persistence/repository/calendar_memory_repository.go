package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
)

var ErrDuplicateCalendarPost = errors.New("calendar post already exists")

type CalendarMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.CalendarPost
}

var _ interfaces.ICalendarRepository = (*CalendarMemoryRepository)(nil)

func NewCalendarMemoryRepository() *CalendarMemoryRepository {
	return &CalendarMemoryRepository{items: make(map[string]entities.CalendarPost)}
}

func (r *CalendarMemoryRepository) Create(_ context.Context, p entities.CalendarPost) (entities.CalendarPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.CalendarPost{}, ErrDuplicateCalendarPost
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *CalendarMemoryRepository) ListBetween(_ context.Context, from, to time.Time) ([]entities.CalendarPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.CalendarPost{}
	for _, p := range r.items {
		if !p.ScheduledAt.Before(from) && p.ScheduledAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *CalendarMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
