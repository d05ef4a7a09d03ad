package usecase

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCalendarPost  = errors.New("invalid calendar post")
	ErrInvalidCalendarRange = errors.New("invalid calendar range")
	ErrCalendarPostNotFound = errors.New("calendar post not found")
)

// maxCalendarRange bounds a single listing query.
const maxCalendarRange = 366 * 24 * time.Hour

// ICalendarUseCase manages the content calendar.
//
//   - POST /calendar/posts         => Schedule()
//   - GET /calendar/posts          => List()
//   - DELETE /calendar/posts/{id}  => Delete()
type ICalendarUseCase interface {
	Schedule(ctx context.Context, p entities.CalendarPost) (entities.CalendarPost, error)
	List(ctx context.Context, from, to time.Time) ([]entities.CalendarPost, error)
	Delete(ctx context.Context, id string) error
}

type CalendarUseCase struct {
	repo interfaces.ICalendarRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) Schedule(ctx context.Context, p entities.CalendarPost) (entities.CalendarPost, error) {
	p.Platform = entities.Platform(strings.ToLower(strings.TrimSpace(string(p.Platform))))
	p.Content = strings.TrimSpace(p.Content)
	if !p.Platform.IsValid() {
		return entities.CalendarPost{}, fmt.Errorf("%w: unsupported platform %q", ErrInvalidCalendarPost, p.Platform)
	}
	if p.Content == "" {
		return entities.CalendarPost{}, fmt.Errorf("%w: content is required", ErrInvalidCalendarPost)
	}
	if p.ScheduledAt.IsZero() {
		return entities.CalendarPost{}, fmt.Errorf("%w: scheduledAt is required", ErrInvalidCalendarPost)
	}
	if limit := p.Platform.CaptionLimit(); len([]rune(p.Content)) > limit {
		return entities.CalendarPost{}, fmt.Errorf("%w: content exceeds %d characters for %s", ErrInvalidCalendarPost, limit, p.Platform)
	}

	p.ID = uuid.NewString()
	p.Hashtags = normalizeHashtags(p.Hashtags)
	p.ScheduledAt = p.ScheduledAt.UTC()
	p.Status = entities.CalendarPostStatusScheduled
	p.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, p)
}

// List returns posts scheduled in [from, to), earliest first.
func (u *CalendarUseCase) List(ctx context.Context, from, to time.Time) ([]entities.CalendarPost, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidCalendarRange)
	}
	if to.Sub(from) > maxCalendarRange {
		return nil, fmt.Errorf("%w: range exceeds one year", ErrInvalidCalendarRange)
	}

	posts, err := u.repo.ListBetween(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ScheduledAt.Before(posts[j].ScheduledAt)
	})
	if posts == nil {
		posts = []entities.CalendarPost{}
	}
	return posts, nil
}

func (u *CalendarUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCalendarPostNotFound
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCalendarPostNotFound
	}
	return nil
}

// MonthBounds returns [first day of t's month, first day of next month) in UTC.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
