package request

import (
	"errors"
	"strings"
	"time"

	"damage_report/internal/domain/entities"
)

var ErrInvalidTime = errors.New("invalid time, expected RFC3339 or YYYY-MM-DD")

type SchedulePostRequest struct {
	Platform    string    `json:"platform" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Hashtags    []string  `json:"hashtags"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

func (r SchedulePostRequest) ToEntity() entities.CalendarPost {
	return entities.CalendarPost{
		Platform:    entities.Platform(r.Platform),
		Content:     r.Content,
		Hashtags:    r.Hashtags,
		ScheduledAt: r.ScheduledAt,
	}
}

// ListPostsQuery is the ?from=&to= window of GET /calendar/posts.
type ListPostsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Resolve parses the window. A missing bound falls back to the default range.
func (q ListPostsQuery) Resolve(defFrom, defTo time.Time) (time.Time, time.Time, error) {
	from, err := parseTimeParam(q.From, defFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseTimeParam(q.To, defTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func parseTimeParam(v string, def time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidTime
}
