package entities

import "time"

type CalendarPostStatus string

const (
	CalendarPostStatusScheduled CalendarPostStatus = "scheduled"
)

// CalendarPost is a piece of content scheduled on the content calendar.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI month-index (PK: month, "2006-01" of ScheduledAt)
type CalendarPost struct {
	ID          string             `json:"id"`
	Platform    Platform           `json:"platform"`
	Content     string             `json:"content"`
	Hashtags    []string           `json:"hashtags"`
	ScheduledAt time.Time          `json:"scheduledAt"`
	Status      CalendarPostStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// MonthKey returns the month bucket used to partition posts.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
