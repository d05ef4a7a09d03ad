package response

import "damage_report/internal/domain/entities"

type CalendarPostsResponse struct {
	Posts []entities.CalendarPost `json:"posts"`
}

func FromCalendarPosts(posts []entities.CalendarPost) CalendarPostsResponse {
	if posts == nil {
		posts = []entities.CalendarPost{}
	}
	return CalendarPostsResponse{Posts: posts}
}
