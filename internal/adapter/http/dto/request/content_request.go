package request

import "damage_report/internal/domain/entities"

type GenerateContentRequest struct {
	Provider         string   `json:"provider"`
	BusinessName     string   `json:"businessName" binding:"required"`
	Industry         string   `json:"industry" binding:"required"`
	Topic            string   `json:"topic" binding:"required"`
	Tone             string   `json:"tone"`
	Platforms        []string `json:"platforms" binding:"required,min=1"`
	PostsPerPlatform int      `json:"postsPerPlatform" binding:"gte=0"`
}

func (r GenerateContentRequest) ToBrief() entities.ContentBrief {
	platforms := make([]entities.Platform, len(r.Platforms))
	for i, p := range r.Platforms {
		platforms[i] = entities.Platform(p)
	}
	return entities.ContentBrief{
		Provider:         r.Provider,
		BusinessName:     r.BusinessName,
		Industry:         r.Industry,
		Topic:            r.Topic,
		Tone:             r.Tone,
		Platforms:        platforms,
		PostsPerPlatform: r.PostsPerPlatform,
	}
}
