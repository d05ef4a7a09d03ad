package usecase

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidContentBrief  = errors.New("invalid content brief")
	ErrUnknownModelProvider = errors.New("unknown model provider")
	ErrContentParse         = errors.New("failed to parse generated content")
)

const (
	contentMaxTokens    = 2048
	maxPostsPerPlatform = 5
	defaultContentTone  = "friendly and professional"
)

const contentPromptTemplate = `You are a social media strategist writing posts for a small business.

Business: %s
Industry: %s
Topic: %s
Tone: %s
Platforms: %s
Posts per platform: %d

Respond with ONLY a JSON object, no markdown:
{"posts": [{"platform": "one of the platforms above, lowercase", "caption": "string", "hashtags": ["string"], "imagePrompt": "one sentence describing an image to pair with the post", "bestTimeToPost": "e.g. Tuesday 9am"}]}

Respect each platform's caption length limit: %s.`

// IContentUseCase drafts social media posts ("Creative Room").
type IContentUseCase interface {
	Generate(ctx context.Context, brief entities.ContentBrief) (entities.ContentPlan, error)
}

type ContentUseCase struct {
	models          map[string]interfaces.ILanguageModel
	defaultProvider string
}

var _ IContentUseCase = (*ContentUseCase)(nil)

// NewContentUseCase takes the configured models keyed by provider name.
func NewContentUseCase(models map[string]interfaces.ILanguageModel, defaultProvider string) *ContentUseCase {
	return &ContentUseCase{models: models, defaultProvider: strings.ToLower(defaultProvider)}
}

type contentReply struct {
	Posts []entities.GeneratedPost `json:"posts"`
}

func (u *ContentUseCase) Generate(ctx context.Context, brief entities.ContentBrief) (entities.ContentPlan, error) {
	brief, err := normalizeBrief(brief)
	if err != nil {
		return entities.ContentPlan{}, err
	}

	provider := strings.ToLower(strings.TrimSpace(brief.Provider))
	if provider == "" {
		provider = u.defaultProvider
	}
	model, ok := u.models[provider]
	if !ok {
		return entities.ContentPlan{}, fmt.Errorf("%w: %q", ErrUnknownModelProvider, provider)
	}

	reply, err := model.Complete(ctx, entities.ModelPrompt{
		Text:      buildContentPrompt(brief),
		MaxTokens: contentMaxTokens,
	})
	if err != nil {
		zap.L().Error("[content][usecase] model call failed", zap.String("provider", provider), zap.Error(err))
		return entities.ContentPlan{}, fmt.Errorf("%w: %v", ErrModelUpstream, err)
	}

	var parsed contentReply
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &parsed); err != nil {
		zap.L().Error("[content][usecase] unparseable model reply", zap.Error(err), zap.String("raw_reply", reply))
		return entities.ContentPlan{}, fmt.Errorf("%w: %v", ErrContentParse, err)
	}

	posts := normalizePosts(parsed.Posts, brief.Platforms)
	if len(posts) == 0 {
		zap.L().Error("[content][usecase] reply has no usable posts", zap.String("raw_reply", reply))
		return entities.ContentPlan{}, fmt.Errorf("%w: no posts for requested platforms", ErrContentParse)
	}
	return entities.ContentPlan{Provider: provider, Posts: posts}, nil
}

func normalizeBrief(b entities.ContentBrief) (entities.ContentBrief, error) {
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	b.Industry = strings.TrimSpace(b.Industry)
	b.Topic = strings.TrimSpace(b.Topic)
	b.Tone = strings.TrimSpace(b.Tone)
	if b.BusinessName == "" || b.Industry == "" || b.Topic == "" {
		return b, fmt.Errorf("%w: businessName, industry and topic are required", ErrInvalidContentBrief)
	}
	if len(b.Platforms) == 0 {
		return b, fmt.Errorf("%w: at least one platform is required", ErrInvalidContentBrief)
	}

	seen := make(map[entities.Platform]bool, len(b.Platforms))
	platforms := make([]entities.Platform, 0, len(b.Platforms))
	for _, p := range b.Platforms {
		p = entities.Platform(strings.ToLower(strings.TrimSpace(string(p))))
		if !p.IsValid() {
			return b, fmt.Errorf("%w: unsupported platform %q", ErrInvalidContentBrief, p)
		}
		if !seen[p] {
			seen[p] = true
			platforms = append(platforms, p)
		}
	}
	b.Platforms = platforms

	if b.PostsPerPlatform <= 0 {
		b.PostsPerPlatform = 1
	}
	if b.PostsPerPlatform > maxPostsPerPlatform {
		return b, fmt.Errorf("%w: postsPerPlatform must be at most %d", ErrInvalidContentBrief, maxPostsPerPlatform)
	}
	if b.Tone == "" {
		b.Tone = defaultContentTone
	}
	return b, nil
}

func buildContentPrompt(b entities.ContentBrief) string {
	names := make([]string, len(b.Platforms))
	limits := make([]string, len(b.Platforms))
	for i, p := range b.Platforms {
		names[i] = string(p)
		limits[i] = fmt.Sprintf("%s %d characters", p, p.CaptionLimit())
	}
	return fmt.Sprintf(contentPromptTemplate,
		b.BusinessName, b.Industry, b.Topic, b.Tone,
		strings.Join(names, ", "), b.PostsPerPlatform,
		strings.Join(limits, ", "))
}

func normalizePosts(posts []entities.GeneratedPost, requested []entities.Platform) []entities.GeneratedPost {
	wanted := make(map[entities.Platform]bool, len(requested))
	for _, p := range requested {
		wanted[p] = true
	}

	out := make([]entities.GeneratedPost, 0, len(posts))
	for _, p := range posts {
		p.Platform = entities.Platform(strings.ToLower(strings.TrimSpace(string(p.Platform))))
		if !wanted[p.Platform] {
			continue
		}
		p.Caption = truncateRunes(strings.TrimSpace(p.Caption), p.Platform.CaptionLimit())
		if p.Caption == "" {
			continue
		}
		p.Hashtags = normalizeHashtags(p.Hashtags)
		p.ImagePrompt = strings.TrimSpace(p.ImagePrompt)
		p.BestTimeToPost = strings.TrimSpace(p.BestTimeToPost)
		out = append(out, p)
	}
	return out
}

// normalizeHashtags prefixes tags with # and drops case-insensitive repeats.
func normalizeHashtags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.Join(strings.Fields(t), "")
		t = strings.TrimLeft(t, "#")
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, "#"+t)
	}
	return out
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}
