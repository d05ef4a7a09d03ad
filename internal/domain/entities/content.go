package entities

// Platform is a social network targeted by generated content.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
)

// captionLimits are the maximum caption lengths, in characters.
var captionLimits = map[Platform]int{
	PlatformInstagram: 2200,
	PlatformFacebook:  63206,
	PlatformTwitter:   280,
	PlatformLinkedIn:  3000,
	PlatformTikTok:    2200,
}

func (p Platform) IsValid() bool {
	_, ok := captionLimits[p]
	return ok
}

// CaptionLimit returns the maximum caption length for p, 0 if unknown.
func (p Platform) CaptionLimit() int {
	return captionLimits[p]
}

// ContentBrief is the input of the content generator.
type ContentBrief struct {
	Provider         string
	BusinessName     string
	Industry         string
	Topic            string
	Tone             string
	Platforms        []Platform
	PostsPerPlatform int
}

type GeneratedPost struct {
	Platform       Platform `json:"platform"`
	Caption        string   `json:"caption"`
	Hashtags       []string `json:"hashtags"`
	ImagePrompt    string   `json:"imagePrompt"`
	BestTimeToPost string   `json:"bestTimeToPost"`
}

type ContentPlan struct {
	Provider string          `json:"provider"`
	Posts    []GeneratedPost `json:"posts"`
}
