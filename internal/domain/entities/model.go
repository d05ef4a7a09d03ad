package entities

// ModelPrompt is a single-turn request to a language model. Images are
// optional; text-only prompts leave it empty.
type ModelPrompt struct {
	Text      string
	Images    []AssessmentImage
	MaxTokens int
}
