package llm

import (
	"errors"
	"strings"
)

// Provider names a hosted language model vendor.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderGrok      Provider = "grok"
)

var ErrMissingAPIKey = errors.New("missing model api key")

// defaultModels are vision-capable models for each vendor.
var defaultModels = map[Provider]string{
	ProviderAnthropic: "claude-sonnet-4-20250514",
	ProviderOpenAI:    "gpt-4o",
	ProviderGemini:    "gemini-1.5-flash",
	ProviderGrok:      "grok-2-vision-1212",
}

// ParseProvider accepts "xai" as an alias of grok.
func ParseProvider(name string) (Provider, bool) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if p == "xai" {
		p = ProviderGrok
	}
	_, ok := defaultModels[p]
	return p, ok
}

func DefaultModel(p Provider) string {
	return defaultModels[p]
}
