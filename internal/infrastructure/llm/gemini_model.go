package llm

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiMaxOutputTokens = 8192

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiModel talks to Gemini through the genai SDK. Images are sent inline
// as blobs next to the prompt text.
type GeminiModel struct {
	client *genai.Client
	model  contentGenerator
}

var _ interfaces.ILanguageModel = (*GeminiModel)(nil)

func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAPIKey, ProviderGemini)
	}
	if modelName == "" {
		modelName = DefaultModel(ProviderGemini)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}
	m := client.GenerativeModel(modelName)
	m.SetMaxOutputTokens(geminiMaxOutputTokens)
	return &GeminiModel{client: client, model: m}, nil
}

func (g *GeminiModel) Provider() string {
	return string(ProviderGemini)
}

func (g *GeminiModel) Complete(ctx context.Context, prompt entities.ModelPrompt) (string, error) {
	parts := make([]genai.Part, 0, len(prompt.Images)+1)
	parts = append(parts, genai.Text(prompt.Text))
	for _, img := range prompt.Images {
		parts = append(parts, genai.Blob{MIMEType: img.MediaType, Data: img.Data})
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini returned no text")
	}
	return sb.String(), nil
}

func (g *GeminiModel) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
