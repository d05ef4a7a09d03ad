package llm

import (
	"context"
	"errors"
	"testing"

	"damage_report/internal/domain/entities"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, len(texts))
	for i, s := range texts {
		parts[i] = genai.Text(s)
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestGeminiModel_Complete(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(`{"posts":`, `[]}`)}
	m := &GeminiModel{model: gen}

	out, err := m.Complete(context.Background(), entities.ModelPrompt{
		Text:   "prompt",
		Images: []entities.AssessmentImage{{Data: []byte("png"), MediaType: "image/png"}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"posts":[]}`, out)
	assert.Equal(t, "gemini", m.Provider())

	require.Len(t, gen.parts, 2)
	assert.Equal(t, genai.Text("prompt"), gen.parts[0])
	assert.Equal(t, genai.Blob{MIMEType: "image/png", Data: []byte("png")}, gen.parts[1])
}

func TestGeminiModel_Errors(t *testing.T) {
	m := &GeminiModel{model: &fakeGenerator{err: errors.New("quota")}}
	_, err := m.Complete(context.Background(), entities.ModelPrompt{Text: "x"})
	assert.ErrorContains(t, err, "quota")

	m = &GeminiModel{model: &fakeGenerator{resp: &genai.GenerateContentResponse{}}}
	_, err = m.Complete(context.Background(), entities.ModelPrompt{Text: "x"})
	assert.Error(t, err)

	_, err = NewGeminiModel(context.Background(), "", "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	assert.NoError(t, (&GeminiModel{}).Close())
}
