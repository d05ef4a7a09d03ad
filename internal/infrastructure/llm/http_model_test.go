package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"damage_report/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrompt = entities.ModelPrompt{
	Text:      "describe the damage",
	Images:    []entities.AssessmentImage{{Data: []byte{0xFF, 0xD8, 0xFF}, MediaType: "image/jpeg"}},
	MaxTokens: 512,
}

func TestHTTPModel_Anthropic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Content []anthropicContent `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel(ProviderAnthropic), body.Model)
		assert.Equal(t, 512, body.MaxTokens)
		require.Len(t, body.Messages, 1)
		require.Len(t, body.Messages[0].Content, 2)
		assert.Equal(t, "image", body.Messages[0].Content[0].Type)
		assert.Equal(t, "/9j/", body.Messages[0].Content[0].Source.Data)
		assert.Equal(t, "describe the damage", body.Messages[0].Content[1].Text)

		_, _ = io.WriteString(w, `{"content":[{"type":"text","text":"{\"summary\":{}}"}]}`)
	}))
	defer srv.Close()

	m, err := NewHTTPModel(ProviderAnthropic, "sk-ant", "", WithEndpoint(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "anthropic", m.Provider())

	out, err := m.Complete(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":{}}`, out)
}

func TestHTTPModel_ChatCompletions(t *testing.T) {
	for _, p := range []Provider{ProviderOpenAI, ProviderGrok} {
		t.Run(string(p), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

				var body struct {
					Model    string `json:"model"`
					Messages []struct {
						Content []chatPart `json:"content"`
					} `json:"messages"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "custom-model", body.Model)
				require.Len(t, body.Messages[0].Content, 2)
				assert.Equal(t, "text", body.Messages[0].Content[0].Type)
				assert.True(t, strings.HasPrefix(body.Messages[0].Content[1].ImageURL.URL, "data:image/jpeg;base64,"))

				_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)
			}))
			defer srv.Close()

			m, err := NewHTTPModel(p, "key-1", "custom-model", WithEndpoint(srv.URL))
			require.NoError(t, err)
			out, err := m.Complete(context.Background(), testPrompt)
			require.NoError(t, err)
			assert.Equal(t, "ok", out)
		})
	}
}

func TestHTTPModel_Errors(t *testing.T) {
	t.Run("upstream message passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"Rate limited"}}`)
		}))
		defer srv.Close()

		m, err := NewHTTPModel(ProviderAnthropic, "k", "", WithEndpoint(srv.URL))
		require.NoError(t, err)
		_, err = m.Complete(context.Background(), testPrompt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "Rate limited")
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"choices":[]}`)
		}))
		defer srv.Close()

		m, err := NewHTTPModel(ProviderOpenAI, "k", "", WithEndpoint(srv.URL))
		require.NoError(t, err)
		_, err = m.Complete(context.Background(), testPrompt)
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewHTTPModel(ProviderOpenAI, "", "")
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("gemini has no http template", func(t *testing.T) {
		_, err := NewHTTPModel(ProviderGemini, "k", "")
		assert.Error(t, err)
	})
}

func TestParseProvider(t *testing.T) {
	p, ok := ParseProvider(" XAI ")
	assert.True(t, ok)
	assert.Equal(t, ProviderGrok, p)

	_, ok = ParseProvider("llama")
	assert.False(t, ok)
}
