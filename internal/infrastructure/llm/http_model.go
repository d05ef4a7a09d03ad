package llm

import (
	"bytes"
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxReplyBytes = 8 << 20

// vendorTemplate is everything that differs between vendors sharing the
// plain JSON-over-HTTP calling convention.
type vendorTemplate struct {
	endpoint string
	headers  func(apiKey string) map[string]string
	request  func(model string, p entities.ModelPrompt) any
	reply    func(body []byte) (string, error)
	errorMsg func(body []byte) string
}

var templates = map[Provider]vendorTemplate{
	ProviderAnthropic: {
		endpoint: "https://api.anthropic.com/v1/messages",
		headers: func(apiKey string) map[string]string {
			return map[string]string{"x-api-key": apiKey, "anthropic-version": "2023-06-01"}
		},
		request:  anthropicRequest,
		reply:    anthropicReply,
		errorMsg: nestedErrorMessage,
	},
	ProviderOpenAI: {
		endpoint: "https://api.openai.com/v1/chat/completions",
		headers:  bearer,
		request:  chatCompletionsRequest,
		reply:    chatCompletionsReply,
		errorMsg: nestedErrorMessage,
	},
	ProviderGrok: {
		endpoint: "https://api.x.ai/v1/chat/completions",
		headers:  bearer,
		request:  chatCompletionsRequest,
		reply:    chatCompletionsReply,
		errorMsg: nestedErrorMessage,
	},
}

// HTTPModel calls a vendor's REST API once per Complete. There is no retry.
type HTTPModel struct {
	provider Provider
	model    string
	apiKey   string
	endpoint string
	tmpl     vendorTemplate
	client   *http.Client
}

var _ interfaces.ILanguageModel = (*HTTPModel)(nil)

type HTTPOption func(*HTTPModel)

// WithEndpoint overrides the vendor URL.
func WithEndpoint(url string) HTTPOption {
	return func(m *HTTPModel) { m.endpoint = url }
}

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(m *HTTPModel) { m.client = c }
}

func NewHTTPModel(provider Provider, apiKey, model string, opts ...HTTPOption) (*HTTPModel, error) {
	tmpl, ok := templates[provider]
	if !ok {
		return nil, fmt.Errorf("no http template for provider %q", provider)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAPIKey, provider)
	}
	if model == "" {
		model = DefaultModel(provider)
	}
	m := &HTTPModel{
		provider: provider,
		model:    model,
		apiKey:   apiKey,
		endpoint: tmpl.endpoint,
		tmpl:     tmpl,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *HTTPModel) Provider() string {
	return string(m.provider)
}

func (m *HTTPModel) Complete(ctx context.Context, prompt entities.ModelPrompt) (string, error) {
	body, err := json.Marshal(m.tmpl.request(m.model, prompt))
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range m.tmpl.headers(m.apiKey) {
		req.Header.Set(k, v)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", m.provider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("%s read reply: %w", m.provider, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := m.tmpl.errorMsg(raw)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("%s returned %d: %s", m.provider, resp.StatusCode, msg)
	}

	text, err := m.tmpl.reply(raw)
	if err != nil {
		return "", fmt.Errorf("%s reply: %w", m.provider, err)
	}
	return text, nil
}

func bearer(apiKey string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + apiKey}
}

type anthropicContent struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

func anthropicRequest(model string, p entities.ModelPrompt) any {
	content := make([]anthropicContent, 0, len(p.Images)+1)
	for _, img := range p.Images {
		content = append(content, anthropicContent{
			Type: "image",
			Source: &anthropicSource{
				Type:      "base64",
				MediaType: img.MediaType,
				Data:      base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	content = append(content, anthropicContent{Type: "text", Text: p.Text})
	return map[string]any{
		"model":      model,
		"max_tokens": p.MaxTokens,
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
	}
}

func anthropicReply(body []byte) (string, error) {
	var out struct {
		Content []anthropicContent `json:"content"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, c := range out.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("no text content")
	}
	return sb.String(), nil
}

type chatPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

func chatCompletionsRequest(model string, p entities.ModelPrompt) any {
	parts := make([]chatPart, 0, len(p.Images)+1)
	parts = append(parts, chatPart{Type: "text", Text: p.Text})
	for _, img := range p.Images {
		parts = append(parts, chatPart{
			Type: "image_url",
			ImageURL: &chatImageURL{
				URL: "data:" + img.MediaType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	return map[string]any{
		"model":      model,
		"max_tokens": p.MaxTokens,
		"messages": []map[string]any{
			{"role": "user", "content": parts},
		},
	}
}

func chatCompletionsReply(body []byte) (string, error) {
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", errors.New("no choices returned")
	}
	return out.Choices[0].Message.Content, nil
}

// nestedErrorMessage reads {"error":{"message":"..."}}, the error shape of
// every vendor here.
func nestedErrorMessage(body []byte) string {
	var out struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &out) != nil {
		return ""
	}
	return out.Error.Message
}
