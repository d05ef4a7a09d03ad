package llm

import (
	"context"
	"damage_report/internal/config"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"io"
	"sort"

	"go.uber.org/zap"
)

// Registry holds one model per vendor with a configured API key.
type Registry struct {
	models  map[string]interfaces.ILanguageModel
	closers []io.Closer
}

// NewRegistry builds a model for every vendor whose key is set. cfg.Model
// only overrides the model name of cfg.Provider.
func NewRegistry(ctx context.Context, cfg config.LLMConfig, opts ...HTTPOption) (*Registry, error) {
	r := &Registry{models: map[string]interfaces.ILanguageModel{}}
	selected, _ := ParseProvider(cfg.Provider)

	modelFor := func(p Provider) string {
		if p == selected && cfg.Model != "" {
			return cfg.Model
		}
		return DefaultModel(p)
	}

	httpKeys := map[Provider]string{
		ProviderAnthropic: cfg.AnthropicKey,
		ProviderOpenAI:    cfg.OpenAIKey,
		ProviderGrok:      cfg.XAIKey,
	}
	for p, key := range httpKeys {
		if key == "" {
			continue
		}
		m, err := NewHTTPModel(p, key, modelFor(p), opts...)
		if err != nil {
			return nil, err
		}
		r.models[string(p)] = m
	}

	if cfg.GeminiKey != "" {
		g, err := NewGeminiModel(ctx, cfg.GeminiKey, modelFor(ProviderGemini))
		if err != nil {
			return nil, err
		}
		r.models[string(ProviderGemini)] = g
		r.closers = append(r.closers, g)
	}

	zap.L().Info("[llm] models configured", zap.Strings("providers", r.Providers()))
	return r, nil
}

// Get returns a nil interface when the provider has no key.
func (r *Registry) Get(name string) interfaces.ILanguageModel {
	p, ok := ParseProvider(name)
	if !ok {
		return nil
	}
	m, ok := r.models[string(p)]
	if !ok {
		return nil
	}
	return m
}

// Models returns the configured models by provider name, with grok also
// reachable as "xai".
func (r *Registry) Models() map[string]interfaces.ILanguageModel {
	out := make(map[string]interfaces.ILanguageModel, len(r.models)+1)
	for name, m := range r.models {
		out[name] = m
	}
	if m, ok := r.models[string(ProviderGrok)]; ok {
		out["xai"] = m
	}
	return out
}

func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
