package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

// Provider names used in logs and metrics
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrNoChoices is returned when a provider answers without any completion
var ErrNoChoices = errors.New("llm returned no choices")

// Model is the part of llms.Model used here. Tests substitute a fake.
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Provider wraps one configured LLM backend
type Provider struct {
	name string
	llm  Model
	// inlineImages sends raw image bytes; otherwise images travel as a data URL
	inlineImages bool
}

// NewProvider wraps a model under the given name
func NewProvider(name string, model Model, inlineImages bool) *Provider {
	return &Provider{name: name, llm: model, inlineImages: inlineImages}
}

// Name returns the provider name
func (p *Provider) Name() string {
	return p.name
}

// Chat sends a system and user prompt and returns the first completion
func (p *Provider) Chat(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	return p.generate(ctx, messages, llms.WithTemperature(0.3), llms.WithMaxTokens(maxTokens))
}

// ChatWithImage sends an image followed by a prompt
func (p *Provider) ChatWithImage(ctx context.Context, prompt string, image []byte, mimeType string, maxTokens int) (string, error) {
	var imagePart llms.ContentPart
	if p.inlineImages {
		imagePart = llms.BinaryPart(mimeType, image)
	} else {
		imagePart = llms.ImageURLPart(fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image)))
	}

	messages := []llms.MessageContent{{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{imagePart, llms.TextPart(prompt)},
	}}
	return p.generate(ctx, messages, llms.WithMaxTokens(maxTokens))
}

func (p *Provider) generate(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (string, error) {
	resp, err := p.llm.GenerateContent(ctx, messages, options...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.name, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", p.name, ErrNoChoices)
	}
	return resp.Choices[0].Content, nil
}

// Providers holds the configured backends. A nil field means no API key.
type Providers struct {
	OpenAI    *Provider
	Anthropic *Provider
}

// NewProviders builds a provider for every API key present in cfg
func NewProviders(cfg config.AIConfig) (*Providers, error) {
	providers := &Providers{}

	if cfg.OpenAIKey != "" {
		opts := []openai.Option{
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.OpenAIModel),
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		providers.OpenAI = NewProvider(ProviderOpenAI, llm, false)
	}

	if cfg.AnthropicKey != "" {
		opts := []anthropic.Option{
			anthropic.WithToken(cfg.AnthropicKey),
			anthropic.WithModel(cfg.AnthropicModel),
		}
		if cfg.AnthropicBaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.AnthropicBaseURL))
		}
		llm, err := anthropic.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		providers.Anthropic = NewProvider(ProviderAnthropic, llm, true)
	}

	return providers, nil
}

// Text returns the providers for text analysis, OpenAI first
func (p *Providers) Text() []*Provider {
	return p.ordered(p.OpenAI, p.Anthropic)
}

// Vision returns the providers for image reading, Anthropic first
func (p *Providers) Vision() []*Provider {
	return p.ordered(p.Anthropic, p.OpenAI)
}

func (p *Providers) ordered(candidates ...*Provider) []*Provider {
	if p == nil {
		return nil
	}
	var out []*Provider
	for _, c := range candidates {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
