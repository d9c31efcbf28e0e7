package suggest

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider with the Google Gemini API
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a new Gemini suggestion provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, config: config}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key is not configured")
	}
	return nil
}

func (p *GeminiProvider) model() string {
	if p.config.GeminiModel == "" {
		return DefaultGeminiModel
	}
	return p.config.GeminiModel
}

// Suggest asks Gemini for the remaining card fields
func (p *GeminiProvider) Suggest(ctx context.Context, hanzi string) (Suggestion, error) {
	hanzi = strings.TrimSpace(hanzi)
	if hanzi == "" {
		return Suggestion{}, ErrEmptyHanzi
	}

	ctx, cancel := withTimeout(ctx, p.config.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
		MaxOutputTokens:   150,
		ResponseMIMEType:  "application/json",
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model(),
		[]*genai.Content{genai.NewContentFromText(userPrompt(hanzi), genai.RoleUser)}, genConfig)
	if err != nil {
		return Suggestion{}, fmt.Errorf("Gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Suggestion{}, fmt.Errorf("no suggestion returned")
	}
	return parseSuggestion(text)
}
