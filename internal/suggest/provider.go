package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyHanzi is returned when a suggestion is requested for blank input
var ErrEmptyHanzi = errors.New("hanzi is empty")

// Provider defines the interface for field suggestion backends
type Provider interface {
	// Suggest returns pinyin and translations for hanzi
	Suggest(ctx context.Context, hanzi string) (Suggestion, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Suggestion holds the generated fields of a card
type Suggestion struct {
	Pinyin     string `json:"pinyin"`
	English    string `json:"english"`
	Vietnamese string `json:"vietnamese"`
}

// Config holds configuration for suggestion providers
type Config struct {
	Provider string        // Provider name: "openai" or "gemini"
	Timeout  time.Duration // Per request timeout

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // Optional, for compatible endpoints

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string // Optional

	Logger zerolog.Logger
}

// Default models and timeout
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultTimeout     = 20 * time.Second
)

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		Timeout:     DefaultTimeout,
		OpenAIModel: DefaultOpenAIModel,
		GeminiModel: DefaultGeminiModel,
		Logger:      zerolog.Nop(),
	}
}

// NewProvider creates the configured provider, guarded by a circuit
// breaker and backed by a session cache
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var (
		base Provider
		err  error
	)
	switch strings.ToLower(config.Provider) {
	case "openai":
		base, err = NewOpenAIProvider(config)
	case "gemini":
		base, err = NewGeminiProvider(context.Background(), config)
	default:
		return nil, fmt.Errorf("unknown suggestion provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	log := config.Logger.With().Str("component", "suggest").Str("provider", base.Name()).Logger()
	return NewCache(NewBreaker(base, log)), nil
}

const systemPrompt = `You help a learner build Mandarin Chinese flashcards.
For the Chinese word or phrase given by the user, reply with a JSON object
with exactly these keys:
  "pinyin": the Hanyu Pinyin reading with tone marks (not tone numbers),
  "english": a short English meaning (a few words),
  "vietnamese": a short Vietnamese meaning (a few words).
Reply with the JSON object only.`

func userPrompt(hanzi string) string {
	return fmt.Sprintf("Chinese: %s", hanzi)
}

// parseSuggestion decodes a model reply. Unknown keys and missing fields
// are errors. A surrounding markdown code fence is tolerated.
func parseSuggestion(raw string) (Suggestion, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var s Suggestion
	if err := dec.Decode(&s); err != nil {
		return Suggestion{}, fmt.Errorf("invalid suggestion response: %w", err)
	}
	if dec.More() {
		return Suggestion{}, fmt.Errorf("invalid suggestion response: trailing data")
	}

	s.Pinyin = strings.TrimSpace(s.Pinyin)
	s.English = strings.TrimSpace(s.English)
	s.Vietnamese = strings.TrimSpace(s.Vietnamese)

	var missing []string
	if s.Pinyin == "" {
		missing = append(missing, "pinyin")
	}
	if s.English == "" {
		missing = append(missing, "english")
	}
	if s.Vietnamese == "" {
		missing = append(missing, "vietnamese")
	}
	if len(missing) > 0 {
		return Suggestion{}, fmt.Errorf("invalid suggestion response: missing %s", strings.Join(missing, ", "))
	}
	return s, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
