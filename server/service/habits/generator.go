package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/tasknest/tasknest/internal/profile"
)

// generationTemperature is fixed: the report wants consistency, not variety.
const generationTemperature = 0.2

// defaultRetryDelay is the fixed pause between generation attempts.
const defaultRetryDelay = 500 * time.Millisecond

// GenerationConfig configures the overlay call.
type GenerationConfig struct {
	Enabled   bool
	Token     string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
	// Retries is the number of additional attempts after the first.
	Retries int
}

// GenerationConfigFromProfile maps server profile settings.
func GenerationConfigFromProfile(p *profile.Profile) GenerationConfig {
	return GenerationConfig{
		Enabled:   p.LLMEnabled,
		Token:     p.LLMToken,
		Model:     p.LLMModel,
		BaseURL:   p.LLMBaseURL,
		Timeout:   p.LLMTimeout,
		MaxTokens: p.LLMMaxTokens,
		Retries:   p.LLMRetries,
	}
}

// GenerationClient performs the bounded chat-completion call for the report
// overlay. It never returns an error to its caller: disabled configuration,
// transport failures, retry exhaustion and malformed responses all come back
// as "no result", which the composer treats as the normal degraded case.
type GenerationClient struct {
	config     GenerationConfig
	client     *openai.Client
	retryDelay time.Duration
}

// NewGenerationClient creates a generation client. A nil-safe client is
// returned even when generation is disabled; calls then short-circuit.
func NewGenerationClient(config GenerationConfig) *GenerationClient {
	clientConfig := openai.DefaultConfig(config.Token)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	return &GenerationClient{
		config:     config,
		client:     openai.NewClientWithConfig(clientConfig),
		retryDelay: defaultRetryDelay,
	}
}

// Generate runs the prompt and returns the trimmed model output.
// The second return value is false when there is no usable result.
func (c *GenerationClient) Generate(ctx context.Context, prompt string) (string, bool) {
	if !c.config.Enabled || c.config.Token == "" || c.config.Model == "" {
		slog.Info("generation disabled or not configured",
			"enabled", c.config.Enabled,
			"has_token", c.config.Token != "",
			"model", c.config.Model)
		return "", false
	}

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: generationTemperature,
	}

	attempts := c.config.Retries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				slog.Warn("generation response has no choices")
				return "", false
			}
			content := strings.TrimSpace(resp.Choices[0].Message.Content)
			if content == "" {
				return "", false
			}
			return content, true
		}

		if ctx.Err() != nil {
			// Caller gave up; no point retrying on its behalf.
			slog.Warn("generation canceled", "error", ctx.Err())
			return "", false
		}
		if !isRetriable(err) {
			slog.Warn("generation request failed", "attempt", attempt+1, "error", err)
			return "", false
		}

		slog.Warn("generation request failed, will retry",
			"attempt", attempt+1,
			"attempts", attempts,
			"error", err)

		if attempt < attempts-1 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return "", false
			}
		}
	}

	slog.Warn("generation retries exhausted", "attempts", attempts)
	return "", false
}

// isRetriable classifies transient failures: rate limiting, upstream server
// errors, and network/timeout problems. Any other HTTP error is final.
func isRetriable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	// Anything that never produced an HTTP status: DNS failures, connection
	// resets, client-side timeouts.
	return true
}

// buildPrompt embeds the metrics object and the requested output schema,
// selecting wording by the user's language tag.
func buildPrompt(metrics Metrics, days int, language string) string {
	payload, err := json.Marshal(metrics)
	if err != nil {
		// Metrics is a plain value type; this cannot happen in practice.
		payload = []byte("{}")
	}

	if strings.HasPrefix(strings.ToLower(language), "ru") {
		return "Ты — аналитик привычек для бота задач. " +
			"Верни JSON без лишнего текста. " +
			`Формат: {"short": "2–3 строки, максимум 350 символов", ` +
			`"long": "5–7 строк, максимум 900 символов", ` +
			`"tips": ["2-4 коротких рекомендаций"]}. ` +
			"Тон: дружелюбный, конкретный, без воды. " +
			"Не выдумывай данные, используй только метрики.\n\n" +
			fmt.Sprintf("Период: %d дней.\n", days) +
			fmt.Sprintf("Метрики (JSON): %s", payload)
	}
	return "You are a habits analyst for a task bot. " +
		"Return JSON only. " +
		`Format: {"short": "2-3 lines, max 350 chars", ` +
		`"long": "5-7 lines, max 900 chars", ` +
		`"tips": ["2-4 short recommendations"]}. ` +
		"Tone: friendly, concrete, no fluff. " +
		"Use only the given metrics.\n\n" +
		fmt.Sprintf("Period: %d days.\n", days) +
		fmt.Sprintf("Metrics (JSON): %s", payload)
}
