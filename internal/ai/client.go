package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/config"
	"github.com/rs/zerolog"
)

const (
	defaultMaxTokens   = 1500
	defaultTemperature = 0.7
	appTitle           = "CoinTrack Chat"
	reasoningPrefix    = "I've analyzed your data. "
	reasoningMaxLen    = 500
	maxResponseBytes   = 1 << 20
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// OpenRouterClient implements TextGenerator against an OpenAI-compatible
// chat completions endpoint.
type OpenRouterClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	retry      retryPolicy
}

var _ TextGenerator = (*OpenRouterClient)(nil)

// NewOpenRouterClient creates a client from the AI configuration
func NewOpenRouterClient(cfg config.AIConfig, logger zerolog.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		retry:      newRetryPolicy(cfg.MaxRetries, logger.With().Str("component", "ai").Str("model", cfg.Model).Logger()),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends both prompts and returns the cleaned completion text.
// Network failures, 429 and 5xx answers are retried with linear backoff.
func (c *OpenRouterClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	return c.retry.run(ctx, func() (string, error) {
		return c.do(ctx, body)
	})
}

func (c *OpenRouterClient) do(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", appTitle)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transportError{err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return cleanCompletion(parsed.Choices[0].Message.Content, parsed.Choices[0].Message.Reasoning)
}

// cleanCompletion falls back to the model's reasoning when content is blank
// and strips <think> blocks.
func cleanCompletion(content, reasoning string) (string, error) {
	text := content
	if strings.TrimSpace(text) == "" {
		if strings.TrimSpace(reasoning) == "" {
			return "", ErrEmptyResponse
		}
		r := []rune(reasoning)
		if len(r) > reasoningMaxLen {
			r = r[:reasoningMaxLen]
		}
		text = reasoningPrefix + string(r) + "..."
	}
	text = thinkBlock.ReplaceAllString(strings.TrimSpace(text), "")
	return strings.TrimSpace(text), nil
}

func errorMessage(raw []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return "Unknown error"
}

// transportError marks failures where no HTTP answer was received
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "send chat request: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }
