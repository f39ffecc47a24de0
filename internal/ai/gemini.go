package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements TextGenerator with the Google Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
	retry  retryPolicy
}

var _ TextGenerator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini client from the AI configuration
func NewGeminiClient(ctx context.Context, cfg config.AIConfig, logger zerolog.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  cfg.Model,
		retry:  newRetryPolicy(cfg.MaxRetries, logger.With().Str("component", "ai").Str("model", cfg.Model).Logger()),
	}, nil
}

// Generate sends the user prompt with the system prompt as instruction.
// 429 and 5xx answers are retried like the OpenRouter client does.
func (c *GeminiClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.SetMaxOutputTokens(defaultMaxTokens)
	model.SetTemperature(defaultTemperature)

	return c.retry.run(ctx, func() (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
		if err != nil {
			return "", geminiError(err)
		}
		return cleanCompletion(responseText(resp), "")
	})
}

// Close releases the underlying connection
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

func geminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &APIError{StatusCode: gErr.Code, Message: gErr.Message}
	}
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}
	return fmt.Errorf("gemini generate: %w", err)
}
