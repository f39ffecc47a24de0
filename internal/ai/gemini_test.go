package ai

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("You spent "), genai.Text("₹1,200 on food.")}},
			}}},
			want: "You spent ₹1,200 on food.",
		},
		{
			name: "ignores non text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("ok")}},
			}}},
			want: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseText(tt.resp))
		})
	}
}

func TestGeminiError(t *testing.T) {
	err := geminiError(&googleapi.Error{Code: 503, Message: "overloaded"})
	var apiErr *APIError
	if assert.True(t, errors.As(err, &apiErr)) {
		assert.Equal(t, 503, apiErr.StatusCode)
		assert.Equal(t, "overloaded", apiErr.Message)
		assert.True(t, apiErr.Retryable())
	}

	err = geminiError(&genai.BlockedError{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	err = geminiError(errors.New("dial tcp: timeout"))
	assert.ErrorContains(t, err, "gemini generate")
	assert.False(t, errors.As(err, &apiErr))
}
