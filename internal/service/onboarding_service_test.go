package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisJSON = "```json\n" + `{
  "occupation": "Software Engineer",
  "confidence": 92,
  "categories": [
    {"name": "Cloud Services", "type": "essential", "icon": "Cloud", "description": "Side projects"},
    {"name": "Books", "type": "discretionary", "icon": "Book", "description": "Learning"}
  ],
  "incomePattern": "Monthly Salary",
  "financialTips": ["Automate savings"]
}` + "\n```"

func setupOnboardingService(gen ai.TextGenerator) (*OnboardingService, profileFixture) {
	f := setupProfileService()
	_ = f.svc.EnsureUser(context.Background(), testUser, "a@example.com", nil)
	return NewOnboardingService(gen, f.svc), f
}

func TestAnalyzeOccupation(t *testing.T) {
	gen := &testutil.MockTextGenerator{Response: analysisJSON}
	svc, _ := setupOnboardingService(gen)

	analysis, err := svc.AnalyzeOccupation(context.Background(), "  backend developer ")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", analysis.Occupation)
	assert.Equal(t, 92, analysis.Confidence)
	assert.Len(t, analysis.Categories, 2)

	require.Len(t, gen.Calls, 1)
	assert.Equal(t, ai.OccupationSystemPrompt, gen.Calls[0].SystemPrompt)
	assert.Contains(t, gen.Calls[0].UserPrompt, `"backend developer"`)
}

func TestAnalyzeOccupation_Errors(t *testing.T) {
	_, err := NewOnboardingService(&testutil.MockTextGenerator{}, nil).AnalyzeOccupation(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrOccupationRequired)

	_, err = NewOnboardingService(nil, nil).AnalyzeOccupation(context.Background(), "chef")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)

	upstream := &ai.APIError{StatusCode: 503, Message: "overloaded"}
	_, err = NewOnboardingService(&testutil.MockTextGenerator{Err: upstream}, nil).AnalyzeOccupation(context.Background(), "chef")
	var apiErr *ai.APIError
	assert.True(t, errors.As(err, &apiErr))

	_, err = NewOnboardingService(&testutil.MockTextGenerator{Response: "I am not JSON"}, nil).AnalyzeOccupation(context.Background(), "chef")
	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)
}

func TestApplyAnalysis(t *testing.T) {
	svc, f := setupOnboardingService(nil)
	analysis, err := ai.ParseOccupationAnalysis(analysisJSON)
	require.NoError(t, err)

	user, err := svc.ApplyAnalysis(context.Background(), testUser, analysis)
	require.NoError(t, err)

	assert.True(t, user.OnboardingCompleted)
	assert.Equal(t, domain.OccupationCustom, user.Occupation.Type)
	require.NotNil(t, user.Occupation.Confidence)
	assert.Equal(t, 92, *user.Occupation.Confidence)
	assert.Equal(t, "Cloud Services", user.Categories[0].Name)
	assert.Equal(t, "Side projects", user.Categories[0].Description)
	assert.Equal(t, []string{"profile.updated"}, f.publisher.EventTypes())

	_, err = svc.ApplyAnalysis(context.Background(), testUser, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		role       string
		title      string
		categories int
		pattern    string
	}{
		{"student", "Student", 5, "Allowance/Part-time"},
		{" Professional ", "Corporate Professional", 6, "Monthly Salary"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			svc, _ := setupOnboardingService(nil)
			user, err := svc.ApplyPreset(context.Background(), testUser, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.title, user.Occupation.Title)
			assert.Equal(t, tt.pattern, user.Occupation.IncomePattern)
			assert.Len(t, user.Categories, tt.categories)
			assert.Len(t, user.FinancialTips, 2)
			assert.True(t, user.OnboardingCompleted)
		})
	}
}

func TestApplyPreset_Unknown(t *testing.T) {
	svc, _ := setupOnboardingService(nil)
	_, err := svc.ApplyPreset(context.Background(), testUser, "astronaut")
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
}
