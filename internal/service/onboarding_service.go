package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/domain"
)

const maxOccupationLength = 200

type rolePreset struct {
	title         string
	categories    []domain.ProfileCategory
	incomePattern string
	tips          []string
}

// presets are the ready-made profiles for the standard roles
var presets = map[domain.OccupationType]rolePreset{
	domain.OccupationStudent: {
		title: "Student",
		categories: []domain.ProfileCategory{
			{Name: "Tuition", Type: "essential", Icon: "GraduationCap"},
			{Name: "Textbooks", Type: "essential", Icon: "Book"},
			{Name: "Food", Type: "essential", Icon: "Utensils"},
			{Name: "Transport", Type: "essential", Icon: "Bus"},
			{Name: "Entertainment", Type: "discretionary", Icon: "Gamepad2"},
		},
		incomePattern: "Allowance/Part-time",
		tips:          []string{"Use student discounts everywhere", "Buy used textbooks"},
	},
	domain.OccupationProfessional: {
		title: "Corporate Professional",
		categories: []domain.ProfileCategory{
			{Name: "Rent/Mortgage", Type: "essential", Icon: "Home"},
			{Name: "Groceries", Type: "essential", Icon: "ShoppingCart"},
			{Name: "Commute", Type: "essential", Icon: "Car"},
			{Name: "Savings", Type: "savings", Icon: "PiggyBank"},
			{Name: "Dining Out", Type: "discretionary", Icon: "Utensils"},
			{Name: "Utilities", Type: "essential", Icon: "Zap"},
		},
		incomePattern: "Monthly Salary",
		tips:          []string{"Max out 401k match", "Build 6-month emergency fund"},
	},
}

// OnboardingService sets up a new user's profile from a preset role or an
// AI analysis of their occupation
type OnboardingService struct {
	generator ai.TextGenerator
	profiles  *ProfileService
}

// NewOnboardingService creates a new OnboardingService. A nil generator
// disables occupation analysis.
func NewOnboardingService(generator ai.TextGenerator, profiles *ProfileService) *OnboardingService {
	return &OnboardingService{
		generator: generator,
		profiles:  profiles,
	}
}

// AnalyzeOccupation asks the model for categories, income pattern and tips
// that suit a free-text occupation
func (s *OnboardingService) AnalyzeOccupation(ctx context.Context, occupation string) (*ai.OccupationAnalysis, error) {
	occupation = strings.TrimSpace(occupation)
	if occupation == "" {
		return nil, domain.ErrOccupationRequired
	}
	if len(occupation) > maxOccupationLength {
		return nil, domain.ErrNameTooLong
	}
	if s.generator == nil {
		return nil, domain.ErrAIUnavailable
	}

	text, err := s.generator.Generate(ctx, ai.OccupationSystemPrompt, ai.OccupationPrompt(occupation))
	if err != nil {
		return nil, fmt.Errorf("analyze occupation: %w", err)
	}
	return ai.ParseOccupationAnalysis(text)
}

// ApplyAnalysis saves an occupation analysis as the user's profile and
// completes onboarding
func (s *OnboardingService) ApplyAnalysis(ctx context.Context, userID string, analysis *ai.OccupationAnalysis) (*domain.User, error) {
	if analysis == nil {
		return nil, domain.ErrInvalidInput
	}
	confidence := analysis.Confidence
	categories := make([]domain.ProfileCategory, 0, len(analysis.Categories))
	for _, c := range analysis.Categories {
		categories = append(categories, domain.ProfileCategory{
			Name:        c.Name,
			Type:        c.Type,
			Icon:        c.Icon,
			Description: c.Description,
		})
	}
	return s.profiles.SaveProfile(ctx, userID, SaveProfileInput{
		Occupation: &domain.Occupation{
			Title:         analysis.Occupation,
			Type:          domain.OccupationCustom,
			Confidence:    &confidence,
			IncomePattern: analysis.IncomePattern,
		},
		Categories:          categories,
		FinancialTips:       analysis.FinancialTips,
		OnboardingCompleted: true,
	})
}

// ApplyPreset saves the ready-made profile for a standard role and
// completes onboarding
func (s *OnboardingService) ApplyPreset(ctx context.Context, userID string, role string) (*domain.User, error) {
	preset, ok := presets[domain.OccupationType(strings.ToLower(strings.TrimSpace(role)))]
	if !ok {
		return nil, domain.ErrUnknownPreset
	}

	categories := make([]domain.ProfileCategory, len(preset.categories))
	copy(categories, preset.categories)
	tips := make([]string, len(preset.tips))
	copy(tips, preset.tips)

	return s.profiles.SaveProfile(ctx, userID, SaveProfileInput{
		Occupation: &domain.Occupation{
			Title:         preset.title,
			Type:          domain.OccupationType(strings.ToLower(strings.TrimSpace(role))),
			IncomePattern: preset.incomePattern,
		},
		Categories:          categories,
		FinancialTips:       tips,
		OnboardingCompleted: true,
	})
}
