package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/domain"
)

// OccupationSystemPrompt instructs the model to answer occupation analysis with bare JSON
const OccupationSystemPrompt = "You are a personal finance onboarding assistant. Reply with strictly valid JSON and nothing else."

// SuggestedCategory is a spending category proposed for an occupation
type SuggestedCategory struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// OccupationAnalysis is the model's reading of a free-text occupation
type OccupationAnalysis struct {
	Occupation    string              `json:"occupation"`
	Confidence    int                 `json:"confidence"`
	Categories    []SuggestedCategory `json:"categories"`
	IncomePattern string              `json:"incomePattern"`
	FinancialTips []string            `json:"financialTips"`
}

// OccupationPrompt asks for categories, income pattern and tips for an occupation
func OccupationPrompt(input string) string {
	return fmt.Sprintf(`Analyze the following occupation/profession input: %q.

Return a JSON object with the following structure:
{
  "occupation": "Formalized Occupation Name",
  "confidence": 0-100 (confidence score),
  "categories": [
    { "name": "Category Name", "type": "essential" | "discretionary" | "savings", "icon": "Lucide icon name", "description": "Short reasoning" }
  ],
  "incomePattern": "Monthly Salary" | "Freelance" | "Business Revenue" | "Irregular",
  "financialTips": ["Tip 1", "Tip 2", "Tip 3"]
}

Generate 12-15 specific expense categories relevant to this profession.
Be strictly valid JSON.`, input)
}

// ParseOccupationAnalysis decodes the model's answer, tolerating markdown code fences
// and prose around the JSON object.
func ParseOccupationAnalysis(text string) (*OccupationAnalysis, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found", domain.ErrAIResponseInvalid)
	}

	var analysis OccupationAnalysis
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseInvalid, err)
	}
	if strings.TrimSpace(analysis.Occupation) == "" {
		return nil, fmt.Errorf("%w: occupation missing", domain.ErrAIResponseInvalid)
	}

	if analysis.Confidence < 0 {
		analysis.Confidence = 0
	}
	if analysis.Confidence > 100 {
		analysis.Confidence = 100
	}
	if analysis.Categories == nil {
		analysis.Categories = []SuggestedCategory{}
	}
	if analysis.FinancialTips == nil {
		analysis.FinancialTips = []string{}
	}
	return &analysis, nil
}
