package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt_Empty(t *testing.T) {
	prompt := BuildSystemPrompt(FinancialContext{})

	assert.Contains(t, prompt, "No expense data available.")
	assert.Contains(t, prompt, "You are CoinTrack AI")
	assert.Contains(t, prompt, "₹0.00")
}

func TestBuildSystemPrompt_WithData(t *testing.T) {
	fc := FinancialContext{
		AllTimeTotal:        decimal.RequireFromString("2500"),
		AllTimeTransactions: 12,
		MonthLabel:          "March 2025",
		MonthCombined:       decimal.RequireFromString("600"),
		MonthOneTime:        decimal.RequireFromString("500"),
		MonthRecurring:      decimal.RequireFromString("100"),
		MonthTransactions:   1,
		MonthCategories: []LabeledAmount{
			{Label: "Food", Amount: decimal.RequireFromString("500")},
			{Label: "Home", Amount: decimal.RequireFromString("100")},
		},
		Budgets: []LabeledAmount{{Label: "Food", Amount: decimal.RequireFromString("450")}},
		Recurring: []RecurringLine{{
			Name: "Insurance", Category: "Home", Frequency: "yearly",
			Amount: decimal.RequireFromString("1200"), MonthlyEquivalent: decimal.RequireFromString("100"),
		}},
		History: []HistoryLine{{
			Date: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Category: "Food",
			Amount: decimal.RequireFromString("500"), Note: "groceries",
		}},
	}

	prompt := BuildSystemPrompt(fc)

	assert.NotContains(t, prompt, "No expense data available.")
	assert.Contains(t, prompt, "- This Month (March 2025) Total: ₹600.00")
	assert.Contains(t, prompt, "  - One-time: ₹500.00")
	assert.Contains(t, prompt, "  - Recurring (monthly equivalent): ₹100.00")
	assert.Contains(t, prompt, "  - Food: ₹500.00")
	assert.Contains(t, prompt, "  - Food: ₹450.00")
	assert.Contains(t, prompt, "  - Insurance (Home): ₹1200.00 yearly = ₹100.00/month")
	assert.Contains(t, prompt, "No income data recorded.")
	assert.Contains(t, prompt, "  - 2025-03-15 | Food | ₹500.00 | groceries")
	assert.Less(t, strings.Index(prompt, "Category Breakdown"), strings.Index(prompt, "Monthly Budget Limits"))
}

func TestBuildUserPrompt(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "User: Asha\nTime: Sat, 15 Mar 2025 09:30 UTC\n\nQuestion: How much on food?",
		BuildUserPrompt("Asha", now, "How much on food?"))
	assert.True(t, strings.HasPrefix(BuildUserPrompt("", now, "q"), "User: User\n"))
}
