package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// LabeledAmount is one named amount, e.g. a category total or a budget limit
type LabeledAmount struct {
	Label  string
	Amount decimal.Decimal
}

// RecurringLine describes one recurring commitment for the assistant
type RecurringLine struct {
	Name              string
	Category          string
	Frequency         string
	Amount            decimal.Decimal
	MonthlyEquivalent decimal.Decimal
}

// HistoryLine is one one-time expense in the transaction log
type HistoryLine struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Note     string
}

// FinancialContext is the snapshot of a user's finances the assistant answers from.
// Month figures come from the monthly aggregate of the current month.
type FinancialContext struct {
	AllTimeTotal        decimal.Decimal
	AllTimeTransactions int

	MonthLabel        string
	MonthCombined     decimal.Decimal
	MonthOneTime      decimal.Decimal
	MonthRecurring    decimal.Decimal
	MonthTransactions int
	MonthCategories   []LabeledAmount

	Budgets   []LabeledAmount
	Recurring []RecurringLine
	Incomes   []LabeledAmount
	History   []HistoryLine
}

// IsEmpty reports whether the user has no recorded spending at all
func (f FinancialContext) IsEmpty() bool {
	return f.AllTimeTransactions == 0 && len(f.Recurring) == 0
}

func money(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}

func writeAmounts(b *strings.Builder, items []LabeledAmount, empty string) {
	if len(items) == 0 {
		b.WriteString("  " + empty + "\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "  - %s: %s\n", it.Label, money(it.Amount))
	}
}

// BuildSystemPrompt renders the assistant instructions with the user's data embedded
func BuildSystemPrompt(fc FinancialContext) string {
	var data strings.Builder

	if fc.IsEmpty() {
		data.WriteString("No expense data available.\n")
	} else {
		data.WriteString("Current Financial Snapshot:\n")
		fmt.Fprintf(&data, "- Total Expenses (all time, one-time): %s\n", money(fc.AllTimeTotal))
		fmt.Fprintf(&data, "- Total Transactions: %d\n", fc.AllTimeTransactions)
		fmt.Fprintf(&data, "- This Month (%s) Total: %s\n", fc.MonthLabel, money(fc.MonthCombined))
		fmt.Fprintf(&data, "  - One-time: %s\n", money(fc.MonthOneTime))
		fmt.Fprintf(&data, "  - Recurring (monthly equivalent): %s\n", money(fc.MonthRecurring))
		fmt.Fprintf(&data, "- This Month's Transactions: %d\n", fc.MonthTransactions)

		data.WriteString("\nCategory Breakdown (this month):\n")
		writeAmounts(&data, fc.MonthCategories, "No categories yet")

		data.WriteString("\nMonthly Budget Limits:\n")
		writeAmounts(&data, fc.Budgets, "No budgets set.")

		data.WriteString("\nMonthly Recurring Commitments:\n")
		if len(fc.Recurring) == 0 {
			data.WriteString("  No recurring expenses set.\n")
		}
		for _, r := range fc.Recurring {
			fmt.Fprintf(&data, "  - %s (%s): %s %s = %s/month\n",
				r.Name, r.Category, money(r.Amount), r.Frequency, money(r.MonthlyEquivalent))
		}

		data.WriteString("\nMonthly Income History:\n")
		writeAmounts(&data, fc.Incomes, "No income data recorded.")

		fmt.Fprintf(&data, "\nTransaction History (latest %d items):\n", len(fc.History))
		if len(fc.History) == 0 {
			data.WriteString("  No transaction history.\n")
		}
		for _, h := range fc.History {
			line := fmt.Sprintf("  - %s | %s | %s", h.Date.Format("2006-01-02"), h.Category, money(h.Amount))
			if h.Note != "" {
				line += " | " + h.Note
			}
			data.WriteString(line + "\n")
		}
	}

	return `You are CoinTrack AI, a helpful financial assistant for the CoinTrack app.

IMPORTANT: You have access to the user's REAL expense data. Use ONLY this data when answering questions about their spending. Do NOT make up any numbers or fake data.

` + data.String() + `
Your role:
- Answer questions about their ACTUAL spending (use the data above)
- Provide budgeting and saving tips
- Analyze their spending patterns based on REAL data
- Be concise, accurate, and helpful

If the user has no expenses or the data shows ` + money(decimal.Zero) + `, tell them to add expenses first.
Use markdown formatting for lists when helpful.`
}

// BuildUserPrompt wraps the question with who is asking and when
func BuildUserPrompt(user string, now time.Time, question string) string {
	if user == "" {
		user = "User"
	}
	return fmt.Sprintf("User: %s\nTime: %s\n\nQuestion: %s", user, now.Format("Mon, 02 Jan 2006 15:04 MST"), question)
}
