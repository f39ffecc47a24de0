package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/rs/zerolog/log"
)

// chatHistoryLimit is how many recent transactions the assistant sees
const chatHistoryLimit = 30

// Assistant replies used when the generator cannot answer
const (
	ReplyNotConfigured = "⚠️ AI service is not configured. Please ask the administrator to set OPENROUTER_API_KEY."
	ReplyEmpty         = "I couldn't generate a response. Please try again."
	ReplyConnection    = "⚠️ Connection failed. Please try again."
	replyAPIErrorFmt   = "⚠️ AI service error: %s"
)

// ChatService answers questions about the user's finances
type ChatService struct {
	generator     ai.TextGenerator
	userRepo      domain.UserRepository
	expenseRepo   domain.ExpenseRepository
	recurringRepo domain.RecurringRepository
	budgetRepo    domain.BudgetRepository
	incomeRepo    domain.IncomeRepository
	opts          Options
}

// NewChatService creates a new ChatService. A nil generator leaves the
// assistant unconfigured.
func NewChatService(
	generator ai.TextGenerator,
	userRepo domain.UserRepository,
	expenseRepo domain.ExpenseRepository,
	recurringRepo domain.RecurringRepository,
	budgetRepo domain.BudgetRepository,
	incomeRepo domain.IncomeRepository,
	opts Options,
) *ChatService {
	return &ChatService{
		generator:     generator,
		userRepo:      userRepo,
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		budgetRepo:    budgetRepo,
		incomeRepo:    incomeRepo,
		opts:          opts.withDefaults(),
	}
}

// ChatReply is the assistant's answer. Degraded is set when the answer is a
// fallback message rather than generated text.
type ChatReply struct {
	Response string `json:"response"`
	Degraded bool   `json:"degraded"`
}

// Ask answers a question. Generator failures come back as a degraded reply,
// not an error; only invalid input, data loading and cancellation fail.
func (s *ChatService) Ask(ctx context.Context, userID, question string) (*ChatReply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrQuestionRequired
	}
	if len([]rune(question)) > domain.MaxQuestionLength {
		return nil, domain.ErrQuestionTooLong
	}

	if s.generator == nil {
		return &ChatReply{Response: ReplyNotConfigured, Degraded: true}, nil
	}

	fc, err := s.BuildContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := ""
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		name = user.Email
		if user.DisplayName != nil && *user.DisplayName != "" {
			name = *user.DisplayName
		}
	}

	text, err := s.generator.Generate(ctx, ai.BuildSystemPrompt(*fc), ai.BuildUserPrompt(name, s.opts.now(), question))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Assistant generation failed")
		return &ChatReply{Response: degradedReply(err), Degraded: true}, nil
	}

	return &ChatReply{Response: text}, nil
}

// BuildContext assembles the financial snapshot the assistant answers from.
// Month figures use the same aggregation as the dashboard.
func (s *ChatService) BuildContext(ctx context.Context, userID string) (*ai.FinancialContext, error) {
	expenses, err := s.expenseRepo.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	limits, err := s.budgetRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get budget limits: %w", err)
	}
	incomes, err := s.incomeRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}

	now := s.opts.now()
	month := aggregation.Aggregate(expenses, recurring, now.Year(), now.Month(), s.opts.Location)

	fc := &ai.FinancialContext{
		AllTimeTotal:        aggregation.OneTimeTotal(expenses),
		AllTimeTransactions: len(expenses),
		MonthLabel:          now.Format("January 2006"),
		MonthCombined:       month.CombinedTotal,
		MonthOneTime:        month.OneTimeTotal,
		MonthRecurring:      month.RecurringTotal,
		MonthTransactions:   month.TransactionCount,
	}

	for _, c := range aggregation.SortedCategories(month.PerCategory) {
		fc.MonthCategories = append(fc.MonthCategories, ai.LabeledAmount{Label: c.Category, Amount: c.Amount})
	}

	categories := make([]string, 0, len(limits))
	for cat := range limits {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fc.Budgets = append(fc.Budgets, ai.LabeledAmount{Label: cat, Amount: limits[cat]})
	}

	for _, rt := range recurring {
		fc.Recurring = append(fc.Recurring, ai.RecurringLine{
			Name:              rt.Name,
			Category:          categoryOr(rt.Category, domain.DefaultRecurringCategory),
			Frequency:         string(rt.Frequency),
			Amount:            rt.Amount,
			MonthlyEquivalent: aggregation.MonthlyEquivalent(rt.Amount, rt.Frequency),
		})
	}

	for _, inc := range incomes {
		fc.Incomes = append(fc.Incomes, ai.LabeledAmount{Label: util.MonthKey(inc.Year, inc.Month), Amount: inc.Amount})
	}

	history := expenses
	if len(history) > chatHistoryLimit {
		history = history[:chatHistoryLimit]
	}
	for _, exp := range history {
		line := ai.HistoryLine{
			Date:     exp.Date.In(s.opts.Location),
			Category: categoryOr(exp.Category, domain.DefaultExpenseCategory),
			Amount:   exp.Amount,
		}
		if exp.Note != nil {
			line.Note = *exp.Note
		}
		fc.History = append(fc.History, line)
	}

	return fc, nil
}

func degradedReply(err error) string {
	var apiErr *ai.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf(replyAPIErrorFmt, apiErr.Message)
	case errors.Is(err, ai.ErrEmptyResponse):
		return ReplyEmpty
	default:
		return ReplyConnection
	}
}
