package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget limits and their evaluation against spend
type BudgetService struct {
	events
	budgetRepo    domain.BudgetRepository
	expenseRepo   domain.ExpenseRepository
	recurringRepo domain.RecurringRepository
	opts          Options
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, expenseRepo domain.ExpenseRepository, recurringRepo domain.RecurringRepository, opts Options) *BudgetService {
	return &BudgetService{
		budgetRepo:    budgetRepo,
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		opts:          opts.withDefaults(),
	}
}

// BudgetOverview is the budget evaluation for one month
type BudgetOverview struct {
	Year       int                        `json:"year"`
	Month      int                        `json:"month"`
	TotalLimit decimal.Decimal            `json:"totalLimit"`
	TotalSpent decimal.Decimal            `json:"totalSpent"`
	Statuses   []aggregation.BudgetStatus `json:"statuses"`
}

// GetLimits returns all of the user's category limits
func (s *BudgetService) GetLimits(ctx context.Context, userID string) (domain.BudgetLimits, error) {
	return s.budgetRepo.Get(ctx, userID)
}

// SetLimit sets one category's limit, leaving other categories untouched
func (s *BudgetService) SetLimit(ctx context.Context, userID, category string, limit decimal.Decimal) error {
	category, err := validateBudgetCategory(category)
	if err != nil {
		return err
	}
	if limit.IsNegative() || !domain.FitsMoney(limit) {
		return domain.ErrInvalidLimit
	}

	return s.SetLimits(ctx, userID, domain.BudgetLimits{category: limit})
}

// SetLimits merge-upserts several category limits at once
func (s *BudgetService) SetLimits(ctx context.Context, userID string, limits domain.BudgetLimits) error {
	if len(limits) == 0 {
		return nil
	}
	for _, limit := range limits {
		if limit.IsNegative() || !domain.FitsMoney(limit) {
			return domain.ErrInvalidLimit
		}
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.budgetRepo.Upsert(wctx, userID, limits); err != nil {
		return fmt.Errorf("upsert budget limits: %w", err)
	}

	s.publishEvent(userID, websocket.BudgetUpdated(limits))
	return nil
}

// DeleteLimit removes one category's limit
func (s *BudgetService) DeleteLimit(ctx context.Context, userID, category string) error {
	category, err := validateBudgetCategory(category)
	if err != nil {
		return err
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.budgetRepo.Delete(wctx, userID, category); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.BudgetDeleted(map[string]string{"category": category}))
	return nil
}

// GetStatus evaluates the month's combined spend per category against the limits
func (s *BudgetService) GetStatus(ctx context.Context, userID string, year, month int) (*BudgetOverview, error) {
	if err := util.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}

	limits, err := s.budgetRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get budget limits: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx, userID, s.opts.monthFilters(year, month))
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}

	agg := aggregation.Aggregate(expenses, recurring, year, monthOf(month), s.opts.Location)
	statuses := aggregation.EvaluateBudgets(agg.PerCategory, limits)

	totalLimit := decimal.Zero
	for _, st := range statuses {
		totalLimit = totalLimit.Add(st.Limit)
	}

	return &BudgetOverview{
		Year:       year,
		Month:      month,
		TotalLimit: totalLimit,
		TotalSpent: agg.CombinedTotal,
		Statuses:   statuses,
	}, nil
}

func validateBudgetCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return "", domain.ErrCategoryTooLong
	}
	return category, nil
}
