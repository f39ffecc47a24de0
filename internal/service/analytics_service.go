package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/shopspring/decimal"
)

const (
	// DefaultTrendMonths is the trend window when none is configured
	DefaultTrendMonths = 6
	dashboardDays      = 7
)

// TrendSettings configures trend series
type TrendSettings struct {
	Months int
	// HistoricalCutoff hides recurring spend in trend months before it. Nil disables.
	HistoricalCutoff *time.Time
}

// AnalyticsService computes the derived spending views. Every figure is
// recomputed from the stored expenses, recurring commitments and incomes.
type AnalyticsService struct {
	expenseRepo   domain.ExpenseRepository
	recurringRepo domain.RecurringRepository
	incomeRepo    domain.IncomeRepository
	opts          Options
	trend         TrendSettings
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(expenseRepo domain.ExpenseRepository, recurringRepo domain.RecurringRepository, incomeRepo domain.IncomeRepository, opts Options, trend TrendSettings) *AnalyticsService {
	if trend.Months <= 0 {
		trend.Months = DefaultTrendMonths
	}
	return &AnalyticsService{
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		incomeRepo:    incomeRepo,
		opts:          opts.withDefaults(),
		trend:         trend,
	}
}

// Dashboard is the overview of the current month
type Dashboard struct {
	Month              aggregation.MonthlyAggregate `json:"month"`
	PreviousMonthTotal decimal.Decimal              `json:"previousMonthTotal"`
	Categories         []aggregation.CategoryAmount `json:"categories"`
	Today              aggregation.DayTotals        `json:"today"`
	LastSevenDays      []aggregation.DayPoint       `json:"lastSevenDays"`
	Income             decimal.Decimal              `json:"income"`
	Remaining          decimal.Decimal              `json:"remaining"`
}

// Stats are the all-time headline figures
type Stats struct {
	AllTimeOneTime   decimal.Decimal `json:"allTimeOneTime"`
	MonthRecurring   decimal.Decimal `json:"monthRecurring"`
	HolisticTotal    decimal.Decimal `json:"holisticTotal"`
	AverageDaily     decimal.Decimal `json:"averageDaily"`
	TransactionCount int             `json:"transactionCount"`
	CategoryCount    int             `json:"categoryCount"`
}

// MonthSummary is a month's aggregate plus the recurring items counted in it
type MonthSummary struct {
	aggregation.MonthlyAggregate
	Recurring []aggregation.RecurringLine `json:"recurring"`
}

// MonthSummary aggregates one calendar month
func (s *AnalyticsService) MonthSummary(ctx context.Context, userID string, year, month int) (*MonthSummary, error) {
	if err := util.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.List(ctx, userID, s.opts.monthFilters(year, month))
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}

	return &MonthSummary{
		MonthlyAggregate: aggregation.Aggregate(expenses, recurring, year, monthOf(month), s.opts.Location),
		Recurring:        aggregation.ActiveRecurring(recurring, year, monthOf(month), s.opts.Location),
	}, nil
}

// Trend builds the trailing series ending with the current month.
// months <= 0 uses the configured window.
func (s *AnalyticsService) Trend(ctx context.Context, userID string, months int) ([]aggregation.SeriesPoint, error) {
	if months <= 0 {
		months = s.trend.Months
	}
	if months > aggregation.MaxSeriesMonths {
		months = aggregation.MaxSeriesMonths
	}

	now := s.opts.now()
	oldest := aggregation.MonthWindow(now.Year(), now.Month()-time.Month(months-1), s.opts.Location)

	expenses, err := s.expenseRepo.List(ctx, userID, &domain.ExpenseFilters{StartDate: &oldest.Start})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	incomes, err := s.incomeRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}

	return aggregation.BuildSeries(expenses, recurring, incomes, aggregation.SeriesOptions{
		Now:              now,
		Months:           months,
		HistoricalCutoff: s.trend.HistoricalCutoff,
		Location:         s.opts.Location,
	}), nil
}

// Dashboard summarizes the current month, today and the last seven days
func (s *AnalyticsService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	now := s.opts.now()
	year, month := now.Year(), int(now.Month())
	prevYear, prevMonth := util.PreviousMonth(year, month)

	from := aggregation.MonthWindow(prevYear, monthOf(prevMonth), s.opts.Location).Start
	weekStart := aggregation.DayWindow(now.AddDate(0, 0, -(dashboardDays-1)), s.opts.Location).Start
	if weekStart.Before(from) {
		from = weekStart
	}

	expenses, err := s.expenseRepo.List(ctx, userID, &domain.ExpenseFilters{StartDate: &from})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}

	current := aggregation.Aggregate(expenses, recurring, year, monthOf(month), s.opts.Location)
	previous := aggregation.Aggregate(expenses, recurring, prevYear, monthOf(prevMonth), s.opts.Location)

	income := decimal.Zero
	inc, err := s.incomeRepo.Get(ctx, userID, year, month)
	switch {
	case err == nil:
		income = inc.Amount
	case !errors.Is(err, domain.ErrIncomeNotFound):
		return nil, fmt.Errorf("get income: %w", err)
	}

	return &Dashboard{
		Month:              current,
		PreviousMonthTotal: previous.CombinedTotal,
		Categories:         aggregation.SortedCategories(current.PerCategory),
		Today:              aggregation.DayBreakdown(expenses, now, s.opts.Location),
		LastSevenDays:      aggregation.LastNDays(expenses, now, dashboardDays, s.opts.Location),
		Income:             income,
		Remaining:          income.Sub(current.CombinedTotal),
	}, nil
}

// Stats computes the all-time headline figures. HolisticTotal adds the
// current month's recurring commitments to all one-time spend.
func (s *AnalyticsService) Stats(ctx context.Context, userID string) (*Stats, error) {
	expenses, err := s.expenseRepo.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	recurring, err := s.recurringRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}

	now := s.opts.now()
	current := aggregation.Aggregate(nil, recurring, now.Year(), now.Month(), s.opts.Location)
	oneTime := aggregation.OneTimeTotal(expenses)

	categories := make(map[string]struct{})
	for _, exp := range expenses {
		categories[categoryOr(exp.Category, domain.DefaultExpenseCategory)] = struct{}{}
	}
	for _, rt := range recurring {
		categories[categoryOr(rt.Category, domain.DefaultRecurringCategory)] = struct{}{}
	}

	return &Stats{
		AllTimeOneTime:   oneTime,
		MonthRecurring:   current.RecurringTotal,
		HolisticTotal:    oneTime.Add(current.RecurringTotal),
		AverageDaily:     aggregation.AverageDaily(expenses, now, s.opts.Location),
		TransactionCount: len(expenses),
		CategoryCount:    len(categories),
	}, nil
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}
