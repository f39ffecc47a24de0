package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultReportURLExpiry is how long a report download link stays valid
const DefaultReportURLExpiry = 15 * time.Minute

// ReportService exports monthly summaries to object storage
type ReportService struct {
	store         domain.ReportStore
	expenseRepo   domain.ExpenseRepository
	recurringRepo domain.RecurringRepository
	budgetRepo    domain.BudgetRepository
	incomeRepo    domain.IncomeRepository
	urlExpiry     time.Duration
	opts          Options
}

// NewReportService creates a new ReportService. A nil store disables exports.
func NewReportService(
	store domain.ReportStore,
	expenseRepo domain.ExpenseRepository,
	recurringRepo domain.RecurringRepository,
	budgetRepo domain.BudgetRepository,
	incomeRepo domain.IncomeRepository,
	urlExpiry time.Duration,
	opts Options,
) *ReportService {
	if urlExpiry <= 0 {
		urlExpiry = DefaultReportURLExpiry
	}
	return &ReportService{
		store:         store,
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		budgetRepo:    budgetRepo,
		incomeRepo:    incomeRepo,
		urlExpiry:     urlExpiry,
		opts:          opts.withDefaults(),
	}
}

// MonthlyReport is the exported document
type MonthlyReport struct {
	GeneratedAt time.Time                    `json:"generatedAt"`
	Year        int                          `json:"year"`
	Month       int                          `json:"month"`
	Final       bool                         `json:"final"`
	Summary     aggregation.MonthlyAggregate `json:"summary"`
	Categories  []aggregation.CategoryAmount `json:"categories"`
	Budgets     []aggregation.BudgetStatus   `json:"budgets"`
	Expenses    []*domain.Expense            `json:"expenses"`
	Recurring   []aggregation.RecurringLine  `json:"recurring"`
	Income      decimal.Decimal              `json:"income"`
	Remaining   decimal.Decimal              `json:"remaining"`
}

// ReportExport points at an uploaded report
type ReportExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BuildMonthlyReport assembles the report document for a month.
// Final is set once the month is over.
func (s *ReportService) BuildMonthlyReport(ctx context.Context, userID string, year, month int) (*MonthlyReport, error) {
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
	limits, err := s.budgetRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get budget limits: %w", err)
	}

	income := decimal.Zero
	inc, err := s.incomeRepo.Get(ctx, userID, year, month)
	switch {
	case err == nil:
		income = inc.Amount
	case !errors.Is(err, domain.ErrIncomeNotFound):
		return nil, fmt.Errorf("get income: %w", err)
	}

	now := s.opts.now()
	agg := aggregation.Aggregate(expenses, recurring, year, monthOf(month), s.opts.Location)

	return &MonthlyReport{
		GeneratedAt: now,
		Year:        year,
		Month:       month,
		Final:       util.IsHistoricalMonth(year, month, now),
		Summary:     agg,
		Categories:  aggregation.SortedCategories(agg.PerCategory),
		Budgets:     aggregation.EvaluateBudgets(agg.PerCategory, limits),
		Expenses:    expenses,
		Recurring:   aggregation.ActiveRecurring(recurring, year, monthOf(month), s.opts.Location),
		Income:      income,
		Remaining:   income.Sub(agg.CombinedTotal),
	}, nil
}

// EncodeReport serializes a report in the requested format
func EncodeReport(report *MonthlyReport, format domain.ReportFormat) ([]byte, error) {
	switch format {
	case domain.ReportFormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		return data, nil
	case domain.ReportFormatXLSX:
		data, err := renderReportXLSX(report)
		if err != nil {
			return nil, fmt.Errorf("render report workbook: %w", err)
		}
		return data, nil
	}
	return nil, domain.ErrInvalidFormat
}

// ExportMonth uploads the month's report and returns a temporary download link
func (s *ReportService) ExportMonth(ctx context.Context, userID string, year, month int, format domain.ReportFormat) (*ReportExport, error) {
	if s.store == nil {
		return nil, domain.ErrStorageDisabled
	}

	report, err := s.BuildMonthlyReport(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	data, err := EncodeReport(report, format)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/reports/%s-%s.%s", userID, util.MonthKey(year, month), uuid.New().String(), format)

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.store.Put(wctx, key, data, format.ContentType()); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	log.Info().Str("user_id", userID).Str("key", key).Str("format", string(format)).Int("bytes", len(data)).Msg("Monthly report exported")

	return &ReportExport{
		Key:       key,
		URL:       url,
		ExpiresAt: report.GeneratedAt.Add(s.urlExpiry),
	}, nil
}
