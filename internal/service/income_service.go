package service

import (
	"context"
	"fmt"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// IncomeService handles monthly income records
type IncomeService struct {
	events
	incomeRepo domain.IncomeRepository
	opts       Options
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeRepository, opts Options) *IncomeService {
	return &IncomeService{
		incomeRepo: incomeRepo,
		opts:       opts.withDefaults(),
	}
}

// SetIncome records the income for a month, replacing any previous value
func (s *IncomeService) SetIncome(ctx context.Context, userID string, year, month int, amount decimal.Decimal) (*domain.Income, error) {
	if err := util.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	if amount.IsNegative() || !domain.FitsMoney(amount) {
		return nil, domain.ErrInvalidIncome
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	income, err := s.incomeRepo.Upsert(wctx, &domain.Income{
		UserID: userID,
		Year:   year,
		Month:  month,
		Amount: amount,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert income: %w", err)
	}

	s.publishEvent(userID, websocket.IncomeUpdated(income))
	return income, nil
}

// GetIncomes lists every recorded month, newest first
func (s *IncomeService) GetIncomes(ctx context.Context, userID string) ([]*domain.Income, error) {
	return s.incomeRepo.List(ctx, userID)
}

// DeleteIncome removes the income for a month
func (s *IncomeService) DeleteIncome(ctx context.Context, userID string, year, month int) error {
	if err := util.ValidateYearMonth(year, month); err != nil {
		return err
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.incomeRepo.Delete(wctx, userID, year, month); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.IncomeDeleted(map[string]int{"year": year, "month": month}))
	return nil
}
