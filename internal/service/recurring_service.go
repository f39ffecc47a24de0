package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringService handles recurring expense business logic.
// Recurring expenses are created and deleted, never edited in place.
type RecurringService struct {
	events
	recurringRepo domain.RecurringRepository
	opts          Options
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringRepository, opts Options) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		opts:          opts.withDefaults(),
	}
}

// CreateRecurringInput holds the input for creating a recurring expense
type CreateRecurringInput struct {
	Name      string
	Amount    decimal.Decimal
	Category  string
	Frequency domain.Frequency
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateRecurring validates and stores a recurring commitment
func (s *RecurringService) CreateRecurring(ctx context.Context, userID string, input CreateRecurringInput) (*domain.RecurringExpense, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) || !domain.FitsMoney(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	if !input.Frequency.IsValid() {
		return nil, domain.ErrInvalidFrequency
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultRecurringCategory
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}

	if input.StartDate == nil || input.StartDate.IsZero() {
		return nil, domain.ErrStartDateMissing
	}
	startDate := *input.StartDate

	var endDate *time.Time
	if input.EndDate != nil && !input.EndDate.IsZero() {
		if input.EndDate.Before(startDate) {
			return nil, domain.ErrInvalidDateRange
		}
		end := *input.EndDate
		endDate = &end
	}

	rt := &domain.RecurringExpense{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    input.Amount,
		Category:  category,
		Frequency: input.Frequency,
		StartDate: startDate,
		EndDate:   endDate,
		NextDate:  startDate,
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	created, err := s.recurringRepo.Create(wctx, rt)
	if err != nil {
		return nil, fmt.Errorf("create recurring expense: %w", err)
	}

	s.publishEvent(userID, websocket.RecurringCreated(created))
	return created, nil
}

// GetRecurring lists the user's recurring expenses
func (s *RecurringService) GetRecurring(ctx context.Context, userID string) ([]*domain.RecurringExpense, error) {
	return s.recurringRepo.List(ctx, userID)
}

// DeleteRecurring removes a recurring expense
func (s *RecurringService) DeleteRecurring(ctx context.Context, userID string, id uuid.UUID) error {
	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.recurringRepo.Delete(wctx, userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.RecurringDeleted(map[string]interface{}{"id": id}))
	return nil
}
