package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles one-time expense business logic
type ExpenseService struct {
	events
	expenseRepo domain.ExpenseRepository
	opts        Options
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, opts Options) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		opts:        opts.withDefaults(),
	}
}

// CreateExpenseInput holds the input for logging an expense
type CreateExpenseInput struct {
	Amount   decimal.Decimal
	Category string
	Note     *string
	// Date is when the expense happened. Nil means now.
	Date *time.Time
}

// UpdateExpenseInput holds the editable fields of an expense. The date is fixed.
type UpdateExpenseInput struct {
	Amount   decimal.Decimal
	Category string
	Note     *string
}

// ListExpensesInput narrows a listing to one month when Year and Month are set
type ListExpensesInput struct {
	Year  int
	Month int
	Limit int
}

// CreateExpense validates and stores a one-time expense
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, input CreateExpenseInput) (*domain.Expense, error) {
	category, note, err := validateExpenseFields(input.Amount, input.Category, input.Note)
	if err != nil {
		return nil, err
	}

	date := s.opts.now()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	expense := &domain.Expense{
		ID:       uuid.New(),
		UserID:   userID,
		Amount:   input.Amount,
		Category: category,
		Note:     note,
		Date:     date,
	}

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	created, err := s.expenseRepo.Create(wctx, expense)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.publishEvent(userID, websocket.ExpenseCreated(created))
	return created, nil
}

// GetExpenses lists the user's expenses newest first
func (s *ExpenseService) GetExpenses(ctx context.Context, userID string, input ListExpensesInput) ([]*domain.Expense, error) {
	filters := &domain.ExpenseFilters{}
	if input.Year != 0 || input.Month != 0 {
		if err := util.ValidateYearMonth(input.Year, input.Month); err != nil {
			return nil, err
		}
		filters = s.opts.monthFilters(input.Year, input.Month)
	}
	if input.Limit > 0 {
		filters.Limit = input.Limit
	}
	return s.expenseRepo.List(ctx, userID, filters)
}

// UpdateExpense changes amount, category and note of an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID string, id uuid.UUID, input UpdateExpenseInput) (*domain.Expense, error) {
	category, note, err := validateExpenseFields(input.Amount, input.Category, input.Note)
	if err != nil {
		return nil, err
	}

	existing, err := s.expenseRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.Amount = input.Amount
	existing.Category = category
	existing.Note = note

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	updated, err := s.expenseRepo.Update(wctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	s.publishEvent(userID, websocket.ExpenseUpdated(updated))
	return updated, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID string, id uuid.UUID) error {
	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	if err := s.expenseRepo.Delete(wctx, userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.ExpenseDeleted(map[string]interface{}{"id": id}))
	return nil
}

func validateExpenseFields(amount decimal.Decimal, category string, note *string) (string, *string, error) {
	if amount.LessThanOrEqual(decimal.Zero) || !domain.FitsMoney(amount) {
		return "", nil, domain.ErrInvalidAmount
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.DefaultExpenseCategory
	}
	if len(category) > domain.MaxCategoryLength {
		return "", nil, domain.ErrCategoryTooLong
	}

	trimmedNote, err := trimNote(note)
	if err != nil {
		return "", nil, err
	}
	return category, trimmedNote, nil
}

// trimNote drops blank notes and enforces the length limit
func trimNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > domain.MaxNoteLength {
		return nil, domain.ErrNoteTooLong
	}
	return &trimmed, nil
}
