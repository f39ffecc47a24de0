package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExpenseService() (*ExpenseService, *testutil.MockExpenseRepository, *testutil.MockEventPublisher) {
	repo := testutil.NewMockExpenseRepository()
	publisher := testutil.NewMockEventPublisher()
	svc := NewExpenseService(repo, testOptions())
	svc.SetEventPublisher(publisher)
	return svc, repo, publisher
}

func TestCreateExpense_Defaults(t *testing.T) {
	svc, repo, publisher := setupExpenseService()

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount: dec("250.50"),
		Note:   ptr("  lunch  "),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultExpenseCategory, created.Category)
	assert.True(t, created.Date.Equal(testNow), "date defaults to now")
	require.NotNil(t, created.Note)
	assert.Equal(t, "lunch", *created.Note)
	assert.Contains(t, repo.Expenses, created.ID)
	assert.Equal(t, []string{"expense.created"}, publisher.EventTypes())
}

func TestCreateExpense_KeepsGivenDateAndCategory(t *testing.T) {
	svc, _, _ := setupExpenseService()
	date := day(2025, time.January, 3)

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:   dec("10"),
		Category: " Food ",
		Note:     ptr("   "),
		Date:     &date,
	})
	require.NoError(t, err)

	assert.Equal(t, "Food", created.Category)
	assert.True(t, created.Date.Equal(date))
	assert.Nil(t, created.Note, "blank note is dropped")
}

func TestCreateExpense_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateExpenseInput
		wantErr error
	}{
		{"zero amount", CreateExpenseInput{Amount: decimal.Zero}, domain.ErrInvalidAmount},
		{"negative amount", CreateExpenseInput{Amount: dec("-5")}, domain.ErrInvalidAmount},
		{"rounds to zero", CreateExpenseInput{Amount: dec("0.004")}, domain.ErrInvalidAmount},
		{"sub-paisa precision", CreateExpenseInput{Amount: dec("12.345")}, domain.ErrInvalidAmount},
		{"too large", CreateExpenseInput{Amount: dec("1e20")}, domain.ErrInvalidAmount},
		{"category too long", CreateExpenseInput{Amount: dec("1"), Category: strings.Repeat("c", domain.MaxCategoryLength+1)}, domain.ErrCategoryTooLong},
		{"note too long", CreateExpenseInput{Amount: dec("1"), Note: ptr(strings.Repeat("n", domain.MaxNoteLength+1))}, domain.ErrNoteTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, publisher := setupExpenseService()
			_, err := svc.CreateExpense(context.Background(), testUser, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.Expenses)
			assert.Empty(t, publisher.Events())
		})
	}
}

func TestCreateExpense_AppliesWriteDeadline(t *testing.T) {
	svc, repo, publisher := setupExpenseService()

	var hadDeadline bool
	repo.CreateFn = func(expense *domain.Expense) (*domain.Expense, error) {
		return nil, context.DeadlineExceeded
	}
	svc.expenseRepo = deadlineRecorder{ExpenseRepository: repo, seen: &hadDeadline}

	_, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{Amount: dec("1")})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, hadDeadline)
	assert.Empty(t, publisher.Events(), "failed writes publish nothing")
}

type deadlineRecorder struct {
	domain.ExpenseRepository
	seen *bool
}

func (d deadlineRecorder) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	_, *d.seen = ctx.Deadline()
	return d.ExpenseRepository.Create(ctx, expense)
}

func TestGetExpenses_MonthFilter(t *testing.T) {
	svc, repo, _ := setupExpenseService()
	repo.AddExpense(newExpense("1", "A", day(2025, time.February, 28)))
	repo.AddExpense(newExpense("2", "B", day(2025, time.March, 1)))
	repo.AddExpense(newExpense("3", "C", day(2025, time.March, 31)))
	repo.AddExpense(newExpense("4", "D", day(2025, time.April, 1)))

	got, err := svc.GetExpenses(context.Background(), testUser, ListExpensesInput{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Category, "newest first")
	assert.Equal(t, "B", got[1].Category)

	all, err := svc.GetExpenses(context.Background(), testUser, ListExpensesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	limited, err := svc.GetExpenses(context.Background(), testUser, ListExpensesInput{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetExpenses_InvalidMonth(t *testing.T) {
	svc, _, _ := setupExpenseService()
	_, err := svc.GetExpenses(context.Background(), testUser, ListExpensesInput{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestUpdateExpense_KeepsDate(t *testing.T) {
	svc, repo, publisher := setupExpenseService()
	original := newExpense("100", "Food", day(2025, time.March, 2))
	repo.AddExpense(original)

	updated, err := svc.UpdateExpense(context.Background(), testUser, original.ID, UpdateExpenseInput{
		Amount:   dec("120"),
		Category: "",
		Note:     ptr("dinner"),
	})
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(dec("120")))
	assert.Equal(t, domain.DefaultExpenseCategory, updated.Category)
	assert.True(t, updated.Date.Equal(day(2025, time.March, 2)))
	assert.Equal(t, []string{"expense.updated"}, publisher.EventTypes())
}

func TestUpdateExpense_NotFound(t *testing.T) {
	svc, repo, _ := setupExpenseService()
	other := newExpense("5", "X", testNow)
	other.UserID = "auth0|someone-else"
	repo.AddExpense(other)

	_, err := svc.UpdateExpense(context.Background(), testUser, other.ID, UpdateExpenseInput{Amount: dec("1")})
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestDeleteExpense(t *testing.T) {
	svc, repo, publisher := setupExpenseService()
	exp := newExpense("5", "X", testNow)
	repo.AddExpense(exp)

	require.NoError(t, svc.DeleteExpense(context.Background(), testUser, exp.ID))
	assert.NotContains(t, repo.Expenses, exp.ID)
	assert.Equal(t, []string{"expense.deleted"}, publisher.EventTypes())

	err := svc.DeleteExpense(context.Background(), testUser, uuid.New())
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
}
