package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultExpenseCategory is used for one-time expenses saved without a category
const DefaultExpenseCategory = "Uncategorized"

// Expense is a one-time transaction. Date is fixed at creation.
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      *string         `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ExpenseFilters narrows an expense listing. Nil range means all expenses.
type ExpenseFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// ExpenseRepository defines persistence for one-time expenses
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) (*Expense, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Expense, error)
	// List returns expenses newest first
	List(ctx context.Context, userID string, filters *ExpenseFilters) ([]*Expense, error)
	Update(ctx context.Context, expense *Expense) (*Expense, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
