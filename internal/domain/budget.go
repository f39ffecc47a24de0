package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// BudgetLimits maps a category label to its monthly limit.
// A single map applies to every month.
type BudgetLimits map[string]decimal.Decimal

// BudgetRepository persists per-user budget limits with merge semantics
type BudgetRepository interface {
	Get(ctx context.Context, userID string) (BudgetLimits, error)
	// Upsert sets the given categories and leaves all others untouched
	Upsert(ctx context.Context, userID string, limits BudgetLimits) error
	Delete(ctx context.Context, userID string, category string) error
}
