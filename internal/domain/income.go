package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Income is the income recorded for one calendar month (Month is 1-12)
type Income struct {
	UserID    string          `json:"userId"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// IncomeRepository persists monthly income keyed by (year, month)
type IncomeRepository interface {
	Upsert(ctx context.Context, income *Income) (*Income, error)
	Get(ctx context.Context, userID string, year, month int) (*Income, error)
	List(ctx context.Context, userID string) ([]*Income, error)
	Delete(ctx context.Context, userID string, year, month int) error
}
