package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// DefaultRecurringCategory is used for recurring expenses saved without a category
const DefaultRecurringCategory = "Bills"

// IsValid reports whether f is one of the supported cadences
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringExpense is a commitment that repeats at a fixed cadence.
// EndDate nil means open-ended. NextDate is informational only.
type RecurringExpense struct {
	ID            uuid.UUID       `json:"id"`
	UserID        string          `json:"userId"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Frequency     Frequency       `json:"frequency"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	NextDate      time.Time       `json:"nextDate"`
	LastProcessed *time.Time      `json:"lastProcessed,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RecurringRepository defines persistence for recurring expenses
type RecurringRepository interface {
	Create(ctx context.Context, rt *RecurringExpense) (*RecurringExpense, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*RecurringExpense, error)
	// List returns recurring expenses ordered by next date
	List(ctx context.Context, userID string) ([]*RecurringExpense, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	// ListDue returns active recurring expenses across all users whose next
	// date is before the given instant, oldest first
	ListDue(ctx context.Context, before time.Time, limit int) ([]*RecurringExpense, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, nextDate, processedAt time.Time) error
}
