package postgres

import (
	"context"
	"fmt"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

var _ domain.BudgetRepository = (*BudgetRepository)(nil)

// Get returns all of the user's limits keyed by category
func (r *BudgetRepository) Get(ctx context.Context, userID string) (domain.BudgetLimits, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, amount FROM budget_limits WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget limits: %w", err)
	}
	defer rows.Close()

	limits := domain.BudgetLimits{}
	for rows.Next() {
		var (
			category string
			amount   pgtype.Numeric
		)
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		limits[category] = pgNumericToDecimal(amount)
	}
	return limits, rows.Err()
}

// Upsert writes the given categories in one transaction and leaves all others untouched
func (r *BudgetRepository) Upsert(ctx context.Context, userID string, limits domain.BudgetLimits) error {
	if len(limits) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for category, limit := range limits {
		amount, err := decimalToPgNumeric(limit)
		if err != nil {
			return fmt.Errorf("invalid limit for %s: %w", category, err)
		}
		batch.Queue(`
			INSERT INTO budget_limits (user_id, category, amount, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (user_id, category) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = EXCLUDED.updated_at`,
			userID, category, amount,
		)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to upsert budget limits: %w", err)
		}
		return nil
	})
}

// Delete removes the limit for one category
func (r *BudgetRepository) Delete(ctx context.Context, userID string, category string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budget_limits WHERE user_id = $1 AND category = $2`, userID, category)
	if err != nil {
		return fmt.Errorf("failed to delete budget limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}
