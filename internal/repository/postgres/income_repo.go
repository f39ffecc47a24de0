package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IncomeRepository implements domain.IncomeRepository using PostgreSQL
type IncomeRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeRepository creates a new IncomeRepository
func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

var _ domain.IncomeRepository = (*IncomeRepository)(nil)

// Upsert stores the income for (year, month), replacing any previous value
func (r *IncomeRepository) Upsert(ctx context.Context, income *domain.Income) (*domain.Income, error) {
	amount, err := decimalToPgNumeric(income.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO incomes (user_id, year, month, amount, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, year, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, year, month, amount, updated_at`,
		income.UserID, income.Year, income.Month, amount,
	)
	saved, err := scanIncome(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert income: %w", err)
	}
	return saved, nil
}

// Get returns the income for one month
func (r *IncomeRepository) Get(ctx context.Context, userID string, year, month int) (*domain.Income, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, year, month, amount, updated_at
		FROM incomes WHERE user_id = $1 AND year = $2 AND month = $3`,
		userID, year, month,
	)
	income, err := scanIncome(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, err
	}
	return income, nil
}

// List returns all income records, most recent month first
func (r *IncomeRepository) List(ctx context.Context, userID string) ([]*domain.Income, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, year, month, amount, updated_at
		FROM incomes WHERE user_id = $1
		ORDER BY year DESC, month DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer rows.Close()

	incomes := []*domain.Income{}
	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, inc)
	}
	return incomes, rows.Err()
}

// Delete removes the income for one month
func (r *IncomeRepository) Delete(ctx context.Context, userID string, year, month int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM incomes WHERE user_id = $1 AND year = $2 AND month = $3`, userID, year, month)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}
	return nil
}

func scanIncome(row pgx.Row) (*domain.Income, error) {
	var (
		inc    domain.Income
		amount pgtype.Numeric
	)
	if err := row.Scan(&inc.UserID, &inc.Year, &inc.Month, &amount, &inc.UpdatedAt); err != nil {
		return nil, err
	}
	inc.Amount = pgNumericToDecimal(amount)
	return &inc, nil
}
