package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecurringRepository implements domain.RecurringRepository using PostgreSQL
type RecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new RecurringRepository
func NewRecurringRepository(pool *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{pool: pool}
}

var _ domain.RecurringRepository = (*RecurringRepository)(nil)

const recurringColumns = `id, user_id, name, amount, category, frequency, start_date, end_date, next_date, last_processed, created_at`

// Create inserts a new recurring expense, assigning an ID when none is set
func (r *RecurringRepository) Create(ctx context.Context, rt *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	amount, err := decimalToPgNumeric(rt.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO recurring_expenses (id, user_id, name, amount, category, frequency, start_date, end_date, next_date, last_processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+recurringColumns,
		uuidToPg(rt.ID), rt.UserID, rt.Name, amount, rt.Category, string(rt.Frequency),
		rt.StartDate, timePtrToPgTimestamptz(rt.EndDate), rt.NextDate, timePtrToPgTimestamptz(rt.LastProcessed),
	)
	created, err := scanRecurring(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}
	return created, nil
}

// GetByID retrieves one of the user's recurring expenses
func (r *RecurringRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.RecurringExpense, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+recurringColumns+` FROM recurring_expenses WHERE user_id = $1 AND id = $2`,
		userID, uuidToPg(id),
	)
	rt, err := scanRecurring(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringNotFound
		}
		return nil, err
	}
	return rt, nil
}

// List returns the user's recurring expenses ordered by next date
func (r *RecurringRepository) List(ctx context.Context, userID string) ([]*domain.RecurringExpense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recurringColumns+` FROM recurring_expenses WHERE user_id = $1 ORDER BY next_date ASC, created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	defer rows.Close()

	result := []*domain.RecurringExpense{}
	for rows.Next() {
		rt, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	return result, rows.Err()
}

// Delete removes one of the user's recurring expenses
func (r *RecurringRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recurring_expenses WHERE user_id = $1 AND id = $2`, userID, uuidToPg(id))
	if err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}

// ListDue returns active recurring expenses whose next date has passed
func (r *RecurringRepository) ListDue(ctx context.Context, before time.Time, limit int) ([]*domain.RecurringExpense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recurringColumns+` FROM recurring_expenses
		WHERE next_date < $1 AND (end_date IS NULL OR next_date <= end_date)
		ORDER BY next_date ASC
		LIMIT $2`,
		before, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recurring expenses: %w", err)
	}
	defer rows.Close()

	result := []*domain.RecurringExpense{}
	for rows.Next() {
		rt, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	return result, rows.Err()
}

// UpdateSchedule moves a recurring expense to its next occurrence
func (r *RecurringRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, nextDate, processedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE recurring_expenses SET next_date = $2, last_processed = $3 WHERE id = $1`,
		uuidToPg(id), nextDate, processedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}

func scanRecurring(row pgx.Row) (*domain.RecurringExpense, error) {
	var (
		rt            domain.RecurringExpense
		id            pgtype.UUID
		amount        pgtype.Numeric
		frequency     string
		endDate       pgtype.Timestamptz
		lastProcessed pgtype.Timestamptz
	)
	if err := row.Scan(&id, &rt.UserID, &rt.Name, &amount, &rt.Category, &frequency,
		&rt.StartDate, &endDate, &rt.NextDate, &lastProcessed, &rt.CreatedAt); err != nil {
		return nil, err
	}
	rt.ID = pgToUUID(id)
	rt.Amount = pgNumericToDecimal(amount)
	rt.Frequency = domain.Frequency(frequency)
	rt.EndDate = pgTimestamptzToPtr(endDate)
	rt.LastProcessed = pgTimestamptzToPtr(lastProcessed)
	return &rt, nil
}
