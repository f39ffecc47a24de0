package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

var _ domain.ExpenseRepository = (*ExpenseRepository)(nil)

const expenseColumns = `id, user_id, amount, category, note, date, created_at`

// Create inserts a new expense, assigning an ID when none is set
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (id, user_id, amount, category, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+expenseColumns,
		uuidToPg(expense.ID), expense.UserID, amount, expense.Category,
		stringPtrToPgText(expense.Note), expense.Date,
	)
	created, err := scanExpense(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

// GetByID retrieves one of the user's expenses
func (r *ExpenseRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = $1 AND id = $2`,
		userID, uuidToPg(id),
	)
	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// List returns the user's expenses, newest first
func (r *ExpenseRepository) List(ctx context.Context, userID string, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	var (
		where = []string{"user_id = $1"}
		args  = []any{userID}
	)
	limit := ""
	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			where = append(where, fmt.Sprintf("date >= $%d", len(args)))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			where = append(where, fmt.Sprintf("date <= $%d", len(args)))
		}
		if filters.Limit > 0 {
			args = append(args, filters.Limit)
			limit = fmt.Sprintf(" LIMIT $%d", len(args))
		}
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY date DESC, created_at DESC` + limit

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Update changes amount, category and note. The date is never rewritten.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE expenses SET amount = $3, category = $4, note = $5
		WHERE user_id = $1 AND id = $2
		RETURNING `+expenseColumns,
		expense.UserID, uuidToPg(expense.ID), amount, expense.Category, stringPtrToPgText(expense.Note),
	)
	updated, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes one of the user's expenses
func (r *ExpenseRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1 AND id = $2`, userID, uuidToPg(id))
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e      domain.Expense
		id     pgtype.UUID
		amount pgtype.Numeric
		note   pgtype.Text
	)
	if err := row.Scan(&id, &e.UserID, &amount, &e.Category, &note, &e.Date, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ID = pgToUUID(id)
	e.Amount = pgNumericToDecimal(amount)
	e.Note = pgTextToStringPtr(note)
	return &e, nil
}
