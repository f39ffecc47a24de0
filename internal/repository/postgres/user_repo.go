package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ domain.UserRepository = (*UserRepository)(nil)

const userColumns = `id, email, display_name, occupation, categories, financial_tips, onboarding_completed, created_at, updated_at`

// GetByID retrieves a user by their Auth0 subject
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateOrGet inserts the user on first sight and returns the stored row.
// An existing row keeps its profile; only email is refreshed when provided.
func (r *UserRepository) CreateOrGet(ctx context.Context, id, email string, displayName *string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
			display_name = COALESCE(users.display_name, EXCLUDED.display_name)
		RETURNING `+userColumns,
		id, email, stringPtrToPgText(displayName),
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create or get user %s: %w", id, err)
	}
	return user, nil
}

// UpdateProfile replaces the onboarding profile fields of an existing user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	var occupation []byte
	if user.Occupation != nil {
		b, err := json.Marshal(user.Occupation)
		if err != nil {
			return nil, fmt.Errorf("encode occupation: %w", err)
		}
		occupation = b
	}
	categories, err := json.Marshal(nonNilCategories(user.Categories))
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	tips, err := json.Marshal(nonNilStrings(user.FinancialTips))
	if err != nil {
		return nil, fmt.Errorf("encode financial tips: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			display_name = $2,
			occupation = $3,
			categories = $4,
			financial_tips = $5,
			onboarding_completed = $6,
			updated_at = $7
		WHERE id = $1
		RETURNING `+userColumns,
		user.ID, stringPtrToPgText(user.DisplayName), occupation, categories, tips,
		user.OnboardingCompleted, time.Now(),
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u           domain.User
		displayName pgtype.Text
		occupation  []byte
		categories  []byte
		tips        []byte
	)
	if err := row.Scan(&u.ID, &u.Email, &displayName, &occupation, &categories, &tips,
		&u.OnboardingCompleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.DisplayName = pgTextToStringPtr(displayName)

	if len(occupation) > 0 {
		var occ domain.Occupation
		if err := json.Unmarshal(occupation, &occ); err != nil {
			return nil, fmt.Errorf("decode occupation: %w", err)
		}
		u.Occupation = &occ
	}
	u.Categories = []domain.ProfileCategory{}
	if len(categories) > 0 {
		if err := json.Unmarshal(categories, &u.Categories); err != nil {
			return nil, fmt.Errorf("decode categories: %w", err)
		}
	}
	u.FinancialTips = []string{}
	if len(tips) > 0 {
		if err := json.Unmarshal(tips, &u.FinancialTips); err != nil {
			return nil, fmt.Errorf("decode financial tips: %w", err)
		}
	}
	return &u, nil
}

func nonNilCategories(c []domain.ProfileCategory) []domain.ProfileCategory {
	if c == nil {
		return []domain.ProfileCategory{}
	}
	return c
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
