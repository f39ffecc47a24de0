package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OccupationType classifies how a profile's occupation was chosen
type OccupationType string

const (
	OccupationStudent      OccupationType = "student"
	OccupationProfessional OccupationType = "professional"
	OccupationCustom       OccupationType = "custom"
)

// Occupation is the user's declared or AI-analyzed profession
type Occupation struct {
	Title         string         `json:"title"`
	Type          OccupationType `json:"type"`
	Confidence    *int           `json:"confidence,omitempty"`
	IncomePattern string         `json:"incomePattern,omitempty"`
}

// ProfileCategory is a spending category suggested during onboarding
type ProfileCategory struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Icon        string           `json:"icon,omitempty"`
	Description string           `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
}

// User is an account holder. ID is the Auth0 subject.
type User struct {
	ID                  string            `json:"id"`
	Email               string            `json:"email"`
	DisplayName         *string           `json:"displayName,omitempty"`
	Occupation          *Occupation       `json:"occupation,omitempty"`
	Categories          []ProfileCategory `json:"categories"`
	FinancialTips       []string          `json:"financialTips"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	CreateOrGet(ctx context.Context, id, email string, displayName *string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) (*User, error)
}
