package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

const maxFinancialTips = 20

// ProfileService handles user records and onboarding profiles
type ProfileService struct {
	events
	userRepo domain.UserRepository
	budgets  *BudgetService
	opts     Options
}

// NewProfileService creates a new ProfileService. Category budgets saved
// with a profile are written through budgets.
func NewProfileService(userRepo domain.UserRepository, budgets *BudgetService, opts Options) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		budgets:  budgets,
		opts:     opts.withDefaults(),
	}
}

// SaveProfileInput holds the profile fields a user can set
type SaveProfileInput struct {
	DisplayName         *string
	Occupation          *domain.Occupation
	Categories          []domain.ProfileCategory
	FinancialTips       []string
	OnboardingCompleted bool
}

// EnsureUser creates the user's record on first authenticated request
func (s *ProfileService) EnsureUser(ctx context.Context, userID, email string, displayName *string) error {
	if _, err := s.userRepo.CreateOrGet(ctx, userID, email, displayName); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

// GetProfile retrieves the user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// SaveProfile replaces the onboarding profile. Categories that carry a
// budget also set that category's monthly limit.
func (s *ProfileService) SaveProfile(ctx context.Context, userID string, input SaveProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if len(name) > domain.MaxNameLength {
			return nil, domain.ErrNameTooLong
		}
		if name == "" {
			user.DisplayName = nil
		} else {
			user.DisplayName = &name
		}
	}

	if input.Occupation != nil {
		occ := *input.Occupation
		occ.Title = strings.TrimSpace(occ.Title)
		if occ.Title == "" {
			return nil, domain.ErrOccupationRequired
		}
		if len(occ.Title) > domain.MaxNameLength {
			return nil, domain.ErrNameTooLong
		}
		if occ.Type == "" {
			occ.Type = domain.OccupationCustom
		}
		user.Occupation = &occ
	}

	categories, limits, err := normalizeProfileCategories(input.Categories)
	if err != nil {
		return nil, err
	}
	user.Categories = categories

	tips := make([]string, 0, len(input.FinancialTips))
	for _, tip := range input.FinancialTips {
		if tip = strings.TrimSpace(tip); tip != "" && len(tips) < maxFinancialTips {
			tips = append(tips, tip)
		}
	}
	user.FinancialTips = tips
	user.OnboardingCompleted = user.OnboardingCompleted || input.OnboardingCompleted

	wctx, cancel := s.opts.writeContext(ctx)
	defer cancel()

	updated, err := s.userRepo.UpdateProfile(wctx, user)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if len(limits) > 0 && s.budgets != nil {
		if err := s.budgets.SetLimits(ctx, userID, limits); err != nil {
			return nil, err
		}
	}

	log.Info().Str("user_id", userID).Int("categories", len(categories)).Msg("Profile saved")
	s.publishEvent(userID, websocket.ProfileUpdated(updated))
	return updated, nil
}

func normalizeProfileCategories(in []domain.ProfileCategory) ([]domain.ProfileCategory, domain.BudgetLimits, error) {
	out := make([]domain.ProfileCategory, 0, len(in))
	limits := make(domain.BudgetLimits)
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, nil, domain.ErrCategoryRequired
		}
		if len(c.Name) > domain.MaxCategoryLength {
			return nil, nil, domain.ErrCategoryTooLong
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		if c.Budget != nil {
			if c.Budget.IsNegative() || !domain.FitsMoney(*c.Budget) {
				return nil, nil, domain.ErrInvalidLimit
			}
			limits[c.Name] = *c.Budget
		}
		out = append(out, c)
	}
	return out, limits, nil
}
