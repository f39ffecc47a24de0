package handler

import (
	"net/http"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles the signed-in user's profile
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// SaveProfileRequest represents the profile update body. Category budgets
// are also written as budget limits.
type SaveProfileRequest struct {
	DisplayName         *string                  `json:"displayName,omitempty"`
	Occupation          *domain.Occupation       `json:"occupation"`
	Categories          []domain.ProfileCategory `json:"categories"`
	FinancialTips       []string                 `json:"financialTips"`
	OnboardingCompleted bool                     `json:"onboardingCompleted"`
}

// ProfileResponse represents a user profile in API responses
type ProfileResponse struct {
	ID                  string                   `json:"id"`
	Email               string                   `json:"email"`
	DisplayName         *string                  `json:"displayName,omitempty"`
	Occupation          *domain.Occupation       `json:"occupation,omitempty"`
	Categories          []domain.ProfileCategory `json:"categories"`
	FinancialTips       []string                 `json:"financialTips"`
	OnboardingCompleted bool                     `json:"onboardingCompleted"`
	CreatedAt           string                   `json:"createdAt"`
	UpdatedAt           string                   `json:"updatedAt"`
}

// GetProfile handles GET /api/v1/profile
//
//	@Summary	Get the current user's profile
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Security	BearerAuth
//	@Router		/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get profile")
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// SaveProfile handles PUT /api/v1/profile
//
//	@Summary	Save the current user's profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		SaveProfileRequest	true	"Profile"
//	@Success	200		{object}	ProfileResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/profile [put]
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.profileService.SaveProfile(c.Request().Context(), userID, service.SaveProfileInput{
		DisplayName:         req.DisplayName,
		Occupation:          req.Occupation,
		Categories:          req.Categories,
		FinancialTips:       req.FinancialTips,
		OnboardingCompleted: req.OnboardingCompleted,
	})
	if err != nil {
		return handleServiceError(c, err, userID, "save profile")
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(u *domain.User) ProfileResponse {
	categories := u.Categories
	if categories == nil {
		categories = []domain.ProfileCategory{}
	}
	tips := u.FinancialTips
	if tips == nil {
		tips = []string{}
	}
	return ProfileResponse{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Occupation:          u.Occupation,
		Categories:          categories,
		FinancialTips:       tips,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           u.UpdatedAt.Format(time.RFC3339),
	}
}
