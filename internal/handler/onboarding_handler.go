package handler

import (
	"net/http"

	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// OnboardingHandler handles occupation analysis and role presets
type OnboardingHandler struct {
	onboardingService *service.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler
func NewOnboardingHandler(onboardingService *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// AnalyzeOccupationRequest represents the analyze request body.
// With Apply set the analysis is saved as the profile.
type AnalyzeOccupationRequest struct {
	Occupation string `json:"occupation" validate:"required"`
	Apply      bool   `json:"apply"`
}

// AnalyzeOccupationResponse carries the analysis and, when applied, the saved profile
type AnalyzeOccupationResponse struct {
	Analysis *ai.OccupationAnalysis `json:"analysis"`
	Profile  *ProfileResponse       `json:"profile,omitempty"`
}

// AnalyzeOccupation handles POST /api/v1/onboarding/analyze
//
//	@Summary	Suggest categories and tips for an occupation
//	@Tags		onboarding
//	@Accept		json
//	@Produce	json
//	@Param		body	body		AnalyzeOccupationRequest	true	"Occupation"
//	@Success	200		{object}	AnalyzeOccupationResponse
//	@Failure	400		{object}	ProblemDetails
//	@Failure	502		{object}	ProblemDetails
//	@Failure	503		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/onboarding/analyze [post]
func (h *OnboardingHandler) AnalyzeOccupation(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req AnalyzeOccupationRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	ctx := c.Request().Context()
	analysis, err := h.onboardingService.AnalyzeOccupation(ctx, req.Occupation)
	if err != nil {
		return handleServiceError(c, err, userID, "analyze occupation")
	}

	resp := AnalyzeOccupationResponse{Analysis: analysis}
	if req.Apply {
		user, err := h.onboardingService.ApplyAnalysis(ctx, userID, analysis)
		if err != nil {
			return handleServiceError(c, err, userID, "apply occupation analysis")
		}
		profile := toProfileResponse(user)
		resp.Profile = &profile
		log.Info().Str("user_id", userID).Str("occupation", analysis.Occupation).Msg("Onboarding completed from analysis")
	}

	return c.JSON(http.StatusOK, resp)
}

// ApplyPreset handles POST /api/v1/onboarding/preset/:role
//
//	@Summary	Complete onboarding with a standard role preset
//	@Tags		onboarding
//	@Produce	json
//	@Param		role	path		string	true	"student or professional"
//	@Success	200		{object}	ProfileResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/onboarding/preset/{role} [post]
func (h *OnboardingHandler) ApplyPreset(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	role := c.Param("role")
	user, err := h.onboardingService.ApplyPreset(c.Request().Context(), userID, role)
	if err != nil {
		return handleServiceError(c, err, userID, "apply preset")
	}

	log.Info().Str("user_id", userID).Str("role", role).Msg("Onboarding completed from preset")

	return c.JSON(http.StatusOK, toProfileResponse(user))
}
