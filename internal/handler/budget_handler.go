package handler

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget limit HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// SetBudgetRequest represents the set budget limit request body
type SetBudgetRequest struct {
	Limit string `json:"limit" validate:"required"`
}

// BudgetLimitResponse represents one category limit
type BudgetLimitResponse struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// BudgetListResponse represents the list of limits, ordered by category
type BudgetListResponse struct {
	Data []BudgetLimitResponse `json:"data"`
}

// GetBudgets handles GET /api/v1/budgets
//
//	@Summary	List budget limits
//	@Tags		budgets
//	@Produce	json
//	@Success	200	{object}	BudgetListResponse
//	@Security	BearerAuth
//	@Router		/budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	limits, err := h.budgetService.GetLimits(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get budgets")
	}

	return c.JSON(http.StatusOK, toBudgetListResponse(limits))
}

// SetBudget handles PUT /api/v1/budgets/:category
//
//	@Summary	Set one category's monthly limit
//	@Description	Other categories keep their limits.
//	@Tags		budgets
//	@Accept		json
//	@Produce	json
//	@Param		category	path		string				true	"Category (URL-encoded)"
//	@Param		body		body		SetBudgetRequest	true	"Limit"
//	@Success	200			{object}	BudgetListResponse
//	@Failure	400			{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/budgets/{category} [put]
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	category, err := url.PathUnescape(c.Param("category"))
	if err != nil {
		return invalidQueryParam(c, "category", "Invalid category encoding")
	}

	var req SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		return invalidAmount(c, "limit")
	}

	ctx := c.Request().Context()
	if err := h.budgetService.SetLimit(ctx, userID, category, limit); err != nil {
		return handleServiceError(c, err, userID, "set budget")
	}

	log.Info().Str("user_id", userID).Str("category", category).Str("limit", limit.String()).Msg("Budget limit set")

	limits, err := h.budgetService.GetLimits(ctx, userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get budgets")
	}

	return c.JSON(http.StatusOK, toBudgetListResponse(limits))
}

// DeleteBudget handles DELETE /api/v1/budgets/:category
//
//	@Summary	Remove a category's limit
//	@Tags		budgets
//	@Param		category	path	string	true	"Category (URL-encoded)"
//	@Success	204
//	@Failure	404	{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	category, err := url.PathUnescape(c.Param("category"))
	if err != nil {
		return invalidQueryParam(c, "category", "Invalid category encoding")
	}

	if err := h.budgetService.DeleteLimit(c.Request().Context(), userID, category); err != nil {
		return handleServiceError(c, err, userID, "delete budget")
	}

	log.Info().Str("user_id", userID).Str("category", category).Msg("Budget limit removed")

	return c.NoContent(http.StatusNoContent)
}

// GetBudgetStatus handles GET /api/v1/budgets/status/:year/:month
//
//	@Summary	Compare a month's spending with the budget limits
//	@Tags		budgets
//	@Produce	json
//	@Param		year	path		int	true	"Year"
//	@Param		month	path		int	true	"Month 1-12"
//	@Success	200		{object}	service.BudgetOverview
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/budgets/status/{year}/{month} [get]
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	overview, err := h.budgetService.GetStatus(c.Request().Context(), userID, year, month)
	if err != nil {
		return handleServiceError(c, err, userID, "get budget status")
	}

	return c.JSON(http.StatusOK, overview)
}

func toBudgetListResponse(limits domain.BudgetLimits) BudgetListResponse {
	data := make([]BudgetLimitResponse, 0, len(limits))
	for category, limit := range limits {
		data = append(data, BudgetLimitResponse{
			Category: category,
			Limit:    limit.StringFixed(2),
		})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Category < data[j].Category })
	return BudgetListResponse{Data: data}
}
