package handler

import (
	"net/http"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IncomeHandler handles monthly income HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
	}
}

// SetIncomeRequest represents the set income request body
type SetIncomeRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// IncomeResponse represents one month's income
type IncomeResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Key       string `json:"key"`
	Amount    string `json:"amount"`
	UpdatedAt string `json:"updatedAt"`
}

// IncomeListResponse represents the list response, newest month first
type IncomeListResponse struct {
	Data []IncomeResponse `json:"data"`
}

// GetIncomes handles GET /api/v1/incomes
//
//	@Summary	List recorded monthly income
//	@Tags		incomes
//	@Produce	json
//	@Success	200	{object}	IncomeListResponse
//	@Security	BearerAuth
//	@Router		/incomes [get]
func (h *IncomeHandler) GetIncomes(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	incomes, err := h.incomeService.GetIncomes(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get incomes")
	}

	response := make([]IncomeResponse, len(incomes))
	for i, inc := range incomes {
		response[i] = toIncomeResponse(inc)
	}

	return c.JSON(http.StatusOK, IncomeListResponse{Data: response})
}

// SetIncome handles PUT /api/v1/incomes/:year/:month
//
//	@Summary	Record the income for a month
//	@Tags		incomes
//	@Accept		json
//	@Produce	json
//	@Param		year	path		int					true	"Year"
//	@Param		month	path		int					true	"Month 1-12"
//	@Param		body	body		SetIncomeRequest	true	"Income"
//	@Success	200		{object}	IncomeResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/incomes/{year}/{month} [put]
func (h *IncomeHandler) SetIncome(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	var req SetIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return invalidAmount(c, "amount")
	}

	income, err := h.incomeService.SetIncome(c.Request().Context(), userID, year, month, amount)
	if err != nil {
		return handleServiceError(c, err, userID, "set income")
	}

	log.Info().Str("user_id", userID).Str("month", util.MonthKey(year, month)).Msg("Income recorded")

	return c.JSON(http.StatusOK, toIncomeResponse(income))
}

// DeleteIncome handles DELETE /api/v1/incomes/:year/:month
//
//	@Summary	Remove a month's income
//	@Tags		incomes
//	@Param		year	path	int	true	"Year"
//	@Param		month	path	int	true	"Month 1-12"
//	@Success	204
//	@Failure	404	{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/incomes/{year}/{month} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	if err := h.incomeService.DeleteIncome(c.Request().Context(), userID, year, month); err != nil {
		return handleServiceError(c, err, userID, "delete income")
	}

	log.Info().Str("user_id", userID).Str("month", util.MonthKey(year, month)).Msg("Income removed")

	return c.NoContent(http.StatusNoContent)
}

func toIncomeResponse(inc *domain.Income) IncomeResponse {
	return IncomeResponse{
		Year:      inc.Year,
		Month:     inc.Month,
		Key:       util.MonthKey(inc.Year, inc.Month),
		Amount:    inc.Amount.StringFixed(2),
		UpdatedAt: inc.UpdatedAt.Format(time.RFC3339),
	}
}
