package handler

import (
	"net/http"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles one-time expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	loc            *time.Location
}

// NewExpenseHandler creates a new ExpenseHandler. Calendar dates in requests are read in loc.
func NewExpenseHandler(expenseService *service.ExpenseService, loc *time.Location) *ExpenseHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseHandler{
		expenseService: expenseService,
		loc:            loc,
	}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	Amount   string  `json:"amount" validate:"required"`
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
	Date     *string `json:"date,omitempty"` // YYYY-MM-DD or RFC 3339, defaults to now
}

// UpdateExpenseRequest represents the update expense request body. The date cannot change.
type UpdateExpenseRequest struct {
	Amount   string  `json:"amount" validate:"required"`
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID        string  `json:"id"`
	Amount    string  `json:"amount"`
	Category  string  `json:"category"`
	Note      *string `json:"note,omitempty"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

// ExpenseListResponse represents the list response
type ExpenseListResponse struct {
	Data []ExpenseResponse `json:"data"`
}

// CreateExpense handles POST /api/v1/expenses
//
//	@Summary	Log a one-time expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateExpenseRequest	true	"Expense"
//	@Success	201		{object}	ExpenseResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateExpenseRequest
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

	input := service.CreateExpenseInput{
		Amount:   amount,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := util.ParseDate(*req.Date, h.loc)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: err.Error()},
			})
		}
		input.Date = &date
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, userID, "create expense")
	}

	log.Info().Str("user_id", userID).Str("expense_id", expense.ID.String()).Str("category", expense.Category).Msg("Expense created")

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
//
//	@Summary	List expenses, newest first
//	@Tags		expenses
//	@Produce	json
//	@Param		year	query		int	false	"Year (with month)"
//	@Param		month	query		int	false	"Month 1-12 (with year)"
//	@Param		limit	query		int	false	"Maximum number of expenses"
//	@Success	200		{object}	ExpenseListResponse
//	@Security	BearerAuth
//	@Router		/expenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var input service.ListExpensesInput
	yearStr, monthStr := c.QueryParam("year"), c.QueryParam("month")
	if yearStr != "" || monthStr != "" {
		year, month, err := util.ParseYearMonth(yearStr, monthStr)
		if err != nil {
			return invalidYearMonth(c)
		}
		input.Year, input.Month = year, month
	}

	limit, present, err := queryInt(c, "limit")
	if err != nil || (present && limit < 1) {
		return invalidQueryParam(c, "limit", "Must be a positive integer")
	}
	input.Limit = limit

	expenses, err := h.expenseService.GetExpenses(c.Request().Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, userID, "get expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, exp := range expenses {
		response[i] = toExpenseResponse(exp)
	}

	return c.JSON(http.StatusOK, ExpenseListResponse{Data: response})
}

// UpdateExpense handles PUT /api/v1/expenses/:id
//
//	@Summary	Edit an expense's amount, category and note
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Expense ID"
//	@Param		body	body		UpdateExpenseRequest	true	"Changes"
//	@Success	200		{object}	ExpenseResponse
//	@Failure	404		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	var req UpdateExpenseRequest
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

	expense, err := h.expenseService.UpdateExpense(c.Request().Context(), userID, id, service.UpdateExpenseInput{
		Amount:   amount,
		Category: req.Category,
		Note:     req.Note,
	})
	if err != nil {
		return handleServiceError(c, err, userID, "update expense")
	}

	log.Info().Str("user_id", userID).Str("expense_id", id.String()).Msg("Expense updated")

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
//
//	@Summary	Delete an expense
//	@Tags		expenses
//	@Param		id	path	string	true	"Expense ID"
//	@Success	204
//	@Failure	404	{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err, userID, "delete expense")
	}

	log.Info().Str("user_id", userID).Str("expense_id", id.String()).Msg("Expense deleted")

	return c.NoContent(http.StatusNoContent)
}

func toExpenseResponse(exp *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        exp.ID.String(),
		Amount:    exp.Amount.StringFixed(2),
		Category:  exp.Category,
		Note:      exp.Note,
		Date:      exp.Date.Format(time.RFC3339),
		CreatedAt: exp.CreatedAt.Format(time.RFC3339),
	}
}
