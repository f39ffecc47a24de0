package handler

import (
	"net/http"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring expense HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
	loc              *time.Location
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService *service.RecurringService, loc *time.Location) *RecurringHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RecurringHandler{
		recurringService: recurringService,
		loc:              loc,
	}
}

// CreateRecurringRequest represents the create recurring expense request body
type CreateRecurringRequest struct {
	Name      string  `json:"name" validate:"required"`
	Amount    string  `json:"amount" validate:"required"`
	Category  string  `json:"category"`
	Frequency string  `json:"frequency" validate:"required,oneof=weekly monthly yearly"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   *string `json:"endDate,omitempty"`
}

// RecurringResponse represents a recurring expense in API responses
type RecurringResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            string  `json:"amount"`
	MonthlyEquivalent string  `json:"monthlyEquivalent"`
	Category          string  `json:"category"`
	Frequency         string  `json:"frequency"`
	StartDate         string  `json:"startDate"`
	EndDate           *string `json:"endDate,omitempty"`
	NextDate          string  `json:"nextDate"`
	CreatedAt         string  `json:"createdAt"`
}

// RecurringListResponse represents the list response
type RecurringListResponse struct {
	Data []RecurringResponse `json:"data"`
}

// CreateRecurring handles POST /api/v1/recurring
//
//	@Summary	Create a recurring expense
//	@Tags		recurring
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateRecurringRequest	true	"Recurring expense"
//	@Success	201		{object}	RecurringResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/recurring [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateRecurringRequest
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

	input := service.CreateRecurringInput{
		Name:      req.Name,
		Amount:    amount,
		Category:  req.Category,
		Frequency: domain.Frequency(req.Frequency),
	}

	if req.StartDate != "" {
		start, err := util.ParseDate(req.StartDate, h.loc)
		if err != nil {
			return NewValidationError(c, "Invalid start date", []ValidationError{
				{Field: "startDate", Message: err.Error()},
			})
		}
		input.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := util.ParseDate(*req.EndDate, h.loc)
		if err != nil {
			return NewValidationError(c, "Invalid end date", []ValidationError{
				{Field: "endDate", Message: err.Error()},
			})
		}
		input.EndDate = &end
	}

	rt, err := h.recurringService.CreateRecurring(c.Request().Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, userID, "create recurring expense")
	}

	log.Info().Str("user_id", userID).Str("recurring_id", rt.ID.String()).Str("name", rt.Name).Msg("Recurring expense created")

	return c.JSON(http.StatusCreated, h.toRecurringResponse(rt))
}

// GetRecurring handles GET /api/v1/recurring
//
//	@Summary	List recurring expenses
//	@Tags		recurring
//	@Produce	json
//	@Success	200	{object}	RecurringListResponse
//	@Security	BearerAuth
//	@Router		/recurring [get]
func (h *RecurringHandler) GetRecurring(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	rts, err := h.recurringService.GetRecurring(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get recurring expenses")
	}

	response := make([]RecurringResponse, len(rts))
	for i, rt := range rts {
		response[i] = h.toRecurringResponse(rt)
	}

	return c.JSON(http.StatusOK, RecurringListResponse{Data: response})
}

// DeleteRecurring handles DELETE /api/v1/recurring/:id
//
//	@Summary	Delete a recurring expense
//	@Tags		recurring
//	@Param		id	path	string	true	"Recurring expense ID"
//	@Success	204
//	@Failure	404	{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recurring expense ID", nil)
	}

	if err := h.recurringService.DeleteRecurring(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err, userID, "delete recurring expense")
	}

	log.Info().Str("user_id", userID).Str("recurring_id", id.String()).Msg("Recurring expense deleted")

	return c.NoContent(http.StatusNoContent)
}

func (h *RecurringHandler) toRecurringResponse(rt *domain.RecurringExpense) RecurringResponse {
	resp := RecurringResponse{
		ID:                rt.ID.String(),
		Name:              rt.Name,
		Amount:            rt.Amount.StringFixed(2),
		MonthlyEquivalent: aggregation.MonthlyEquivalent(rt.Amount, rt.Frequency).StringFixed(2),
		Category:          rt.Category,
		Frequency:         string(rt.Frequency),
		StartDate:         rt.StartDate.In(h.loc).Format(util.DateLayout),
		NextDate:          rt.NextDate.In(h.loc).Format(util.DateLayout),
		CreatedAt:         rt.CreatedAt.Format(time.RFC3339),
	}
	if rt.EndDate != nil {
		end := rt.EndDate.In(h.loc).Format(util.DateLayout)
		resp.EndDate = &end
	}
	return resp
}
