package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// validationFields maps domain validation errors to the request field they concern
var validationFields = []struct {
	err   error
	field string
}{
	{domain.ErrInvalidAmount, "amount"},
	{domain.ErrInvalidIncome, "amount"},
	{domain.ErrInvalidLimit, "limit"},
	{domain.ErrCategoryRequired, "category"},
	{domain.ErrCategoryTooLong, "category"},
	{domain.ErrNoteTooLong, "note"},
	{domain.ErrNameRequired, "name"},
	{domain.ErrNameTooLong, "name"},
	{domain.ErrInvalidFrequency, "frequency"},
	{domain.ErrStartDateMissing, "startDate"},
	{domain.ErrInvalidDateRange, "endDate"},
	{domain.ErrInvalidMonth, "month"},
	{domain.ErrQuestionRequired, "message"},
	{domain.ErrQuestionTooLong, "message"},
	{domain.ErrOccupationRequired, "occupation"},
	{domain.ErrUnknownPreset, "role"},
	{domain.ErrInvalidFormat, "format"},
	{domain.ErrInvalidInput, ""},
}

var notFoundDetails = []struct {
	err    error
	detail string
}{
	{domain.ErrExpenseNotFound, "Expense not found"},
	{domain.ErrRecurringNotFound, "Recurring expense not found"},
	{domain.ErrBudgetNotFound, "Budget limit not found"},
	{domain.ErrIncomeNotFound, "Income not found"},
	{domain.ErrUserNotFound, "User not found"},
}

// handleServiceError converts a service error into a problem response
func handleServiceError(c echo.Context, err error, userID, action string) error {
	for _, v := range validationFields {
		if errors.Is(err, v.err) {
			var fields []ValidationError
			if v.field != "" {
				fields = []ValidationError{{Field: v.field, Message: v.err.Error()}}
			}
			return NewValidationError(c, v.err.Error(), fields)
		}
	}

	for _, nf := range notFoundDetails {
		if errors.Is(err, nf.err) {
			return NewNotFoundError(c, nf.detail)
		}
	}

	var apiErr *ai.APIError
	switch {
	case errors.Is(err, domain.ErrAIUnavailable):
		return NewServiceUnavailableError(c, "AI assistant is not configured")
	case errors.Is(err, domain.ErrStorageDisabled):
		return NewServiceUnavailableError(c, "Report export is not configured")
	case errors.Is(err, domain.ErrAIResponseInvalid), errors.As(err, &apiErr), errors.Is(err, ai.ErrEmptyResponse):
		log.Warn().Err(err).Str("user_id", userID).Msgf("Failed to %s", action)
		return NewBadGatewayError(c, "Failed to "+action)
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("user_id", userID).Msgf("Timed out trying to %s", action)
		return NewGatewayTimeoutError(c, "Timed out trying to "+action)
	}

	log.Error().Err(err).Str("user_id", userID).Msgf("Failed to %s", action)
	return NewInternalError(c, "Failed to "+action)
}

// invalidYearMonth writes the validation error for bad :year/:month parameters
func invalidYearMonth(c echo.Context) error {
	return NewValidationError(c, "Invalid year or month", []ValidationError{
		{Field: "month", Message: "Year must be 1900-2100 and month 1-12"},
	})
}

// queryInt reads an optional integer query parameter
func queryInt(c echo.Context, name string) (value int, present bool, err error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, err
	}
	return value, true, nil
}

// invalidQueryParam writes the validation error for a malformed query parameter
func invalidQueryParam(c echo.Context, name, message string) error {
	return NewValidationError(c, "Invalid "+name, []ValidationError{
		{Field: name, Message: message},
	})
}

// invalidAmount writes the validation error for an unparseable amount
func invalidAmount(c echo.Context, field string) error {
	return NewValidationError(c, "Invalid "+field, []ValidationError{
		{Field: field, Message: "Must be a valid decimal number"},
	})
}
