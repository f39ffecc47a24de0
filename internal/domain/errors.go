package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInternalError    = errors.New("internal error")
	ErrUserNotFound     = errors.New("user not found")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrCategoryTooLong  = errors.New("category exceeds maximum length")
	ErrNoteTooLong      = errors.New("note exceeds maximum length")
	ErrInvalidAmount    = errors.New("amount must be greater than zero with at most 2 decimal places")
	ErrInvalidLimit     = errors.New("budget limit must be zero or positive with at most 2 decimal places")
	ErrInvalidIncome    = errors.New("income must be zero or positive with at most 2 decimal places")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidFrequency = errors.New("frequency must be weekly, monthly or yearly")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrStartDateMissing = errors.New("start date is required")
	ErrInvalidMonth     = errors.New("invalid year or month")

	ErrExpenseNotFound   = errors.New("expense not found")
	ErrRecurringNotFound = errors.New("recurring expense not found")
	ErrBudgetNotFound    = errors.New("budget limit not found")
	ErrIncomeNotFound    = errors.New("income not found")

	ErrQuestionRequired   = errors.New("question is required")
	ErrQuestionTooLong    = errors.New("question exceeds maximum length")
	ErrOccupationRequired = errors.New("occupation is required")
	ErrUnknownPreset      = errors.New("unknown preset role")
	ErrAIUnavailable      = errors.New("AI service not configured")
	ErrAIResponseInvalid  = errors.New("AI response could not be parsed")
	ErrStorageDisabled    = errors.New("report storage not configured")
	ErrInvalidFormat      = errors.New("report format must be json or xlsx")
)

// Validation constants
const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
	MaxNoteLength     = 1000
	MaxQuestionLength = 2000
)
