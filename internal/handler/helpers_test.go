package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const testUserID = "auth0|user-1"

// testNow is Saturday 15 March 2025, noon UTC
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func testOptions() service.Options {
	return service.Options{
		Location:     time.UTC,
		WriteTimeout: time.Second,
		Now:          func() time.Time { return testNow },
	}
}

// setupAuthContext stores the claims the auth middleware would set
func setupAuthContext(c echo.Context, userID, email string) {
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Subject: userID},
		CustomClaims:     &middleware.CustomClaims{Email: email},
	}
	ctx := context.WithValue(c.Request().Context(), middleware.ClaimsKey, claims)
	ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// newRequest builds an authenticated request context; body may be empty
func newRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, testUserID, "user@example.com")
	return c, rec
}

// newAnonymousRequest builds a request context without authentication
func newAnonymousRequest(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	return problem
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func newExpense(amount, category string, date time.Time) *domain.Expense {
	return &domain.Expense{
		ID:        uuid.New(),
		UserID:    testUserID,
		Amount:    dec(amount),
		Category:  category,
		Date:      date,
		CreatedAt: date,
	}
}
