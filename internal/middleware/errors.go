package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Error types
const (
	errorTypeUnauthorized = "https://cointrack.app/errors/unauthorized"
	errorTypeRateLimit    = "https://cointrack.app/errors/rate-limit"
	errorTypeInternal     = "https://cointrack.app/errors/internal"
)

func problem(c echo.Context, status int, errType, title, detail string) error {
	return c.JSON(status, problemDetails{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// unauthorizedError creates an unauthorized error response
func unauthorizedError(c echo.Context, detail string) error {
	return problem(c, http.StatusUnauthorized, errorTypeUnauthorized, "Unauthorized", detail)
}

// tooManyRequestsError creates a rate limit error response
func tooManyRequestsError(c echo.Context, detail string) error {
	return problem(c, http.StatusTooManyRequests, errorTypeRateLimit, "Rate Limit Exceeded", detail)
}

// internalError creates an internal error response
func internalError(c echo.Context, detail string) error {
	return problem(c, http.StatusInternalServerError, errorTypeInternal, "Internal Server Error", detail)
}
