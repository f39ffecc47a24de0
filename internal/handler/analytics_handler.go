package handler

import (
	"net/http"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves derived spending views. Nothing here writes.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// TrendResponse wraps a trend series, oldest month first
type TrendResponse struct {
	Data []aggregation.SeriesPoint `json:"data"`
}

// GetMonthSummary handles GET /api/v1/analytics/months/:year/:month
//
//	@Summary	Aggregate one calendar month
//	@Tags		analytics
//	@Produce	json
//	@Param		year	path		int	true	"Year"
//	@Param		month	path		int	true	"Month 1-12"
//	@Success	200		{object}	service.MonthSummary
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/analytics/months/{year}/{month} [get]
func (h *AnalyticsHandler) GetMonthSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	summary, err := h.analyticsService.MonthSummary(c.Request().Context(), userID, year, month)
	if err != nil {
		return handleServiceError(c, err, userID, "get month summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// GetTrend handles GET /api/v1/analytics/trend
//
//	@Summary	Monthly spending trend
//	@Tags		analytics
//	@Produce	json
//	@Param		months	query		int	false	"Window length, 1-12"
//	@Success	200		{object}	TrendResponse
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	months, present, err := queryInt(c, "months")
	if err != nil || (present && (months < 1 || months > aggregation.MaxSeriesMonths)) {
		return invalidQueryParam(c, "months", "Must be between 1 and 12")
	}

	series, err := h.analyticsService.Trend(c.Request().Context(), userID, months)
	if err != nil {
		return handleServiceError(c, err, userID, "get trend")
	}

	return c.JSON(http.StatusOK, TrendResponse{Data: series})
}

// GetDashboard handles GET /api/v1/analytics/dashboard
//
//	@Summary	Current month overview
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	service.Dashboard
//	@Security	BearerAuth
//	@Router		/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	dashboard, err := h.analyticsService.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get dashboard")
	}

	return c.JSON(http.StatusOK, dashboard)
}

// GetStats handles GET /api/v1/analytics/stats
//
//	@Summary	All-time headline figures
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	service.Stats
//	@Security	BearerAuth
//	@Router		/analytics/stats [get]
func (h *AnalyticsHandler) GetStats(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	stats, err := h.analyticsService.Stats(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, userID, "get stats")
	}

	return c.JSON(http.StatusOK, stats)
}
