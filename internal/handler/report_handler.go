package handler

import (
	"fmt"
	"net/http"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles monthly report preview and export
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetReport handles GET /api/v1/reports/:year/:month
//
//	@Summary	Preview or download a monthly report
//	@Tags		reports
//	@Produce	json
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		year	path		int		true	"Year"
//	@Param		month	path		int		true	"Month 1-12"
//	@Param		format	query		string	false	"json (default) or xlsx"
//	@Success	200		{object}	service.MonthlyReport
//	@Failure	400		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/reports/{year}/{month} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	format, err := domain.ParseReportFormat(c.QueryParam("format"))
	if err != nil {
		return handleServiceError(c, err, userID, "build report")
	}

	report, err := h.reportService.BuildMonthlyReport(c.Request().Context(), userID, year, month)
	if err != nil {
		return handleServiceError(c, err, userID, "build report")
	}

	if format == domain.ReportFormatJSON {
		return c.JSON(http.StatusOK, report)
	}

	data, err := service.EncodeReport(report, format)
	if err != nil {
		return handleServiceError(c, err, userID, "build report")
	}
	filename := fmt.Sprintf("cointrack-%s.%s", util.MonthKey(year, month), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, format.ContentType(), data)
}

// ExportReport handles POST /api/v1/reports/:year/:month
//
//	@Summary	Export a monthly report to object storage
//	@Tags		reports
//	@Produce	json
//	@Param		year	path		int		true	"Year"
//	@Param		month	path		int		true	"Month 1-12"
//	@Param		format	query		string	false	"json (default) or xlsx"
//	@Success	201		{object}	service.ReportExport
//	@Failure	400		{object}	ProblemDetails
//	@Failure	503		{object}	ProblemDetails
//	@Security	BearerAuth
//	@Router		/reports/{year}/{month} [post]
func (h *ReportHandler) ExportReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	year, month, err := util.ParseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		return invalidYearMonth(c)
	}

	format, err := domain.ParseReportFormat(c.QueryParam("format"))
	if err != nil {
		return handleServiceError(c, err, userID, "export report")
	}

	export, err := h.reportService.ExportMonth(c.Request().Context(), userID, year, month, format)
	if err != nil {
		return handleServiceError(c, err, userID, "export report")
	}

	return c.JSON(http.StatusCreated, export)
}
