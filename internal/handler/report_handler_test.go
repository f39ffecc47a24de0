package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func setupReportHandler(store domain.ReportStore) *ReportHandler {
	expenses := testutil.NewMockExpenseRepository()
	expenses.AddExpense(newExpense("120", "Food", day(2025, time.February, 3)))
	expenses.AddExpense(newExpense("80", "Fun", day(2025, time.February, 20)))
	budgets := testutil.NewMockBudgetRepository()
	budgets.Limits[testUserID] = domain.BudgetLimits{"Food": dec("100")}
	incomes := testutil.NewMockIncomeRepository()
	incomes.Incomes[testUserID+"/2025-02"] = &domain.Income{UserID: testUserID, Year: 2025, Month: 2, Amount: dec("1000")}

	svc := service.NewReportService(store, expenses, testutil.NewMockRecurringRepository(), budgets, incomes, 10*time.Minute, testOptions())
	return NewReportHandler(svc)
}

func TestGetReport(t *testing.T) {
	h := setupReportHandler(nil)
	c, rec := newRequest(http.MethodGet, "/api/v1/reports/2025/2", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")

	if err := h.GetReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var report service.MonthlyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !report.Final {
		t.Errorf("Expected February 2025 to be final")
	}
	if !report.Remaining.Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected remaining 800, got %s", report.Remaining)
	}
	if len(report.Expenses) != 2 || len(report.Budgets) != 2 {
		t.Errorf("Expected 2 expenses and 2 budget rows, got %d and %d", len(report.Expenses), len(report.Budgets))
	}
}

func TestExportReport(t *testing.T) {
	store := testutil.NewMockReportStore()
	h := setupReportHandler(store)
	c, rec := newRequest(http.MethodPost, "/api/v1/reports/2025/2", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")

	if err := h.ExportReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var export service.ReportExport
	if err := json.Unmarshal(rec.Body.Bytes(), &export); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !strings.HasPrefix(export.Key, testUserID+"/reports/2025-02-") {
		t.Errorf("Unexpected key %s", export.Key)
	}
	if !strings.HasSuffix(export.URL, "?expires=600") {
		t.Errorf("Unexpected URL %s", export.URL)
	}
	if _, ok := store.Objects[export.Key]; !ok {
		t.Errorf("Expected the report to be uploaded")
	}
}

func TestExportReport_StorageDisabled(t *testing.T) {
	h := setupReportHandler(nil)
	c, rec := newRequest(http.MethodPost, "/api/v1/reports/2025/2", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")

	if err := h.ExportReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestGetReport_XLSXDownload(t *testing.T) {
	h := setupReportHandler(nil)
	c, rec := newRequest(http.MethodGet, "/api/v1/reports/2025/2?format=xlsx", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")

	if err := h.GetReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != domain.ReportFormatXLSX.ContentType() {
		t.Errorf("Unexpected content type %s", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "cointrack-2025-02.xlsx") {
		t.Errorf("Unexpected content disposition %s", cd)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Errorf("Expected a zip payload")
	}
}

func TestReport_InvalidFormat(t *testing.T) {
	h := setupReportHandler(testutil.NewMockReportStore())

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		c, rec := newRequest(method, "/api/v1/reports/2025/2?format=pdf", "")
		c.SetParamNames("year", "month")
		c.SetParamValues("2025", "2")

		handle := h.GetReport
		if method == http.MethodPost {
			handle = h.ExportReport
		}
		if err := handle(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", method, rec.Code)
		}
	}
}

func TestExportReport_XLSX(t *testing.T) {
	store := testutil.NewMockReportStore()
	h := setupReportHandler(store)
	c, rec := newRequest(http.MethodPost, "/api/v1/reports/2025/2?format=xlsx", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")

	if err := h.ExportReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var export service.ReportExport
	if err := json.Unmarshal(rec.Body.Bytes(), &export); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !strings.HasSuffix(export.Key, ".xlsx") {
		t.Errorf("Unexpected key %s", export.Key)
	}
	if store.ContentTypes[export.Key] != domain.ReportFormatXLSX.ContentType() {
		t.Errorf("Unexpected content type %s", store.ContentTypes[export.Key])
	}
}
