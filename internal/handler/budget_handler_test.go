package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cointrack/cointrack-backend/internal/aggregation"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

type budgetFixture struct {
	handler   *BudgetHandler
	budgets   *testutil.MockBudgetRepository
	expenses  *testutil.MockExpenseRepository
	recurring *testutil.MockRecurringRepository
}

func setupBudgetHandler() budgetFixture {
	f := budgetFixture{
		budgets:   testutil.NewMockBudgetRepository(),
		expenses:  testutil.NewMockExpenseRepository(),
		recurring: testutil.NewMockRecurringRepository(),
	}
	svc := service.NewBudgetService(f.budgets, f.expenses, f.recurring, testOptions())
	f.handler = NewBudgetHandler(svc)
	return f
}

func TestSetBudget_MergesWithExisting(t *testing.T) {
	f := setupBudgetHandler()
	f.budgets.Limits[testUserID] = domain.BudgetLimits{"Food": dec("300")}

	c, rec := newRequest(http.MethodPut, "/api/v1/budgets/Eating%20Out", `{"limit": "150"}`)
	c.SetParamNames("category")
	c.SetParamValues("Eating%20Out")

	if err := f.handler.SetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response BudgetListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	want := []BudgetLimitResponse{
		{Category: "Eating Out", Limit: "150.00"},
		{Category: "Food", Limit: "300.00"},
	}
	if len(response.Data) != len(want) {
		t.Fatalf("Expected %d limits, got %d", len(want), len(response.Data))
	}
	for i := range want {
		if response.Data[i] != want[i] {
			t.Errorf("Expected %+v at %d, got %+v", want[i], i, response.Data[i])
		}
	}
}

func TestSetBudget_InvalidLimit(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative", `{"limit": "-1"}`},
		{"not a number", `{"limit": "plenty"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBudgetHandler()
			c, rec := newRequest(http.MethodPut, "/api/v1/budgets/Food", tt.body)
			c.SetParamNames("category")
			c.SetParamValues("Food")

			if err := f.handler.SetBudget(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
			if len(f.budgets.Limits[testUserID]) != 0 {
				t.Errorf("Expected no limits stored")
			}
		})
	}
}

func TestDeleteBudget(t *testing.T) {
	f := setupBudgetHandler()
	f.budgets.Limits[testUserID] = domain.BudgetLimits{"Food": dec("300")}

	c, rec := newRequest(http.MethodDelete, "/api/v1/budgets/Food", "")
	c.SetParamNames("category")
	c.SetParamValues("Food")
	if err := f.handler.DeleteBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	c, rec = newRequest(http.MethodDelete, "/api/v1/budgets/Food", "")
	c.SetParamNames("category")
	c.SetParamValues("Food")
	if err := f.handler.DeleteBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", rec.Code)
	}
}

func TestGetBudgetStatus(t *testing.T) {
	f := setupBudgetHandler()
	f.budgets.Limits[testUserID] = domain.BudgetLimits{"Food": dec("100"), "Home": dec("900")}
	f.expenses.AddExpense(newExpense("60", "Food", day(2025, time.March, 3)))
	f.expenses.AddExpense(newExpense("90", "Food", day(2025, time.March, 9)))
	f.recurring.AddRecurring(&domain.RecurringExpense{
		UserID:    testUserID,
		Name:      "Rent",
		Amount:    dec("1000"),
		Category:  "Home",
		Frequency: domain.FrequencyMonthly,
		StartDate: day(2025, time.January, 1),
		NextDate:  day(2025, time.January, 1),
	})

	c, rec := newRequest(http.MethodGet, "/api/v1/budgets/status/2025/3", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "3")

	if err := f.handler.GetBudgetStatus(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var overview service.BudgetOverview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !overview.TotalSpent.Equal(decimal.NewFromInt(1150)) {
		t.Errorf("Expected total spent 1150, got %s", overview.TotalSpent)
	}
	if len(overview.Statuses) != 2 {
		t.Fatalf("Expected 2 statuses, got %d", len(overview.Statuses))
	}
	if overview.Statuses[0].Category != "Food" || overview.Statuses[0].Status != aggregation.StatusExceeded {
		t.Errorf("Expected Food exceeded first, got %+v", overview.Statuses[0])
	}
	if overview.Statuses[1].Category != "Home" || overview.Statuses[1].Status != aggregation.StatusExceeded {
		t.Errorf("Expected Home exceeded second, got %+v", overview.Statuses[1])
	}
}

func TestGetBudgetStatus_InvalidMonth(t *testing.T) {
	f := setupBudgetHandler()
	c, rec := newRequest(http.MethodGet, "/api/v1/budgets/status/2025/0", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "0")

	if err := f.handler.GetBudgetStatus(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
