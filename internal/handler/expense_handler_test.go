package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/testutil"
)

func setupExpenseHandler() (*ExpenseHandler, *testutil.MockExpenseRepository) {
	repo := testutil.NewMockExpenseRepository()
	svc := service.NewExpenseService(repo, testOptions())
	return NewExpenseHandler(svc, time.UTC), repo
}

func TestCreateExpense_Success(t *testing.T) {
	h, repo := setupExpenseHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/expenses",
		`{"amount": "12.5", "category": " Food ", "note": "lunch", "date": "2025-03-10"}`)

	if err := h.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Amount != "12.50" {
		t.Errorf("Expected amount '12.50', got %s", response.Amount)
	}
	if response.Category != "Food" {
		t.Errorf("Expected category 'Food', got %q", response.Category)
	}
	if response.Date != "2025-03-10T00:00:00Z" {
		t.Errorf("Expected date 2025-03-10T00:00:00Z, got %s", response.Date)
	}
	if response.Note == nil || *response.Note != "lunch" {
		t.Errorf("Expected note 'lunch', got %v", response.Note)
	}
	if len(repo.Expenses) != 1 {
		t.Errorf("Expected 1 stored expense, got %d", len(repo.Expenses))
	}
}

func TestCreateExpense_DefaultsCategoryAndDate(t *testing.T) {
	h, _ := setupExpenseHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/expenses", `{"amount": "3"}`)

	if err := h.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Category != "Uncategorized" {
		t.Errorf("Expected category 'Uncategorized', got %q", response.Category)
	}
	if response.Date != testNow.Format(time.RFC3339) {
		t.Errorf("Expected date %s, got %s", testNow.Format(time.RFC3339), response.Date)
	}
}

func TestCreateExpense_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unparseable amount", `{"amount": "ten"}`, "amount"},
		{"zero amount", `{"amount": "0"}`, "amount"},
		{"negative amount", `{"amount": "-4.20"}`, "amount"},
		{"rounds to zero", `{"amount": "0.004"}`, "amount"},
		{"three decimals", `{"amount": "12.345"}`, "amount"},
		{"overflows column", `{"amount": "1e20"}`, "amount"},
		{"bad date", `{"amount": "5", "date": "10/03/2025"}`, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := setupExpenseHandler()
			c, rec := newRequest(http.MethodPost, "/api/v1/expenses", tt.body)

			if err := h.CreateExpense(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}

			problem := decodeProblem(t, rec)
			if len(problem.Errors) != 1 || problem.Errors[0].Field != tt.field {
				t.Errorf("Expected error on field %q, got %+v", tt.field, problem.Errors)
			}
			if len(repo.Expenses) != 0 {
				t.Errorf("Expected nothing stored, got %d", len(repo.Expenses))
			}
		})
	}
}

func TestCreateExpense_Unauthorized(t *testing.T) {
	h, _ := setupExpenseHandler()
	c, rec := newAnonymousRequest(http.MethodPost, "/api/v1/expenses")

	if err := h.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetExpenses_MonthFilterAndLimit(t *testing.T) {
	h, repo := setupExpenseHandler()
	repo.AddExpense(newExpense("10", "Food", day(2025, time.February, 28)))
	repo.AddExpense(newExpense("20", "Food", day(2025, time.March, 1)))
	repo.AddExpense(newExpense("30", "Travel", day(2025, time.March, 10)))
	repo.AddExpense(newExpense("40", "Travel", day(2025, time.March, 14)))

	c, rec := newRequest(http.MethodGet, "/api/v1/expenses?year=2025&month=3&limit=2", "")

	if err := h.GetExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response ExpenseListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Data) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(response.Data))
	}
	if response.Data[0].Amount != "40.00" || response.Data[1].Amount != "30.00" {
		t.Errorf("Expected newest first [40.00 30.00], got [%s %s]", response.Data[0].Amount, response.Data[1].Amount)
	}
}

func TestGetExpenses_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"month out of range", "/api/v1/expenses?year=2025&month=13"},
		{"year without month", "/api/v1/expenses?year=2025"},
		{"non-numeric limit", "/api/v1/expenses?limit=all"},
		{"zero limit", "/api/v1/expenses?limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupExpenseHandler()
			c, rec := newRequest(http.MethodGet, tt.target, "")

			if err := h.GetExpenses(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestUpdateExpense_Success(t *testing.T) {
	h, repo := setupExpenseHandler()
	exp := newExpense("10", "Food", day(2025, time.March, 2))
	repo.AddExpense(exp)

	c, rec := newRequest(http.MethodPut, "/api/v1/expenses/"+exp.ID.String(), `{"amount": "15.75", "category": "Dining"}`)
	c.SetParamNames("id")
	c.SetParamValues(exp.ID.String())

	if err := h.UpdateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Amount != "15.75" || response.Category != "Dining" {
		t.Errorf("Expected 15.75 Dining, got %s %s", response.Amount, response.Category)
	}
	if !repo.Expenses[exp.ID].Date.Equal(day(2025, time.March, 2)) {
		t.Errorf("Expected date to stay unchanged, got %v", repo.Expenses[exp.ID].Date)
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	h, _ := setupExpenseHandler()
	id := "7a0c5b1e-4a1f-4f44-9d0e-0b9f1d2e3c4a"
	c, rec := newRequest(http.MethodPut, "/api/v1/expenses/"+id, `{"amount": "1"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.UpdateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteExpense(t *testing.T) {
	h, repo := setupExpenseHandler()
	exp := newExpense("10", "Food", day(2025, time.March, 2))
	repo.AddExpense(exp)

	c, rec := newRequest(http.MethodDelete, "/api/v1/expenses/"+exp.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(exp.ID.String())

	if err := h.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(repo.Expenses) != 0 {
		t.Errorf("Expected expense to be deleted")
	}

	c, rec = newRequest(http.MethodDelete, "/api/v1/expenses/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed id, got %d", rec.Code)
	}
}
