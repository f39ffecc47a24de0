package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/testutil"
)

func setupIncomeHandler() (*IncomeHandler, *testutil.MockIncomeRepository) {
	repo := testutil.NewMockIncomeRepository()
	return NewIncomeHandler(service.NewIncomeService(repo, testOptions())), repo
}

func TestSetIncome_ThenList(t *testing.T) {
	h, _ := setupIncomeHandler()

	for _, tc := range []struct{ year, month, amount string }{
		{"2025", "1", "4000"},
		{"2025", "3", "5000.5"},
		{"2024", "12", "0"},
	} {
		c, rec := newRequest(http.MethodPut, "/api/v1/incomes/"+tc.year+"/"+tc.month, `{"amount": "`+tc.amount+`"}`)
		c.SetParamNames("year", "month")
		c.SetParamValues(tc.year, tc.month)
		if err := h.SetIncome(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200 for %s-%s, got %d: %s", tc.year, tc.month, rec.Code, rec.Body.String())
		}
	}

	c, rec := newRequest(http.MethodGet, "/api/v1/incomes", "")
	if err := h.GetIncomes(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response IncomeListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	wantKeys := []string{"2025-03", "2025-01", "2024-12"}
	if len(response.Data) != len(wantKeys) {
		t.Fatalf("Expected %d incomes, got %d", len(wantKeys), len(response.Data))
	}
	for i, key := range wantKeys {
		if response.Data[i].Key != key {
			t.Errorf("Expected key %s at %d, got %s", key, i, response.Data[i].Key)
		}
	}
	if response.Data[0].Amount != "5000.50" {
		t.Errorf("Expected amount '5000.50', got %s", response.Data[0].Amount)
	}
}

func TestSetIncome_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		year   string
		month  string
		body   string
		status int
	}{
		{"negative amount", "2025", "3", `{"amount": "-1"}`, http.StatusBadRequest},
		{"unparseable amount", "2025", "3", `{"amount": "a lot"}`, http.StatusBadRequest},
		{"month out of range", "2025", "13", `{"amount": "1"}`, http.StatusBadRequest},
		{"year out of range", "1850", "1", `{"amount": "1"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := setupIncomeHandler()
			c, rec := newRequest(http.MethodPut, "/api/v1/incomes/"+tt.year+"/"+tt.month, tt.body)
			c.SetParamNames("year", "month")
			c.SetParamValues(tt.year, tt.month)

			if err := h.SetIncome(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
			if len(repo.Incomes) != 0 {
				t.Errorf("Expected nothing stored")
			}
		})
	}
}

func TestDeleteIncome(t *testing.T) {
	h, repo := setupIncomeHandler()
	repo.Incomes[testUserID+"/2025-02"] = &domain.Income{UserID: testUserID, Year: 2025, Month: 2, Amount: dec("100")}

	c, rec := newRequest(http.MethodDelete, "/api/v1/incomes/2025/2", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")
	if err := h.DeleteIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	c, rec = newRequest(http.MethodDelete, "/api/v1/incomes/2025/2", "")
	c.SetParamNames("year", "month")
	c.SetParamValues("2025", "2")
	if err := h.DeleteIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
