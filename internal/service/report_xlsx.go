package service

import (
	"fmt"

	"github.com/cointrack/cointrack-backend/internal/util"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary    = "Summary"
	sheetCategories = "Categories"
	sheetBudgets    = "Budgets"
	sheetExpenses   = "Expenses"
	sheetRecurring  = "Recurring"
)

// renderReportXLSX writes the report as a workbook with one sheet per section
func renderReportXLSX(r *MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetCategories, sheetBudgets, sheetExpenses, sheetRecurring} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	summary := [][]interface{}{
		{"Month", util.MonthKey(r.Year, r.Month)},
		{"Final", r.Final},
		{"One-time total", money(r.Summary.OneTimeTotal)},
		{"Recurring total", money(r.Summary.RecurringTotal)},
		{"Combined total", money(r.Summary.CombinedTotal)},
		{"Transactions", r.Summary.TransactionCount},
		{"Income", money(r.Income)},
		{"Remaining", money(r.Remaining)},
		{"Generated at", r.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	categories := [][]interface{}{{"Category", "Amount"}}
	for _, c := range r.Categories {
		categories = append(categories, []interface{}{c.Category, money(c.Amount)})
	}
	if err := writeRows(f, sheetCategories, categories); err != nil {
		return nil, err
	}

	budgets := [][]interface{}{{"Category", "Spent", "Limit", "Percentage", "Status"}}
	for _, b := range r.Budgets {
		budgets = append(budgets, []interface{}{b.Category, money(b.Spent), money(b.Limit), money(b.Percentage), string(b.Status)})
	}
	if err := writeRows(f, sheetBudgets, budgets); err != nil {
		return nil, err
	}

	expenses := [][]interface{}{{"Date", "Category", "Amount", "Note"}}
	for _, e := range r.Expenses {
		note := ""
		if e.Note != nil {
			note = *e.Note
		}
		expenses = append(expenses, []interface{}{e.Date.Format(util.DateLayout), e.Category, money(e.Amount), note})
	}
	if err := writeRows(f, sheetExpenses, expenses); err != nil {
		return nil, err
	}

	recurring := [][]interface{}{{"Name", "Category", "Frequency", "Amount", "Monthly amount"}}
	for _, l := range r.Recurring {
		recurring = append(recurring, []interface{}{l.Name, l.Category, string(l.Frequency), money(l.Amount), money(l.MonthlyAmount)})
	}
	if err := writeRows(f, sheetRecurring, recurring); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
