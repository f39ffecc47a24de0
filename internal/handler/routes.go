package handler

import (
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Handlers groups the route handlers registered under /api/v1
type Handlers struct {
	Expense    *ExpenseHandler
	Recurring  *RecurringHandler
	Budget     *BudgetHandler
	Income     *IncomeHandler
	Analytics  *AnalyticsHandler
	Chat       *ChatHandler
	Profile    *ProfileHandler
	Onboarding *OnboardingHandler
	Report     *ReportHandler
}

// RegisterRoutes sets up all API routes. AI-backed endpoints share aiLimiter.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, aiLimiter *middleware.RateLimiter, h Handlers) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("", h.Expense.GetExpenses)
	expenses.PUT("/:id", h.Expense.UpdateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	// Recurring expense routes
	recurring := api.Group("/recurring")
	recurring.POST("", h.Recurring.CreateRecurring)
	recurring.GET("", h.Recurring.GetRecurring)
	recurring.DELETE("/:id", h.Recurring.DeleteRecurring)

	// Budget routes. The status route is registered before /:category.
	budgets := api.Group("/budgets")
	budgets.GET("", h.Budget.GetBudgets)
	budgets.GET("/status/:year/:month", h.Budget.GetBudgetStatus)
	budgets.PUT("/:category", h.Budget.SetBudget)
	budgets.DELETE("/:category", h.Budget.DeleteBudget)

	// Income routes
	incomes := api.Group("/incomes")
	incomes.GET("", h.Income.GetIncomes)
	incomes.PUT("/:year/:month", h.Income.SetIncome)
	incomes.DELETE("/:year/:month", h.Income.DeleteIncome)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.GET("/months/:year/:month", h.Analytics.GetMonthSummary)
	analytics.GET("/trend", h.Analytics.GetTrend)
	analytics.GET("/dashboard", h.Analytics.GetDashboard)
	analytics.GET("/stats", h.Analytics.GetStats)

	// Chat routes (rate limited)
	api.POST("/chat", h.Chat.Chat, middleware.RateLimitMiddleware(aiLimiter))

	// Profile routes
	profile := api.Group("/profile")
	profile.GET("", h.Profile.GetProfile)
	profile.PUT("", h.Profile.SaveProfile)

	// Onboarding routes
	onboarding := api.Group("/onboarding")
	onboarding.POST("/analyze", h.Onboarding.AnalyzeOccupation, middleware.RateLimitMiddleware(aiLimiter))
	onboarding.POST("/preset/:role", h.Onboarding.ApplyPreset)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/:year/:month", h.Report.GetReport)
	reports.POST("/:year/:month", h.Report.ExportReport)
}
