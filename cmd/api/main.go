package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cointrack/cointrack-backend/internal/ai"
	"github.com/cointrack/cointrack-backend/internal/config"
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/cointrack/cointrack-backend/internal/handler"
	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/repository/postgres"
	"github.com/cointrack/cointrack-backend/internal/repository/storage"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/cointrack/cointrack-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// main starts the CoinTrack API server.
//
//	@title						CoinTrack API
//	@version					1.0
//	@description				Personal finance tracking: expenses, recurring commitments, budgets, income and monthly analytics.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Auth0 access token, as "Bearer {token}"
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Apply pending migrations before the pool sees the schema
	applied, err := postgres.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if applied {
		log.Info().Msg("Database migrations applied")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	recurringRepo := postgres.NewRecurringRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	incomeRepo := postgres.NewIncomeRepository(pool)

	// Optional integrations stay nil interfaces when unconfigured
	var generator ai.TextGenerator
	switch {
	case !cfg.AI.Enabled():
		log.Warn().Str("provider", cfg.AI.Provider).Msg("AI API key not set, AI assistant disabled")
	case cfg.AI.Provider == config.ProviderGemini:
		gemini, err := ai.NewGeminiClient(context.Background(), cfg.AI, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		defer gemini.Close()
		generator = gemini
	default:
		generator = ai.NewOpenRouterClient(cfg.AI, log.Logger)
	}
	if generator != nil {
		log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("AI assistant enabled")
	}

	var reportStore domain.ReportStore
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3ReportRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 report store")
		}
		reportStore = s3Store
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Report export enabled")
	}

	// Initialize services
	opts := service.Options{
		Location:     cfg.Location,
		WriteTimeout: cfg.WriteTimeout,
		Now:          time.Now,
	}
	expenseService := service.NewExpenseService(expenseRepo, opts)
	recurringService := service.NewRecurringService(recurringRepo, opts)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo, recurringRepo, opts)
	incomeService := service.NewIncomeService(incomeRepo, opts)
	analyticsService := service.NewAnalyticsService(expenseRepo, recurringRepo, incomeRepo, opts, service.TrendSettings{
		Months:           cfg.TrendMonths,
		HistoricalCutoff: cfg.RecurringHistoryCutoff,
	})
	profileService := service.NewProfileService(userRepo, budgetService, opts)
	chatService := service.NewChatService(generator, userRepo, expenseRepo, recurringRepo, budgetRepo, incomeRepo, opts)
	onboardingService := service.NewOnboardingService(generator, profileService)
	reportService := service.NewReportService(reportStore, expenseRepo, recurringRepo, budgetRepo, incomeRepo, cfg.S3.URLExpiry, opts)

	// Live updates: every write is pushed to the user's connected clients
	hub := websocket.NewHub()
	expenseService.SetEventPublisher(hub)
	recurringService.SetEventPublisher(hub)
	budgetService.SetEventPublisher(hub)
	incomeService.SetEventPublisher(hub)
	profileService.SetEventPublisher(hub)

	// Keep recurring next dates current
	scheduleWorker := service.NewRecurringScheduleWorker(recurringRepo, opts, log.Logger, service.RecurringScheduleWorkerConfig{
		Interval: cfg.RecurringScheduleInterval,
	})
	scheduleWorker.SetEventPublisher(hub)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	scheduleWorker.Start(workerCtx)

	// Initialize auth middleware; first request of a new subject creates the user
	authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience, profileService)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	wsValidator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience, &userLookupAdapter{users: userRepo})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create WebSocket token validator")
	}

	aiLimiter := middleware.NewRateLimiterWithConfig(cfg.AI.RateLimitPerMinute, cfg.AI.Burst)
	defer aiLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Expense:    handler.NewExpenseHandler(expenseService, cfg.Location),
		Recurring:  handler.NewRecurringHandler(recurringService, cfg.Location),
		Budget:     handler.NewBudgetHandler(budgetService),
		Income:     handler.NewIncomeHandler(incomeService),
		Analytics:  handler.NewAnalyticsHandler(analyticsService),
		Chat:       handler.NewChatHandler(chatService),
		Profile:    handler.NewProfileHandler(profileService),
		Onboarding: handler.NewOnboardingHandler(onboardingService),
		Report:     handler.NewReportHandler(reportService),
	}
	wsHandler := handler.NewWebSocketHandler(hub, wsValidator, cfg.CORSOrigins)
	openAPIHandler := handler.NewOpenAPIHandler([]handler.Server{
		{URL: "http://localhost:" + cfg.Port + "/api/v1", Description: "Local Development"},
		{URL: "https://api.cointrack.app/api/v1", Description: "Production"},
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		Skipper: func(c echo.Context) bool {
			// Swagger UI loads inline scripts
			return strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Prometheus request metrics
	metrics, err := middleware.NewMetrics(prometheus.DefaultRegisterer, hub.TotalClientCount)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}
	e.Use(metrics.Middleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API documentation
	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	e.GET("/openapi.json", openAPIHandler.ServeOpenAPI3Spec)

	// Live updates
	e.GET("/ws", wsHandler.HandleWS)

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, aiLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scheduleWorker.Stop()
	hub.CloseAll()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// userLookupAdapter adapts the user repository to websocket.UserLookup
type userLookupAdapter struct {
	users domain.UserRepository
}

// UserExists implements websocket.UserLookup
func (a *userLookupAdapter) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Warn()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("user_id", middleware.GetUserID(c)).
				Msg("request")

			return nil
		}
	}
}
