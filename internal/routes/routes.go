package routes

import (
	"net/http"

	"github.com/nestegghq/nestegg/internal/app"
	"github.com/nestegghq/nestegg/internal/handler"
	"github.com/nestegghq/nestegg/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	goal := handler.NewGoalHandler(app.GoalService)
	account := handler.NewSavingsAccountHandler(app.SavingsAccountService)
	portfolio := handler.NewPortfolioHandler(app.GoalService, app.SavingsAccountService, app.Cfg.CurrencyCode)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// ============================================================================
	// PROTECTED ROUTES (/api/v1/*)
	// ============================================================================

	// Goals
	mux.HandleFunc("GET /api/v1/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/v1/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/v1/goals/export", middleware.RequireAuth(goal.Export))
	mux.HandleFunc("GET /api/v1/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/v1/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/v1/goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("GET /api/v1/goals/{id}/milestones", middleware.RequireAuth(goal.Milestones))

	// Savings accounts
	mux.HandleFunc("GET /api/v1/accounts", middleware.RequireAuth(account.List))
	mux.HandleFunc("POST /api/v1/accounts", middleware.RequireAuth(account.Create))
	mux.HandleFunc("PUT /api/v1/accounts/{id}", middleware.RequireAuth(account.Update))
	mux.HandleFunc("DELETE /api/v1/accounts/{id}", middleware.RequireAuth(account.Delete))

	// Portfolio
	mux.HandleFunc("GET /api/v1/portfolio/summary", middleware.RequireAuth(portfolio.Summary))

	// Global middleware - executed in order (top to bottom)
	rateLimiter := middleware.NewRateLimiter(app.Cfg.RateLimitRequests, app.Cfg.RateLimitWindow)
	h := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.RateLimit(rateLimiter),
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)

	return h
}
