package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nestegghq/nestegg/internal/ctxkeys"
	"github.com/nestegghq/nestegg/internal/currency"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/progress"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/nestegghq/nestegg/internal/service"
)

// PortfolioHandler serves the aggregated overview the dashboard home screen
// renders: every active goal with derived progress, the currency-weighted
// portfolio percentage, and the savings account totals.
type PortfolioHandler struct {
	goalService    *service.GoalService
	accountService *service.SavingsAccountService
	currencyCode   string
}

func NewPortfolioHandler(goalService *service.GoalService, accountService *service.SavingsAccountService, currencyCode string) *PortfolioHandler {
	return &PortfolioHandler{
		goalService:    goalService,
		accountService: accountService,
		currencyCode:   currencyCode,
	}
}

type goalSummary struct {
	Goal          *model.Goal       `json:"goal"`
	Progress      float64           `json:"progress"`
	DaysRemaining int               `json:"days_remaining"`
	Milestones    []model.Milestone `json:"milestones"`
}

type portfolioSummaryResponse struct {
	Goals               []goalSummary           `json:"goals"`
	PortfolioProgress   float64                 `json:"portfolio_progress"`
	Savings             *service.SavingsSummary `json:"savings"`
	TotalBalanceDisplay string                  `json:"total_balance_display"`
}

func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID, true, repository.GoalSortRecent)
	if err != nil {
		slog.Error("failed to get goals for summary", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load portfolio summary")
		return
	}

	savings, err := h.accountService.Summary(user.ID)
	if err != nil {
		slog.Error("failed to get savings summary", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load portfolio summary")
		return
	}

	now := time.Now()
	summaries := make([]goalSummary, 0, len(goals))
	for _, goal := range goals {
		summaries = append(summaries, goalSummary{
			Goal:          goal,
			Progress:      progress.GoalProgress(goal),
			DaysRemaining: progress.DaysRemaining(goal.TargetDate, now),
			Milestones:    progress.MilestonesFor(goal),
		})
	}

	respondJSON(w, http.StatusOK, portfolioSummaryResponse{
		Goals:               summaries,
		PortfolioProgress:   progress.PortfolioProgress(goals),
		Savings:             savings,
		TotalBalanceDisplay: currency.Display(savings.TotalBalance, h.currencyCode),
	})
}
