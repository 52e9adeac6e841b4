package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nestegghq/nestegg/internal/ctxkeys"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/progress"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/nestegghq/nestegg/internal/service"
	"github.com/nestegghq/nestegg/internal/validation"
	"github.com/shopspring/decimal"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	TargetValue  decimal.Decimal     `json:"target_value"`
	CurrentValue decimal.Decimal     `json:"current_value"`
	TargetDate   time.Time           `json:"target_date"`
	IsActive     *bool               `json:"is_active"`
	Priority     string              `json:"priority"`
	Milestones   model.MilestoneList `json:"milestones"`
}

func (req *goalRequest) validate() error {
	checks := []error{
		validation.ValidateGoalTitle(req.Title),
		validation.ValidateGoalAmounts(req.TargetValue, req.CurrentValue),
		validation.ValidateGoalTargetDate(req.TargetDate),
		validation.ValidateGoalCategory(req.Category),
		validation.ValidateGoalPriority(req.Priority),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func (req *goalRequest) input() service.GoalInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return service.GoalInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		TargetDate:   req.TargetDate,
		IsActive:     active,
		Priority:     req.Priority,
		Milestones:   req.Milestones,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	activeOnly := r.URL.Query().Get("active") == "true"
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = repository.GoalSortRecent
	}

	goals, err := h.goalService.Goals(user.ID, activeOnly, sortBy)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err == repository.ErrGoalNotFound {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to load goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(user.ID, req.input())
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req goalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, req.input())
	if err == repository.ErrGoalNotFound {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to update goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err == repository.ErrGoalNotFound {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type goalMilestonesResponse struct {
	GoalID        string            `json:"goal_id"`
	Progress      float64           `json:"progress"`
	DaysRemaining int               `json:"days_remaining"`
	Milestones    []model.Milestone `json:"milestones"`
}

// Milestones returns the goal's resolved milestone list: the stored list when
// one exists, otherwise the synthesized quarter milestones.
func (h *GoalHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err == repository.ErrGoalNotFound {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to load goal")
		return
	}

	respondJSON(w, http.StatusOK, goalMilestonesResponse{
		GoalID:        goal.ID,
		Progress:      progress.GoalProgress(goal),
		DaysRemaining: progress.DaysRemaining(goal.TargetDate, time.Now()),
		Milestones:    progress.MilestonesFor(goal),
	})
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID, false, repository.GoalSortRecent)
	if err != nil {
		slog.Error("failed to list goals for export", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to export goals")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")

	err = json.NewEncoder(w).Encode(goals)
	if err != nil {
		slog.Error("failed to encode goals", "error", err, "user_id", user.ID)
	}
}
