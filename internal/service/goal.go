package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/shopspring/decimal"
)

// GoalInput carries the editable fields of a goal. Update is a full-field
// overwrite with these values; there are no partial-patch semantics.
type GoalInput struct {
	Title        string
	Description  string
	Category     string
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	TargetDate   time.Time
	IsActive     bool
	Priority     string
	Milestones   model.MilestoneList
}

type GoalService struct {
	repo        repository.GoalRepository
	accountRepo repository.SavingsAccountRepository
}

func NewGoalService(repo repository.GoalRepository, accountRepo repository.SavingsAccountRepository) *GoalService {
	return &GoalService{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

func (s *GoalService) Create(userID string, input GoalInput) (*model.Goal, error) {
	now := time.Now()
	goal := &model.Goal{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     defaultString(input.Category, model.GoalCategoryOther),
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		TargetDate:   input.TargetDate,
		IsActive:     true,
		Priority:     defaultString(input.Priority, model.GoalPriorityMedium),
		Milestones:   input.Milestones,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stampCompletion(goal, now)

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string, activeOnly bool, sortBy string) ([]*model.Goal, error) {
	return s.repo.Goals(userID, activeOnly, sortBy)
}

func (s *GoalService) Update(userID, goalID string, input GoalInput) (*model.Goal, error) {
	// Verify ownership
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.Category = defaultString(input.Category, model.GoalCategoryOther)
	goal.TargetValue = input.TargetValue
	goal.CurrentValue = input.CurrentValue
	goal.TargetDate = input.TargetDate
	goal.IsActive = input.IsActive
	goal.Priority = defaultString(input.Priority, model.GoalPriorityMedium)
	goal.Milestones = input.Milestones
	goal.UpdatedAt = time.Now()

	stampCompletion(goal, goal.UpdatedAt)

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal and nullifies goal_id on any of the user's savings
// accounts that reference it, so no dangling links survive a hard delete.
func (s *GoalService) Delete(userID, goalID string) error {
	// Verify ownership
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, goalID)
	if err != nil {
		return err
	}

	err = s.accountRepo.ClearGoalLink(userID, goalID)
	if err != nil {
		return fmt.Errorf("failed to clear account links for deleted goal: %w", err)
	}

	return nil
}

// stampCompletion keeps completion_date consistent with the current/target
// values: reaching the target sets it, dropping back below clears it.
// Archival (is_active = false) is a separate explicit state.
func stampCompletion(goal *model.Goal, now time.Time) {
	reached := goal.TargetValue.IsPositive() && goal.CurrentValue.GreaterThanOrEqual(goal.TargetValue)

	if reached && goal.CompletionDate == nil {
		completed := now
		goal.CompletionDate = &completed
	}
	if !reached {
		goal.CompletionDate = nil
	}
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
