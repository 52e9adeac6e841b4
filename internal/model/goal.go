package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalCategoryEmergencyFund = "emergency_fund"
	GoalCategoryVacation      = "vacation"
	GoalCategoryHouse         = "house"
	GoalCategoryCar           = "car"
	GoalCategoryRetirement    = "retirement"
	GoalCategoryEducation     = "education"
	GoalCategoryOther         = "other"
)

const (
	GoalPriorityHigh   = "high"
	GoalPriorityMedium = "medium"
	GoalPriorityLow    = "low"
)

// GoalCategories lists every accepted category value.
var GoalCategories = []string{
	GoalCategoryEmergencyFund,
	GoalCategoryVacation,
	GoalCategoryHouse,
	GoalCategoryCar,
	GoalCategoryRetirement,
	GoalCategoryEducation,
	GoalCategoryOther,
}

// GoalPriorities lists every accepted priority value.
var GoalPriorities = []string{
	GoalPriorityHigh,
	GoalPriorityMedium,
	GoalPriorityLow,
}

type Goal struct {
	ID             string          `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"user_id"`
	Title          string          `db:"title" json:"title"`
	Description    string          `db:"description" json:"description"`
	Category       string          `db:"category" json:"category"`
	TargetValue    decimal.Decimal `db:"target_value" json:"target_value"`
	CurrentValue   decimal.Decimal `db:"current_value" json:"current_value"`
	TargetDate     time.Time       `db:"target_date" json:"target_date"`
	CompletionDate *time.Time      `db:"completion_date" json:"completion_date,omitempty"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	Priority       string          `db:"priority" json:"priority"`
	Milestones     MilestoneList   `db:"milestones" json:"milestones,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Completed reports whether the goal has been marked complete.
func (g *Goal) Completed() bool {
	return g.CompletionDate != nil
}
