package validation

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/nestegghq/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// ValidateGoalTitle validates goal title
func ValidateGoalTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidateGoalAmounts checks the target/current value invariants: target must
// be positive, current must not be negative.
func ValidateGoalAmounts(targetValue, currentValue decimal.Decimal) error {
	if !targetValue.IsPositive() {
		return errors.New("target value must be greater than zero")
	}

	if currentValue.IsNegative() {
		return errors.New("current value cannot be negative")
	}

	return nil
}

// ValidateGoalTargetDate requires a target date to be set
func ValidateGoalTargetDate(targetDate time.Time) error {
	if targetDate.IsZero() {
		return errors.New("target date is required")
	}

	return nil
}

// ValidateGoalCategory checks the category against the accepted set.
// An empty category is allowed; the service defaults it.
func ValidateGoalCategory(category string) error {
	if category == "" {
		return nil
	}

	if !slices.Contains(model.GoalCategories, category) {
		return errors.New("invalid goal category")
	}

	return nil
}

// ValidateGoalPriority checks the priority against the accepted set.
// An empty priority is allowed; the service defaults it.
func ValidateGoalPriority(priority string) error {
	if priority == "" {
		return nil
	}

	if !slices.Contains(model.GoalPriorities, priority) {
		return errors.New("invalid goal priority")
	}

	return nil
}
