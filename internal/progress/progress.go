// Package progress derives completion percentages and milestone state from
// already-fetched goal records. Everything here is pure computation: no I/O,
// no clock access except where the caller passes one in.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/nestegghq/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// milestoneQuarters are the synthesized milestone thresholds, in percent.
var milestoneQuarters = []int64{25, 50, 75, 100}

// GoalProgress returns the goal's completion percentage in [0, 100].
// A zero target yields 0 regardless of the current value.
func GoalProgress(goal *model.Goal) float64 {
	return ratioPercent(goal.CurrentValue, goal.TargetValue)
}

// PortfolioProgress returns the currency-weighted completion percentage across
// all goals: sum of current values over sum of targets, not an average of
// per-goal percentages. Empty input or an all-zero target sum yields 0.
func PortfolioProgress(goals []*model.Goal) float64 {
	var current, target decimal.Decimal
	for _, goal := range goals {
		current = current.Add(goal.CurrentValue)
		target = target.Add(goal.TargetValue)
	}
	return ratioPercent(current, target)
}

func ratioPercent(current, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	percent := current.Div(target).Mul(hundred)
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	if percent.IsNegative() {
		return 0
	}
	pct, _ := percent.Float64()
	return pct
}

// MilestonesFor resolves a goal's milestone list. An explicit stored list is
// returned verbatim. Otherwise four milestones are synthesized at 25/50/75/100%
// of the target, with completion recomputed from the current value snapshot.
// A synthesized milestone is therefore not locked in: a later decrease of the
// current value un-completes it again.
func MilestonesFor(goal *model.Goal) []model.Milestone {
	if len(goal.Milestones) > 0 {
		return goal.Milestones
	}

	milestones := make([]model.Milestone, 0, len(milestoneQuarters))
	for _, quarter := range milestoneQuarters {
		threshold := goal.TargetValue.Mul(decimal.NewFromInt(quarter)).Div(hundred)
		completed := goal.TargetValue.IsPositive() && goal.CurrentValue.GreaterThanOrEqual(threshold)

		milestone := model.Milestone{
			ID:           fmt.Sprintf("%s-%d", goal.ID, quarter),
			Title:        fmt.Sprintf("%d%% of target", quarter),
			TargetAmount: threshold,
			TargetDate:   goal.TargetDate,
			Completed:    completed,
		}
		if completed {
			milestone.CompletedDate = goal.CompletionDate
		}
		milestones = append(milestones, milestone)
	}

	return milestones
}

// DaysRemaining returns the number of days until the target date, rounded up.
// Overdue goals yield a negative count.
func DaysRemaining(targetDate, now time.Time) int {
	return int(math.Ceil(targetDate.Sub(now).Hours() / 24))
}
