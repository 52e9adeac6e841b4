package progress

import (
	"testing"
	"time"

	"github.com/nestegghq/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

func newGoal(target, current string) *model.Goal {
	return &model.Goal{
		ID:           "g1",
		UserID:       "u1",
		Title:        "House deposit",
		TargetValue:  decimal.RequireFromString(target),
		CurrentValue: decimal.RequireFromString(current),
		TargetDate:   time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		want    float64
	}{
		{"quarter", "10000", "2500", 25.0},
		{"zero current", "10000", "0", 0},
		{"exactly met", "10000", "10000", 100},
		{"overfunded caps at 100", "10000", "15000", 100},
		{"zero target", "0", "500", 0},
		{"fractional", "200", "50", 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalProgress(newGoal(tt.target, tt.current))
			if got != tt.want {
				t.Errorf("GoalProgress(target=%s, current=%s) = %v, want %v", tt.target, tt.current, got, tt.want)
			}
		})
	}
}

func TestGoalProgressBounds(t *testing.T) {
	cases := [][2]string{
		{"10000", "2500"}, {"1", "999999"}, {"0", "100"}, {"3", "1"}, {"100", "100"},
	}
	for _, c := range cases {
		got := GoalProgress(newGoal(c[0], c[1]))
		if got < 0 || got > 100 {
			t.Errorf("GoalProgress(target=%s, current=%s) = %v, out of [0, 100]", c[0], c[1], got)
		}
	}
}

func TestPortfolioProgressEmpty(t *testing.T) {
	if got := PortfolioProgress(nil); got != 0 {
		t.Errorf("PortfolioProgress(nil) = %v, want 0", got)
	}
	if got := PortfolioProgress([]*model.Goal{}); got != 0 {
		t.Errorf("PortfolioProgress([]) = %v, want 0", got)
	}
}

func TestPortfolioProgressCurrencyWeighted(t *testing.T) {
	// One small fully-funded goal and one large unfunded goal. An average of
	// per-goal percentages would give 50; the currency-weighted aggregate is
	// 100 / 10100 of the total.
	goals := []*model.Goal{
		newGoal("100", "100"),
		newGoal("10000", "0"),
	}

	got := PortfolioProgress(goals)
	want, _ := decimal.RequireFromString("100").Div(decimal.RequireFromString("10100")).Mul(decimal.NewFromInt(100)).Float64()
	if got != want {
		t.Errorf("PortfolioProgress = %v, want %v", got, want)
	}
}

func TestPortfolioProgressZeroTargets(t *testing.T) {
	goals := []*model.Goal{newGoal("0", "50"), newGoal("0", "0")}
	if got := PortfolioProgress(goals); got != 0 {
		t.Errorf("PortfolioProgress with zero target sum = %v, want 0", got)
	}
}

func TestMilestonesForSynthesized(t *testing.T) {
	goal := newGoal("10000", "2500")
	milestones := MilestonesFor(goal)

	if len(milestones) != 4 {
		t.Fatalf("MilestonesFor returned %d milestones, want 4", len(milestones))
	}

	wantAmounts := []string{"2500", "5000", "7500", "10000"}
	wantCompleted := []bool{true, false, false, false}
	for i, m := range milestones {
		if !m.TargetAmount.Equal(decimal.RequireFromString(wantAmounts[i])) {
			t.Errorf("milestone %d target = %s, want %s", i, m.TargetAmount, wantAmounts[i])
		}
		if m.Completed != wantCompleted[i] {
			t.Errorf("milestone %d completed = %v, want %v", i, m.Completed, wantCompleted[i])
		}
	}
}

func TestMilestonesForMonotonic(t *testing.T) {
	// Raising current_value must never un-complete a lower threshold.
	var prevCompleted int
	for _, current := range []string{"0", "2500", "4999", "5000", "9999", "10000", "20000"} {
		milestones := MilestonesFor(newGoal("10000", current))

		completed := 0
		seenIncomplete := false
		for _, m := range milestones {
			if m.Completed {
				if seenIncomplete {
					t.Fatalf("current=%s: completed milestone after incomplete one", current)
				}
				completed++
			} else {
				seenIncomplete = true
			}
		}

		if completed < prevCompleted {
			t.Errorf("current=%s: completed count dropped from %d to %d", current, prevCompleted, completed)
		}
		prevCompleted = completed
	}
}

func TestMilestonesForDecreaseUncompletes(t *testing.T) {
	// Synthesized milestones are recomputed from the snapshot: a decrease in
	// current_value un-completes a previously reached threshold.
	before := MilestonesFor(newGoal("10000", "5000"))
	after := MilestonesFor(newGoal("10000", "2000"))

	if !before[1].Completed {
		t.Fatal("50% milestone should be completed at current=5000")
	}
	if after[0].Completed || after[1].Completed {
		t.Error("no milestone should remain completed at current=2000")
	}
}

func TestMilestonesForExplicitList(t *testing.T) {
	goal := newGoal("10000", "2500")
	goal.Milestones = model.MilestoneList{
		{ID: "m1", Title: "First deposit", TargetAmount: decimal.NewFromInt(1000), Completed: true},
		{ID: "m2", Title: "Halfway", TargetAmount: decimal.NewFromInt(5000)},
	}

	milestones := MilestonesFor(goal)
	if len(milestones) != 2 {
		t.Fatalf("explicit list returned %d milestones, want 2", len(milestones))
	}
	if milestones[0].ID != "m1" || milestones[1].ID != "m2" {
		t.Error("explicit milestones not returned verbatim")
	}
}

func TestMilestonesForZeroTarget(t *testing.T) {
	milestones := MilestonesFor(newGoal("0", "100"))
	for i, m := range milestones {
		if m.Completed {
			t.Errorf("milestone %d completed with zero target", i)
		}
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"ten days out", now.AddDate(0, 0, 10), 10},
		{"same instant", now, 0},
		{"partial day rounds up", now.Add(6 * time.Hour), 1},
		{"overdue", now.AddDate(0, 0, -3), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysRemaining(tt.target, now)
			if got != tt.want {
				t.Errorf("DaysRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}
