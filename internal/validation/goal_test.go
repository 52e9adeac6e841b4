package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateGoalTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "House deposit", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", string(make([]byte, 201)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoalTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoalTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoalAmounts(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		wantErr bool
	}{
		{"valid", "10000", "2500", false},
		{"zero current", "10000", "0", false},
		{"zero target", "0", "0", true},
		{"negative target", "-1", "0", true},
		{"negative current", "100", "-5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoalAmounts(decimal.RequireFromString(tt.target), decimal.RequireFromString(tt.current))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoalAmounts(%s, %s) error = %v, wantErr %v", tt.target, tt.current, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoalTargetDate(t *testing.T) {
	if err := ValidateGoalTargetDate(time.Time{}); err == nil {
		t.Error("zero target date should be rejected")
	}
	if err := ValidateGoalTargetDate(time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("valid target date rejected: %v", err)
	}
}

func TestValidateGoalCategory(t *testing.T) {
	if err := ValidateGoalCategory("house"); err != nil {
		t.Errorf("valid category rejected: %v", err)
	}
	if err := ValidateGoalCategory(""); err != nil {
		t.Errorf("empty category should be allowed (service defaults it): %v", err)
	}
	if err := ValidateGoalCategory("yacht"); err == nil {
		t.Error("unknown category should be rejected")
	}
}

func TestValidateGoalPriority(t *testing.T) {
	if err := ValidateGoalPriority("high"); err != nil {
		t.Errorf("valid priority rejected: %v", err)
	}
	if err := ValidateGoalPriority("urgent"); err == nil {
		t.Error("unknown priority should be rejected")
	}
}
