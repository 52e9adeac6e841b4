package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

// The milestones column has exactly two states: NULL (no explicit milestones)
// and a JSON list. An empty list must collapse to NULL on write and NULL must
// read back as nil, so every read site sees the same two-state variant.
func TestMilestoneListNullSemantics(t *testing.T) {
	var empty MilestoneList
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("Value on nil list: %v", err)
	}
	if v != nil {
		t.Errorf("nil list Value() = %v, want NULL", v)
	}

	v, err = MilestoneList{}.Value()
	if err != nil {
		t.Fatalf("Value on empty list: %v", err)
	}
	if v != nil {
		t.Errorf("empty list Value() = %v, want NULL", v)
	}

	var scanned MilestoneList
	err = scanned.Scan(nil)
	if err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if scanned != nil {
		t.Errorf("Scan(nil) = %v, want nil", scanned)
	}
}

func TestMilestoneListRoundTrip(t *testing.T) {
	list := MilestoneList{
		{ID: "m1", Title: "First deposit", TargetAmount: decimal.NewFromInt(1000), Completed: true},
		{ID: "m2", Title: "Halfway", TargetAmount: decimal.RequireFromString("2500.50")},
	}

	v, err := list.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var got MilestoneList
	err = got.Scan(v)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}
	if got[0].ID != "m1" || !got[0].Completed {
		t.Errorf("first milestone = %+v", got[0])
	}
	if !got[1].TargetAmount.Equal(decimal.RequireFromString("2500.50")) {
		t.Errorf("second milestone amount = %s", got[1].TargetAmount)
	}
}

func TestMilestoneListScanRejectsUnknownType(t *testing.T) {
	var list MilestoneList
	err := list.Scan(42)
	if err == nil {
		t.Error("Scan(int) should fail")
	}
}
