package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Milestone struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	TargetDate    time.Time       `json:"target_date"`
	Completed     bool            `json:"completed"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
}

// MilestoneList is a goal's explicit milestone list, stored as a JSON column.
// An empty list is stored as NULL, which reads back as nil: the two states are
// "no explicit milestones" and "explicit list", nothing in between.
type MilestoneList []Milestone

func (ml MilestoneList) Value() (driver.Value, error) {
	if len(ml) == 0 {
		return nil, nil
	}
	return json.Marshal(ml)
}

func (ml *MilestoneList) Scan(value interface{}) error {
	if value == nil {
		*ml = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for MilestoneList: %T", value)
	}
	if len(data) == 0 {
		*ml = nil
		return nil
	}
	return json.Unmarshal(data, ml)
}
