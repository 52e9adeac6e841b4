package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeSavings     = "savings"
	AccountTypeChecking    = "checking"
	AccountTypeMoneyMarket = "money_market"
	AccountTypeCD          = "cd"
	AccountTypeHighYield   = "high_yield"
)

// AccountTypes lists every accepted account type value.
var AccountTypes = []string{
	AccountTypeSavings,
	AccountTypeChecking,
	AccountTypeMoneyMarket,
	AccountTypeCD,
	AccountTypeHighYield,
}

type SavingsAccount struct {
	ID                 string              `db:"id" json:"id"`
	UserID             string              `db:"user_id" json:"user_id"`
	AccountName        string              `db:"account_name" json:"account_name"`
	AccountType        string              `db:"account_type" json:"account_type"`
	BankName           *string             `db:"bank_name" json:"bank_name,omitempty"`
	AccountNumberLast4 *string             `db:"account_number_last4" json:"account_number_last4,omitempty"`
	CurrentBalance     decimal.NullDecimal `db:"current_balance" json:"current_balance"`
	InterestRate       decimal.NullDecimal `db:"interest_rate" json:"interest_rate"`
	MinimumBalance     decimal.NullDecimal `db:"minimum_balance" json:"minimum_balance"`
	MonthlyFee         decimal.NullDecimal `db:"monthly_fee" json:"monthly_fee"`
	IsPrimary          bool                `db:"is_primary" json:"is_primary"`
	GoalID             *string             `db:"goal_id" json:"goal_id,omitempty"`
	Notes              *string             `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updated_at"`
}
