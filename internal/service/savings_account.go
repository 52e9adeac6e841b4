package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/shopspring/decimal"
)

// SavingsAccountInput carries the editable fields of a savings account.
// Optional numeric fields are null when the form left them blank.
type SavingsAccountInput struct {
	AccountName        string
	AccountType        string
	BankName           *string
	AccountNumberLast4 *string
	CurrentBalance     decimal.NullDecimal
	InterestRate       decimal.NullDecimal
	MinimumBalance     decimal.NullDecimal
	MonthlyFee         decimal.NullDecimal
	IsPrimary          bool
	GoalID             *string
	Notes              *string
}

// SavingsSummary aggregates a user's accounts for the overview screen.
// AverageInterestRate divides by the total account count, counting accounts
// with no stated rate as 0, matching the dashboard's display semantics.
type SavingsSummary struct {
	TotalBalance        decimal.Decimal `json:"total_balance"`
	AverageInterestRate decimal.Decimal `json:"average_interest_rate"`
	AccountCount        int             `json:"account_count"`
}

type SavingsAccountService struct {
	repo repository.SavingsAccountRepository
}

func NewSavingsAccountService(repo repository.SavingsAccountRepository) *SavingsAccountService {
	return &SavingsAccountService{repo: repo}
}

func (s *SavingsAccountService) Create(userID string, input SavingsAccountInput) (*model.SavingsAccount, error) {
	now := time.Now()
	account := &model.SavingsAccount{
		ID:                 uuid.New().String(),
		UserID:             userID,
		AccountName:        input.AccountName,
		AccountType:        defaultString(input.AccountType, model.AccountTypeSavings),
		BankName:           input.BankName,
		AccountNumberLast4: input.AccountNumberLast4,
		CurrentBalance:     input.CurrentBalance,
		InterestRate:       input.InterestRate,
		MinimumBalance:     input.MinimumBalance,
		MonthlyFee:         input.MonthlyFee,
		IsPrimary:          input.IsPrimary,
		GoalID:             input.GoalID,
		Notes:              input.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.repo.Create(account)
	if err != nil {
		return nil, fmt.Errorf("failed to create savings account: %w", err)
	}

	return account, nil
}

func (s *SavingsAccountService) ByID(userID, accountID string) (*model.SavingsAccount, error) {
	return s.repo.ByID(userID, accountID)
}

func (s *SavingsAccountService) Accounts(userID string) ([]*model.SavingsAccount, error) {
	return s.repo.Accounts(userID)
}

func (s *SavingsAccountService) Update(userID, accountID string, input SavingsAccountInput) (*model.SavingsAccount, error) {
	// Verify ownership
	account, err := s.repo.ByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	account.AccountName = input.AccountName
	account.AccountType = defaultString(input.AccountType, model.AccountTypeSavings)
	account.BankName = input.BankName
	account.AccountNumberLast4 = input.AccountNumberLast4
	account.CurrentBalance = input.CurrentBalance
	account.InterestRate = input.InterestRate
	account.MinimumBalance = input.MinimumBalance
	account.MonthlyFee = input.MonthlyFee
	account.IsPrimary = input.IsPrimary
	account.GoalID = input.GoalID
	account.Notes = input.Notes
	account.UpdatedAt = time.Now()

	err = s.repo.Update(account)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (s *SavingsAccountService) Delete(userID, accountID string) error {
	// Verify ownership
	_, err := s.repo.ByID(userID, accountID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, accountID)
}

// Summary computes the total balance and average interest rate across all of
// the user's accounts. Null balances are skipped from the sum; null rates
// count as 0 in the average, and the divisor is the total account count.
func (s *SavingsAccountService) Summary(userID string) (*SavingsSummary, error) {
	accounts, err := s.repo.Accounts(userID)
	if err != nil {
		return nil, err
	}

	summary := &SavingsSummary{AccountCount: len(accounts)}

	var rateSum decimal.Decimal
	for _, account := range accounts {
		if account.CurrentBalance.Valid {
			summary.TotalBalance = summary.TotalBalance.Add(account.CurrentBalance.Decimal)
		}
		if account.InterestRate.Valid {
			rateSum = rateSum.Add(account.InterestRate.Decimal)
		}
	}

	if len(accounts) > 0 {
		summary.AverageInterestRate = rateSum.DivRound(decimal.NewFromInt(int64(len(accounts))), 4)
	}

	return summary, nil
}
