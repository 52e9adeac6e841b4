package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nestegghq/nestegg/internal/model"
)

var (
	ErrAccountNotFound = errors.New("savings account not found")
)

type SavingsAccountRepository interface {
	Create(account *model.SavingsAccount) error
	ByID(userID, accountID string) (*model.SavingsAccount, error)
	Accounts(userID string) ([]*model.SavingsAccount, error)
	Update(account *model.SavingsAccount) error
	Delete(userID, accountID string) error
	ClearGoalLink(userID, goalID string) error
}

type savingsAccountRepository struct {
	db *sqlx.DB
}

func NewSavingsAccountRepository(db *sqlx.DB) SavingsAccountRepository {
	return &savingsAccountRepository{db: db}
}

func (r *savingsAccountRepository) Create(account *model.SavingsAccount) error {
	query := `INSERT INTO savings_accounts (id, user_id, account_name, account_type, bank_name,
	          account_number_last4, current_balance, interest_rate, minimum_balance, monthly_fee,
	          is_primary, goal_id, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(query,
		account.ID,
		account.UserID,
		account.AccountName,
		account.AccountType,
		account.BankName,
		account.AccountNumberLast4,
		account.CurrentBalance,
		account.InterestRate,
		account.MinimumBalance,
		account.MonthlyFee,
		account.IsPrimary,
		account.GoalID,
		account.Notes,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

func (r *savingsAccountRepository) ByID(userID, accountID string) (*model.SavingsAccount, error) {
	account := &model.SavingsAccount{}
	query := `SELECT * FROM savings_accounts WHERE id = $1 AND user_id = $2`

	err := r.db.Get(account, query, accountID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}

	return account, err
}

func (r *savingsAccountRepository) Accounts(userID string) ([]*model.SavingsAccount, error) {
	var accounts []*model.SavingsAccount
	query := `SELECT * FROM savings_accounts WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&accounts, query, userID)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *savingsAccountRepository) Update(account *model.SavingsAccount) error {
	query := `UPDATE savings_accounts
	          SET account_name = $1, account_type = $2, bank_name = $3, account_number_last4 = $4,
	              current_balance = $5, interest_rate = $6, minimum_balance = $7, monthly_fee = $8,
	              is_primary = $9, goal_id = $10, notes = $11, updated_at = $12
	          WHERE id = $13 AND user_id = $14`

	result, err := r.db.Exec(query,
		account.AccountName,
		account.AccountType,
		account.BankName,
		account.AccountNumberLast4,
		account.CurrentBalance,
		account.InterestRate,
		account.MinimumBalance,
		account.MonthlyFee,
		account.IsPrimary,
		account.GoalID,
		account.Notes,
		time.Now(),
		account.ID,
		account.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *savingsAccountRepository) Delete(userID, accountID string) error {
	query := `DELETE FROM savings_accounts WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, accountID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ClearGoalLink nullifies goal_id on every account of the user that references
// the goal. Zero affected rows is not an error: most goals have no linked accounts.
func (r *savingsAccountRepository) ClearGoalLink(userID, goalID string) error {
	query := `UPDATE savings_accounts SET goal_id = NULL, updated_at = $1 WHERE user_id = $2 AND goal_id = $3`
	_, err := r.db.Exec(query, time.Now(), userID, goalID)
	return err
}
