package handler

import (
	"log/slog"
	"net/http"

	"github.com/nestegghq/nestegg/internal/ctxkeys"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/nestegghq/nestegg/internal/service"
	"github.com/nestegghq/nestegg/internal/validation"
	"github.com/shopspring/decimal"
)

type SavingsAccountHandler struct {
	accountService *service.SavingsAccountService
}

func NewSavingsAccountHandler(accountService *service.SavingsAccountService) *SavingsAccountHandler {
	return &SavingsAccountHandler{
		accountService: accountService,
	}
}

type savingsAccountRequest struct {
	AccountName        string              `json:"account_name"`
	AccountType        string              `json:"account_type"`
	BankName           *string             `json:"bank_name"`
	AccountNumberLast4 *string             `json:"account_number_last4"`
	CurrentBalance     decimal.NullDecimal `json:"current_balance"`
	InterestRate       decimal.NullDecimal `json:"interest_rate"`
	MinimumBalance     decimal.NullDecimal `json:"minimum_balance"`
	MonthlyFee         decimal.NullDecimal `json:"monthly_fee"`
	IsPrimary          bool                `json:"is_primary"`
	GoalID             *string             `json:"goal_id"`
	Notes              *string             `json:"notes"`
}

func (req *savingsAccountRequest) validate() error {
	err := validation.ValidateAccountName(req.AccountName)
	if err != nil {
		return err
	}

	err = validation.ValidateAccountType(req.AccountType)
	if err != nil {
		return err
	}

	if req.AccountNumberLast4 != nil {
		err = validation.ValidateAccountLast4(*req.AccountNumberLast4)
		if err != nil {
			return err
		}
	}

	return nil
}

func (req *savingsAccountRequest) input() service.SavingsAccountInput {
	return service.SavingsAccountInput{
		AccountName:        req.AccountName,
		AccountType:        req.AccountType,
		BankName:           req.BankName,
		AccountNumberLast4: req.AccountNumberLast4,
		CurrentBalance:     req.CurrentBalance,
		InterestRate:       req.InterestRate,
		MinimumBalance:     req.MinimumBalance,
		MonthlyFee:         req.MonthlyFee,
		IsPrimary:          req.IsPrimary,
		GoalID:             req.GoalID,
		Notes:              req.Notes,
	}
}

func (h *SavingsAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	accounts, err := h.accountService.Accounts(user.ID)
	if err != nil {
		slog.Error("failed to get savings accounts", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load savings accounts")
		return
	}

	if accounts == nil {
		accounts = []*model.SavingsAccount{}
	}

	respondJSON(w, http.StatusOK, accounts)
}

func (h *SavingsAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req savingsAccountRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.Create(user.ID, req.input())
	if err != nil {
		slog.Error("failed to create savings account", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to create savings account")
		return
	}

	respondJSON(w, http.StatusCreated, account)
}

func (h *SavingsAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	accountID := r.PathValue("id")

	var req savingsAccountRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.Update(user.ID, accountID, req.input())
	if err == repository.ErrAccountNotFound {
		respondError(w, http.StatusNotFound, "Savings account not found")
		return
	}
	if err != nil {
		slog.Error("failed to update savings account", "error", err, "user_id", user.ID, "account_id", accountID)
		respondError(w, http.StatusInternalServerError, "Failed to update savings account")
		return
	}

	respondJSON(w, http.StatusOK, account)
}

func (h *SavingsAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	accountID := r.PathValue("id")

	err := h.accountService.Delete(user.ID, accountID)
	if err == repository.ErrAccountNotFound {
		respondError(w, http.StatusNotFound, "Savings account not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete savings account", "error", err, "user_id", user.ID, "account_id", accountID)
		respondError(w, http.StatusInternalServerError, "Failed to delete savings account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
