package service

import (
	"testing"

	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/shopspring/decimal"
)

func newAccountService(t *testing.T) *SavingsAccountService {
	t.Helper()
	return NewSavingsAccountService(repository.NewSavingsAccountRepository(newTestDB(t)))
}

func nullDecimal(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestAccountCreateListRoundTrip(t *testing.T) {
	accounts := newAccountService(t)

	bank := "First National"
	last4 := "4821"
	created, err := accounts.Create("u1", SavingsAccountInput{
		AccountName:        "Emergency fund",
		AccountType:        model.AccountTypeHighYield,
		BankName:           &bank,
		AccountNumberLast4: &last4,
		CurrentBalance:     nullDecimal("5230.75"),
		InterestRate:       nullDecimal("4.5"),
		IsPrimary:          true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := accounts.Accounts("u1")
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d accounts, want 1", len(list))
	}

	got := list[0]
	if got.ID != created.ID {
		t.Errorf("id = %s, want %s", got.ID, created.ID)
	}
	if got.AccountName != "Emergency fund" || got.AccountType != model.AccountTypeHighYield {
		t.Errorf("name/type = %q/%q", got.AccountName, got.AccountType)
	}
	if got.BankName == nil || *got.BankName != bank {
		t.Error("bank_name did not round-trip")
	}
	if got.AccountNumberLast4 == nil || *got.AccountNumberLast4 != last4 {
		t.Error("account_number_last4 did not round-trip")
	}
	if !got.CurrentBalance.Valid || !got.CurrentBalance.Decimal.Equal(decimal.RequireFromString("5230.75")) {
		t.Errorf("current_balance = %v", got.CurrentBalance)
	}
	if !got.IsPrimary {
		t.Error("is_primary lost")
	}
}

func TestAccountBlankInterestPersistsNull(t *testing.T) {
	accounts := newAccountService(t)

	created, err := accounts.Create("u1", SavingsAccountInput{
		AccountName: "No rate",
		AccountType: model.AccountTypeChecking,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Update with the rate still blank; it must stay NULL, not become 0.
	_, err = accounts.Update("u1", created.ID, SavingsAccountInput{
		AccountName: "No rate",
		AccountType: model.AccountTypeChecking,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := accounts.ByID("u1", created.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.InterestRate.Valid {
		t.Errorf("interest_rate = %s, want NULL", got.InterestRate.Decimal)
	}
	if got.CurrentBalance.Valid {
		t.Errorf("current_balance = %s, want NULL", got.CurrentBalance.Decimal)
	}
}

func TestSummaryAverageInterestRate(t *testing.T) {
	accounts := newAccountService(t)

	// Three accounts: 4.5%, no rate, 1.5%. The average divides by the total
	// account count with the missing rate counted as 0, so (4.5+0+1.5)/3 = 2.
	_, err := accounts.Create("u1", SavingsAccountInput{
		AccountName:    "High yield",
		AccountType:    model.AccountTypeHighYield,
		CurrentBalance: nullDecimal("1000"),
		InterestRate:   nullDecimal("4.5"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = accounts.Create("u1", SavingsAccountInput{
		AccountName: "Checking",
		AccountType: model.AccountTypeChecking,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = accounts.Create("u1", SavingsAccountInput{
		AccountName:    "Savings",
		AccountType:    model.AccountTypeSavings,
		CurrentBalance: nullDecimal("500.50"),
		InterestRate:   nullDecimal("1.5"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, err := accounts.Summary("u1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.AccountCount != 3 {
		t.Errorf("account_count = %d, want 3", summary.AccountCount)
	}
	if !summary.AverageInterestRate.Equal(decimal.NewFromInt(2)) {
		t.Errorf("average_interest_rate = %s, want 2", summary.AverageInterestRate)
	}
	if !summary.TotalBalance.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("total_balance = %s, want 1500.50", summary.TotalBalance)
	}
}

func TestSummaryEmpty(t *testing.T) {
	accounts := newAccountService(t)

	summary, err := accounts.Summary("u1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.AccountCount != 0 {
		t.Errorf("account_count = %d, want 0", summary.AccountCount)
	}
	if !summary.TotalBalance.IsZero() || !summary.AverageInterestRate.IsZero() {
		t.Errorf("empty summary not zero: %+v", summary)
	}
}

func TestAccountDelete(t *testing.T) {
	accounts := newAccountService(t)

	created, err := accounts.Create("u1", SavingsAccountInput{
		AccountName: "Old account",
		AccountType: model.AccountTypeSavings,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = accounts.Delete("u1", created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = accounts.ByID("u1", created.ID)
	if err != repository.ErrAccountNotFound {
		t.Errorf("ByID after delete = %v, want ErrAccountNotFound", err)
	}

	err = accounts.Delete("u1", created.ID)
	if err != repository.ErrAccountNotFound {
		t.Errorf("second Delete = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountUserIsolation(t *testing.T) {
	accounts := newAccountService(t)

	created, err := accounts.Create("u1", SavingsAccountInput{
		AccountName: "Private",
		AccountType: model.AccountTypeSavings,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := accounts.Accounts("u2")
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("other user sees %d accounts, want 0", len(list))
	}

	_, err = accounts.Update("u2", created.ID, SavingsAccountInput{
		AccountName: "Hijacked",
		AccountType: model.AccountTypeSavings,
	})
	if err != repository.ErrAccountNotFound {
		t.Errorf("Update for other user = %v, want ErrAccountNotFound", err)
	}
}
