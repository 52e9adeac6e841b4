package validation

import (
	"errors"
	"slices"
	"strings"

	"github.com/nestegghq/nestegg/internal/model"
)

// ValidateAccountName validates savings account name
func ValidateAccountName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("account name is required")
	}

	if len(trimmed) > 200 {
		return errors.New("account name is too long (max 200 characters)")
	}

	return nil
}

// ValidateAccountType checks the account type against the accepted set.
// An empty type is allowed; the service defaults it.
func ValidateAccountType(accountType string) error {
	if accountType == "" {
		return nil
	}

	if !slices.Contains(model.AccountTypes, accountType) {
		return errors.New("invalid account type")
	}

	return nil
}

// ValidateAccountLast4 checks the optional last-four digits field.
func ValidateAccountLast4(last4 string) error {
	if last4 == "" {
		return nil
	}

	if len(last4) != 4 {
		return errors.New("account number last 4 must be exactly 4 characters")
	}

	for _, c := range last4 {
		if c < '0' || c > '9' {
			return errors.New("account number last 4 must be digits")
		}
	}

	return nil
}
