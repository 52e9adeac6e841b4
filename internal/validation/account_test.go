package validation

import "testing"

func TestValidateAccountType(t *testing.T) {
	for _, valid := range []string{"savings", "checking", "money_market", "cd", "high_yield", ""} {
		if err := ValidateAccountType(valid); err != nil {
			t.Errorf("ValidateAccountType(%q) = %v, want nil", valid, err)
		}
	}
	if err := ValidateAccountType("offshore"); err == nil {
		t.Error("unknown account type should be rejected")
	}
}

func TestValidateAccountLast4(t *testing.T) {
	tests := []struct {
		last4   string
		wantErr bool
	}{
		{"", false},
		{"4821", false},
		{"482", true},
		{"48210", true},
		{"48a1", true},
	}

	for _, tt := range tests {
		err := ValidateAccountLast4(tt.last4)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAccountLast4(%q) error = %v, wantErr %v", tt.last4, err, tt.wantErr)
		}
	}
}
