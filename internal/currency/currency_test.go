package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"dollars", "1234.50", "USD", "$1,234.50"},
		{"rounds half cents", "10.005", "USD", "$10.01"},
		{"zero", "0", "USD", "$0.00"},
		{"no fraction currency", "1500", "JPY", "¥1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Display(decimal.RequireFromString(tt.amount), tt.code)
			if got != tt.want {
				t.Errorf("Display(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}
