package loantype

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCovers(t *testing.T) {
	lt := &LoanType{
		Name:      "personal",
		MinAmount: decimal.NewFromInt(1000),
		MaxAmount: decimal.NewFromInt(50000),
	}
	tests := []struct {
		amount string
		want   bool
	}{
		{"999.99", false},
		{"1000", true},
		{"25000.5", true},
		{"50000", true},
		{"50000.01", false},
	}
	for _, tt := range tests {
		if got := lt.Covers(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Fatalf("Covers(%s) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
