package lendbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amountFromString(t *testing.T, s string) Amount {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", s, err)
	}
	return A(d)
}

func TestAmountRoundCents(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "1.004", want: "1.00"},
		{in: "1.005", want: "1.01"}, // ties round away from zero
		{in: "-1.005", want: "-1.01"},
		{in: "2.675", want: "2.68"},
		{in: "999999999.994", want: "999999999.99"},
		{in: "1000", want: "1000.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got := amountFromString(t, tc.in).RoundCents()
			if got.String() != tc.want {
				t.Errorf("RoundCents(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAmountFormat(t *testing.T) {
	if got := A(1234.5).Format("USD"); got != "$1,234.50" {
		t.Errorf("Format(USD) = %q, want %q", got, "$1,234.50")
	}
	if got := A(0).SignedFormat("USD"); got != "-" {
		t.Errorf("SignedFormat(0) = %q, want %q", got, "-")
	}
	if got := A(10).SignedFormat("USD"); got != "+$10.00" {
		t.Errorf("SignedFormat(10) = %q, want %q", got, "+$10.00")
	}
}

func TestAmountString(t *testing.T) {
	if got := A(1000).String(); got != "1000.00" {
		t.Errorf("String() = %q, want %q", got, "1000.00")
	}
}
