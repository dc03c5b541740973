package lendbook

import "github.com/shopspring/decimal"

// D is a helper for tests to build a Date from an ISO string.
func D(s string) Date { return MustParse(s) }

// loan is a helper for tests to build an accepted loan-out transaction.
func loan(day string, amount float64) Transaction {
	return NewTransaction(D(day), LoanOut, A(amount), "")
}

// payment is a helper for tests to build an accepted payment transaction.
func payment(day string, amount float64) Transaction {
	return NewTransaction(D(day), Payment, A(amount), "")
}

// approx reports whether an Amount is within 1e-4 of the expected value,
// loose enough for interest figures that carry long decimal expansions.
func approx(got Amount, want float64) bool {
	diff := got.value.Sub(decimal.NewFromFloat(want)).Abs()
	return diff.LessThan(decimal.NewFromFloat(0.0001))
}
