package lendbook

// DefaultAnnualRate is the annual simple interest rate applied when the
// caller does not provide one.
const DefaultAnnualRate = 0.0825

// Config carries the external parameters of the engine. Nothing in here is
// ever hard-coded in the computation paths; callers may override any field.
type Config struct {
	AnnualRate  float64 // annual simple interest rate, e.g. 0.0825 for 8.25%
	MinAmount   Amount  // smallest acceptable transaction amount
	MaxAmount   Amount  // largest acceptable transaction amount
	MaxNotesLen int     // maximum notes length, measured after sanitization
	Currency    string  // ISO currency code used for display formatting only

	// Display labels for the two transaction types, and for the synthetic
	// row carrying interest accrued up to today.
	LoanLabel     string
	PaymentLabel  string
	InterestLabel string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		AnnualRate:    DefaultAnnualRate,
		MinAmount:     A(0.01),
		MaxAmount:     A(999_999_999.99),
		MaxNotesLen:   500,
		Currency:      "USD",
		LoanLabel:     "Loan Out",
		PaymentLabel:  "Payment",
		InterestLabel: "Interest",
	}
}

// TypeLabel returns the display label for a transaction type.
func (c Config) TypeLabel(t TxType) string {
	switch t {
	case LoanOut:
		return c.LoanLabel
	case Payment:
		return c.PaymentLabel
	default:
		return string(t)
	}
}
