package lendbook

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// Request is one candidate transaction as submitted by a caller, all fields
// still raw strings.
type Request struct {
	Date   string
	Type   string
	Amount string
	Notes  string
}

// Result is the outcome of validating one Request. Errors and Warnings are
// keyed by field; every field is checked and every problem reported in one
// pass. Warnings are advisory and never block acceptance: the caller decides
// whether to proceed past them.
type Result struct {
	Valid       bool
	Transaction Transaction // populated only when Valid
	Errors      map[Field][]Issue
	Warnings    map[Field][]Issue
}

// HasWarnings reports whether any advisory warning was raised.
func (r Result) HasWarnings() bool { return len(r.Warnings) > 0 }

// Validator normalizes and checks candidate transaction fields against the
// configured bounds. It is stateless per call and safe for concurrent use.
type Validator struct {
	cfg       Config
	sanitizer *bluemonday.Policy
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg Config) *Validator {
	return &Validator{
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ValidateDate parses the raw date. A failure is returned as an Issue with
// code invalid-date. Whether the date lies in the future is a separate,
// advisory concern handled by ValidateTransaction.
func (v *Validator) ValidateDate(raw string) (Date, error) {
	day, err := ParseDate(raw)
	if err != nil {
		return Date{}, issuef(FieldDate, CodeInvalidDate, "invalid date %q, want year-month-day", raw)
	}
	return day, nil
}

// ValidateAmount normalizes the raw amount to the nearest cent (ties round
// away from zero) and checks it against the configured bounds.
func (v *Validator) ValidateAmount(raw string) (Amount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}, issuef(FieldAmount, CodeRequired, "amount is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, issuef(FieldAmount, CodeInvalidNumber, "amount %q is not a number", raw)
	}
	amount := Amount{value: d}.RoundCents()
	if amount.LessThan(v.cfg.MinAmount) {
		return Amount{}, issuef(FieldAmount, CodeTooLow, "amount must be at least %s", v.cfg.MinAmount)
	}
	if amount.GreaterThan(v.cfg.MaxAmount) {
		return Amount{}, issuef(FieldAmount, CodeTooHigh, "amount must be at most %s", v.cfg.MaxAmount)
	}
	return amount, nil
}

// ValidateType accepts exactly one of the two enum values.
func (v *Validator) ValidateType(raw string) (TxType, error) {
	typ, err := ParseTxType(strings.TrimSpace(raw))
	if err != nil {
		return "", issuef(FieldType, CodeInvalidType, "type must be %q or %q", LoanOut, Payment)
	}
	return typ, nil
}

// ValidateNotes sanitizes the raw notes (markup is stripped and the
// remainder HTML-escaped) and then checks the configured length limit
// against the sanitized output. Empty input yields an empty string.
func (v *Validator) ValidateNotes(raw string) (string, error) {
	notes := strings.TrimSpace(v.sanitizer.Sanitize(raw))
	if len(notes) > v.cfg.MaxNotesLen {
		return "", issuef(FieldNotes, CodeTooLong, "notes must be at most %d characters", v.cfg.MaxNotesLen)
	}
	return notes, nil
}

// ValidateTransaction runs all four field validators independently,
// collecting every failure rather than stopping at the first, then scans
// the existing ledger for a near-duplicate. On success the returned Result
// carries a fully formed Transaction ready for Ledger.Insert.
func (v *Validator) ValidateTransaction(req Request, ledger *Ledger) Result {
	res := Result{
		Errors:   make(map[Field][]Issue),
		Warnings: make(map[Field][]Issue),
	}
	fail := func(err error) {
		if iss, ok := err.(Issue); ok {
			res.Errors[iss.Field] = append(res.Errors[iss.Field], iss)
		}
	}

	day, dateErr := v.ValidateDate(req.Date)
	if dateErr != nil {
		fail(dateErr)
	} else if day.After(Today()) {
		iss := issuef(FieldDate, CodeFutureDate, "date %s is in the future", day)
		res.Warnings[FieldDate] = append(res.Warnings[FieldDate], iss)
	}

	typ, typeErr := v.ValidateType(req.Type)
	if typeErr != nil {
		fail(typeErr)
	}

	amount, amountErr := v.ValidateAmount(req.Amount)
	if amountErr != nil {
		fail(amountErr)
	}

	notes, notesErr := v.ValidateNotes(req.Notes)
	if notesErr != nil {
		fail(notesErr)
	}

	if len(res.Errors) > 0 {
		return res
	}

	res.Valid = true
	res.Transaction = NewTransaction(day, typ, amount, notes)

	// The duplicate scan is purely advisory, it never blocks acceptance.
	if dup, found := FindDuplicate(res.Transaction, ledger); found {
		iss := issuef(FieldTransaction, CodeDuplicate,
			"looks like a duplicate of the %s of %s on %s", dup.Type, dup.Amount, dup.Date)
		res.Warnings[FieldTransaction] = append(res.Warnings[FieldTransaction], iss)
	}
	return res
}
