package lendbook

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the two kinds of ledger transactions.
type TxType string

const (
	// LoanOut records money handed out; it increases the outstanding balance.
	LoanOut TxType = "loan-out"
	// Payment records money received back; it decreases the outstanding balance.
	Payment TxType = "payment"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case string(LoanOut):
		return LoanOut, nil
	case string(Payment):
		return Payment, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single dated loan or payment event. Once accepted into
// the ledger it is never mutated in place; edits happen by removal or by
// wholesale replacement of the ledger.
type Transaction struct {
	ID        string    // opaque unique identifier, assigned at creation, never reused
	Date      Date      // the calendar day the event took place
	Type      TxType    // loan-out or payment
	Amount    Amount    // strictly positive, two fractional digits
	Notes     string    // sanitized free text, may be empty
	Timestamp time.Time // creation instant, informational only, never used for ordering
}

// NewTransaction creates a transaction with a fresh id and creation timestamp.
// The caller is responsible for having validated the fields beforehand.
func NewTransaction(day Date, typ TxType, amount Amount, notes string) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Date:      day,
		Type:      typ,
		Amount:    amount,
		Notes:     notes,
		Timestamp: time.Now().UTC(),
	}
}

// Equal reports whether two transactions carry the same data.
// The creation timestamp is ignored: it is informational only.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Notes == o.Notes
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Optional("notes", t.Notes)
	if !t.Timestamp.IsZero() {
		w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		Date      Date            `json:"date"`
		Type      string          `json:"type"`
		Amount    decimal.Decimal `json:"amount"`
		Notes     string          `json:"notes"`
		Timestamp time.Time       `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	typ, err := ParseTxType(temp.Type)
	if err != nil {
		return err
	}
	t.ID = temp.ID
	t.Date = temp.Date
	t.Type = typ
	t.Amount = A(temp.Amount)
	t.Notes = temp.Notes
	t.Timestamp = temp.Timestamp
	return nil
}
