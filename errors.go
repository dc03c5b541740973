package lendbook

import "fmt"

// Field names the transaction field a validation issue is scoped to.
type Field string

const (
	FieldDate   Field = "date"
	FieldType   Field = "type"
	FieldAmount Field = "amount"
	FieldNotes  Field = "notes"
	// FieldTransaction scopes issues that concern the candidate as a whole,
	// such as a near-duplicate of an existing entry.
	FieldTransaction Field = "transaction"
)

// Code identifies a validation failure or warning.
type Code string

const (
	CodeInvalidDate   Code = "invalid-date"
	CodeFutureDate    Code = "future-date"
	CodeRequired      Code = "required"
	CodeInvalidNumber Code = "invalid-number"
	CodeTooLow        Code = "too-low"
	CodeTooHigh       Code = "too-high"
	CodeInvalidType   Code = "invalid-type"
	CodeTooLong       Code = "too-long"
	CodeDuplicate     Code = "duplicate"
)

// Issue is a single field-scoped validation failure or warning.
// Validation never short-circuits: one submission reports every issue at once.
type Issue struct {
	Field   Field
	Code    Code
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// issuef builds an Issue with a formatted message.
func issuef(field Field, code Code, format string, args ...any) Issue {
	return Issue{Field: field, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a mutation referencing an absent transaction id.
// The ledger is left unchanged when it is returned.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no transaction with id %q", e.ID)
}

// FormatError reports a structurally malformed backup document. A backup
// that fails structural validation is rejected as a whole, with zero
// partial mutation of the ledger.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid backup format: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }
