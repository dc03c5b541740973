package lendbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// BackupVersion identifies the backup document layout produced by this package.
const BackupVersion = "1"

// DateRange is the inclusive span covered by the transactions of a backup.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// BackupMetadata summarizes a backup's content.
type BackupMetadata struct {
	TotalTransactions int        `json:"totalTransactions"`
	DateRange         *DateRange `json:"dateRange"` // nil when the backup is empty
}

// Backup is the single-file import/export document. It should remain human
// readable and easy to inspect.
type Backup struct {
	Version      string         `json:"version"`
	ExportDate   time.Time      `json:"exportDate"`
	InterestRate float64        `json:"interestRate"`
	Transactions []Transaction  `json:"transactions"`
	Metadata     BackupMetadata `json:"metadata"`
}

// NewBackup builds a backup document from the current ledger content.
func NewBackup(ledger *Ledger, interestRate float64) *Backup {
	b := &Backup{
		Version:      BackupVersion,
		ExportDate:   time.Now().UTC(),
		InterestRate: interestRate,
	}
	for _, tx := range ledger.Transactions() {
		b.Transactions = append(b.Transactions, tx)
	}
	b.Metadata.TotalTransactions = len(b.Transactions)
	if len(b.Transactions) > 0 {
		b.Metadata.DateRange = &DateRange{
			Start: ledger.OldestTransactionDate(),
			End:   ledger.NewestTransactionDate(),
		}
	}
	return b
}

// EncodeBackup writes the ledger as an indented backup document.
func EncodeBackup(w io.Writer, ledger *Ledger, interestRate float64) error {
	data, err := json.MarshalIndent(NewBackup(ledger, interestRate), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// DecodeBackup reads and structurally validates a backup document. The
// `transactions` property must be present and be a sequence; anything else
// fails with a *FormatError before any ledger mutation can take place.
// Restoring is then a single Ledger.Replace with the decoded transactions.
func DecodeBackup(r io.Reader) (*Backup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading backup: %w", err)
	}

	var raw struct {
		Version      string          `json:"version"`
		ExportDate   time.Time       `json:"exportDate"`
		InterestRate float64         `json:"interestRate"`
		Transactions json.RawMessage `json:"transactions"`
		Metadata     BackupMetadata  `json:"metadata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: "not a backup document", Err: err}
	}
	if len(raw.Transactions) == 0 {
		return nil, &FormatError{Reason: "missing transactions"}
	}
	if trimmed := bytes.TrimSpace(raw.Transactions); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FormatError{Reason: "transactions is not a sequence"}
	}

	var txs []Transaction
	if err := json.Unmarshal(raw.Transactions, &txs); err != nil {
		return nil, &FormatError{Reason: "malformed transaction record", Err: err}
	}

	return &Backup{
		Version:      raw.Version,
		ExportDate:   raw.ExportDate,
		InterestRate: raw.InterestRate,
		Transactions: txs,
		Metadata:     raw.Metadata,
	}, nil
}
