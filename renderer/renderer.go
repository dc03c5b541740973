// Package renderer turns computed timelines and statistics into markdown.
// It is a pure string-building layer: it never touches the ledger and
// performs no I/O, so the CLI decides where and how the markdown is shown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/lendbook"
)

// Timeline renders the balance history as a markdown table, one row per
// timeline entry, including the trailing interest row when present.
func Timeline(rows []lendbook.TimelineRow, cfg lendbook.Config) string {
	var b strings.Builder
	b.WriteString("# Ledger History\n\n")
	if len(rows) == 0 {
		b.WriteString("The ledger is empty.\n")
		return b.String()
	}

	b.WriteString("| Date | Type | Amount | Days | Interest | Balance | Notes |\n")
	b.WriteString("|------|------|-------:|-----:|---------:|--------:|-------|\n")
	for _, row := range rows {
		typ, amount, notes := cfg.InterestLabel, "", ""
		if !row.IsSynthetic() {
			typ = cfg.TypeLabel(row.Transaction.Type)
			amount = row.Transaction.Amount.Format(cfg.Currency)
			notes = row.Transaction.Notes
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s |\n",
			row.Date,
			typ,
			amount,
			row.DaysSincePrevious,
			row.InterestAccrued.RoundCents().Format(cfg.Currency),
			row.RunningBalanceAfter.RoundCents().Format(cfg.Currency),
			notes,
		)
	}
	return b.String()
}

// Statistics renders the summary figures of a ledger.
func Statistics(s lendbook.Statistics, cfg lendbook.Config) string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|------:|\n")
	fmt.Fprintf(&b, "| Current Balance | %s |\n", s.CurrentBalance.RoundCents().Format(cfg.Currency))
	fmt.Fprintf(&b, "| Total Loaned | %s |\n", s.TotalLoaned.Format(cfg.Currency))
	fmt.Fprintf(&b, "| Total Payments | %s |\n", s.TotalPayments.Format(cfg.Currency))
	fmt.Fprintf(&b, "| Total Interest | %s |\n", s.TotalInterest.RoundCents().Format(cfg.Currency))
	fmt.Fprintf(&b, "| Loans | %d |\n", s.LoanCount)
	fmt.Fprintf(&b, "| Payments | %d |\n", s.PaymentCount)
	fmt.Fprintf(&b, "| Days Active | %d |\n", s.DaysActive)
	fmt.Fprintf(&b, "| Effective Rate | %s |\n", s.EffectiveRate)
	return b.String()
}

// Transaction renders a one-line human readable summary of a transaction.
func Transaction(tx lendbook.Transaction, cfg lendbook.Config) string {
	var verb string
	switch tx.Type {
	case lendbook.LoanOut:
		verb = "Lent"
	case lendbook.Payment:
		verb = "Received"
	default:
		verb = string(tx.Type)
	}
	if tx.Notes != "" {
		return fmt.Sprintf("%s %s on %s (%s)", verb, tx.Amount.Format(cfg.Currency), tx.Date, tx.Notes)
	}
	return fmt.Sprintf("%s %s on %s", verb, tx.Amount.Format(cfg.Currency), tx.Date)
}
