package lendbook

import "github.com/shopspring/decimal"

// TimelineRow is one ledger entry annotated with the interest accrued since
// the previous entry and the running balance after applying it. Rows are
// derived, never persisted.
type TimelineRow struct {
	// Transaction is nil for the synthetic trailing row that carries the
	// interest accrued from the last transaction up to today.
	Transaction         *Transaction
	Date                Date
	DaysSincePrevious   int
	InterestAccrued     Amount
	RunningBalanceAfter Amount
}

// IsSynthetic reports whether the row has no underlying transaction.
func (r TimelineRow) IsSynthetic() bool { return r.Transaction == nil }

var daysPerYear = decimal.NewFromInt(365)

// ComputeTimeline walks the sorted ledger once and reconstructs the balance
// history: for each transaction it accrues simple interest on the balance
// carried over the gap since the previous entry, then applies the
// transaction amount. Interest only accrues while the balance is strictly
// positive; an overpaid (negative) balance is a credit that earns nothing.
//
// When the final balance is positive, a synthetic trailing row carries the
// interest accrued from the last transaction's date up to today.
//
// The walk reads an atomic snapshot of the ledger, so a computation pass
// always runs to completion over a consistent view.
func (l *Ledger) ComputeTimeline(annualRate float64, today Date) []TimelineRow {
	transactions := l.snapshot()
	dailyRate := decimal.NewFromFloat(annualRate).Div(daysPerYear)

	rows := make([]TimelineRow, 0, len(transactions)+1)
	balance := Amount{}
	var previous Date
	first := true

	for i := range transactions {
		tx := transactions[i]

		days := 0
		interest := Amount{}
		if !first {
			days = DaysBetween(previous, tx.Date)
			if balance.IsPositive() {
				interest = accrue(balance, dailyRate, days)
				balance = balance.Add(interest)
			}
		}

		switch tx.Type {
		case LoanOut:
			balance = balance.Add(tx.Amount)
		case Payment:
			// Overpayment is permitted, the balance simply goes negative.
			balance = balance.Sub(tx.Amount)
		}

		rows = append(rows, TimelineRow{
			Transaction:         &transactions[i],
			Date:                tx.Date,
			DaysSincePrevious:   days,
			InterestAccrued:     interest,
			RunningBalanceAfter: balance,
		})
		previous = tx.Date
		first = false
	}

	if !first && balance.IsPositive() {
		if days := DaysBetween(previous, today); days > 0 {
			interest := accrue(balance, dailyRate, days)
			balance = balance.Add(interest)
			rows = append(rows, TimelineRow{
				Date:                today,
				DaysSincePrevious:   days,
				InterestAccrued:     interest,
				RunningBalanceAfter: balance,
			})
		}
	}

	return rows
}

// accrue computes simple interest: principal * dailyRate * days.
func accrue(principal Amount, dailyRate decimal.Decimal, days int) Amount {
	return Amount{value: principal.value.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))}
}
