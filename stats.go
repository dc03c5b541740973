package lendbook

import "github.com/shopspring/decimal"

// Statistics is an aggregate view of a computed timeline. It is derived,
// never persisted, and always recomputed from the current ledger.
type Statistics struct {
	CurrentBalance Amount // final running balance, trailing interest included
	TotalLoaned    Amount
	TotalPayments  Amount
	TotalInterest  Amount // includes the synthetic trailing row, if any
	LoanCount      int
	PaymentCount   int
	DaysActive     int     // whole days from first to last transaction date
	EffectiveRate  Percent // totalInterest / totalLoaned, as a percentage
}

// ComputeStatistics aggregates a timeline into summary figures. It is a
// pure function of its input: no state is retained between calls, and
// identical input always yields identical output.
func ComputeStatistics(timeline []TimelineRow) Statistics {
	var s Statistics
	var firstDate, lastDate Date

	for _, row := range timeline {
		s.TotalInterest = s.TotalInterest.Add(row.InterestAccrued)
		s.CurrentBalance = row.RunningBalanceAfter
		if row.IsSynthetic() {
			continue
		}
		tx := row.Transaction
		switch tx.Type {
		case LoanOut:
			s.TotalLoaned = s.TotalLoaned.Add(tx.Amount)
			s.LoanCount++
		case Payment:
			s.TotalPayments = s.TotalPayments.Add(tx.Amount)
			s.PaymentCount++
		}
		if firstDate.IsZero() {
			firstDate = tx.Date
		}
		lastDate = tx.Date
	}

	if !firstDate.IsZero() {
		// A single transaction spans no interval, so this is 0.
		s.DaysActive = DaysBetween(firstDate, lastDate)
	}

	if s.TotalLoaned.IsPositive() {
		rate := s.TotalInterest.value.Div(s.TotalLoaned.value).Mul(decimal.NewFromInt(100))
		s.EffectiveRate = Percent(rate.InexactFloat64())
	}
	return s
}
