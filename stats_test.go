package lendbook

import (
	"reflect"
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))
	ledger.Insert(payment("2023-02-01", 100))
	ledger.Insert(loan("2023-02-15", 500))

	timeline := ledger.ComputeTimeline(0.0825, D("2023-03-01"))
	s := ComputeStatistics(timeline)

	if s.LoanCount != 2 || s.PaymentCount != 1 {
		t.Errorf("counts = %d loans, %d payments, want 2 and 1", s.LoanCount, s.PaymentCount)
	}
	if s.TotalLoaned.String() != "1500.00" {
		t.Errorf("TotalLoaned = %s, want 1500.00", s.TotalLoaned)
	}
	if s.TotalPayments.String() != "100.00" {
		t.Errorf("TotalPayments = %s, want 100.00", s.TotalPayments)
	}
	if s.DaysActive != 45 {
		t.Errorf("DaysActive = %d, want 45", s.DaysActive)
	}
	if !s.TotalInterest.IsPositive() {
		t.Errorf("TotalInterest = %s, want > 0", s.TotalInterest)
	}
	// the current balance folds in the trailing row's interest
	last := timeline[len(timeline)-1]
	if !last.IsSynthetic() {
		t.Fatal("expected a trailing interest row")
	}
	if !s.CurrentBalance.Equal(last.RunningBalanceAfter) {
		t.Errorf("CurrentBalance = %s, want %s", s.CurrentBalance, last.RunningBalanceAfter)
	}
	if s.EffectiveRate <= 0 {
		t.Errorf("EffectiveRate = %s, want > 0", s.EffectiveRate)
	}
}

func TestComputeStatistics_Deterministic(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))
	ledger.Insert(payment("2023-02-01", 100))

	today := D("2023-06-01")
	first := ComputeStatistics(ledger.ComputeTimeline(0.0825, today))
	second := ComputeStatistics(ledger.ComputeTimeline(0.0825, today))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two computations on an unchanged ledger differ:\n%+v\n%+v", first, second)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	s := ComputeStatistics(nil)
	if s.LoanCount != 0 || s.PaymentCount != 0 || s.DaysActive != 0 {
		t.Errorf("empty statistics = %+v, want all zero", s)
	}
	if !s.EffectiveRate.Equal(0) {
		t.Errorf("EffectiveRate = %s, want 0", s.EffectiveRate)
	}
	if !s.CurrentBalance.IsZero() {
		t.Errorf("CurrentBalance = %s, want 0", s.CurrentBalance)
	}
}

func TestComputeStatistics_NoLoansMeansZeroRate(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(payment("2023-01-01", 100))

	s := ComputeStatistics(ledger.ComputeTimeline(0.0825, D("2023-06-01")))
	if !s.EffectiveRate.Equal(0) {
		t.Errorf("EffectiveRate = %s, want 0 when nothing was loaned", s.EffectiveRate)
	}
}

func TestComputeStatistics_SingleTransactionSpansNoDays(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 100))

	s := ComputeStatistics(ledger.ComputeTimeline(0.0825, D("2023-01-01")))
	if s.DaysActive != 0 {
		t.Errorf("DaysActive = %d, want 0 for a single transaction", s.DaysActive)
	}
}
