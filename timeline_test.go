package lendbook

import "testing"

func TestComputeTimeline_SingleLoan(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))

	// the reference date equals the transaction date, so no trailing row
	rows := ledger.ComputeTimeline(0.0825, D("2023-01-01"))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.DaysSincePrevious != 0 {
		t.Errorf("DaysSincePrevious = %d, want 0", row.DaysSincePrevious)
	}
	if !row.InterestAccrued.IsZero() {
		t.Errorf("InterestAccrued = %s, want 0", row.InterestAccrued)
	}
	if row.RunningBalanceAfter.String() != "1000.00" {
		t.Errorf("RunningBalanceAfter = %s, want 1000.00", row.RunningBalanceAfter)
	}
}

func TestComputeTimeline_AccruesOverGap(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))
	ledger.Insert(payment("2023-02-01", 100))

	rows := ledger.ComputeTimeline(0.0825, D("2023-02-01"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	second := rows[1]
	if second.DaysSincePrevious != 31 {
		t.Errorf("DaysSincePrevious = %d, want 31", second.DaysSincePrevious)
	}
	// 1000 * 0.0825/365 * 31 ≈ 7.0068
	if !approx(second.InterestAccrued, 7.0068) {
		t.Errorf("InterestAccrued = %s, want ≈7.0068", second.InterestAccrued)
	}
	// 1000 + 7.0068 - 100 ≈ 907.0068
	if !approx(second.RunningBalanceAfter, 907.0068) {
		t.Errorf("RunningBalanceAfter = %s, want ≈907.0068", second.RunningBalanceAfter)
	}
}

func TestComputeTimeline_TrailingInterestRow(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))

	rows := ledger.ComputeTimeline(0.0825, D("2023-01-11"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (transaction + trailing interest)", len(rows))
	}
	trailing := rows[1]
	if !trailing.IsSynthetic() {
		t.Fatal("trailing row must have no underlying transaction")
	}
	if trailing.Date != D("2023-01-11") {
		t.Errorf("trailing row date = %s, want 2023-01-11", trailing.Date)
	}
	if trailing.DaysSincePrevious != 10 {
		t.Errorf("DaysSincePrevious = %d, want 10", trailing.DaysSincePrevious)
	}
	// 1000 * 0.0825/365 * 10 ≈ 2.2603
	if !approx(trailing.InterestAccrued, 2.2603) {
		t.Errorf("InterestAccrued = %s, want ≈2.2603", trailing.InterestAccrued)
	}
	if !approx(trailing.RunningBalanceAfter, 1002.2603) {
		t.Errorf("RunningBalanceAfter = %s, want ≈1002.2603", trailing.RunningBalanceAfter)
	}
}

func TestComputeTimeline_NoInterestAtOrBelowZero(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 100))
	ledger.Insert(payment("2023-01-10", 200)) // overpayment, balance goes negative
	ledger.Insert(loan("2023-02-10", 50))

	rows := ledger.ComputeTimeline(0.0825, D("2023-03-01"))

	// row 1: interest accrued over the first 9 days while the balance was positive
	if !rows[1].InterestAccrued.IsPositive() {
		t.Errorf("interest over the positive gap = %s, want > 0", rows[1].InterestAccrued)
	}
	// row 2: the balance was negative over the gap, no interest accrues
	if !rows[2].InterestAccrued.IsZero() {
		t.Errorf("interest over the negative gap = %s, want 0", rows[2].InterestAccrued)
	}
	// the final balance is still negative, so no trailing row either
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3 (no trailing row on non-positive balance)", len(rows))
	}
}

func TestComputeTimeline_NegativeFinalBalanceHasNoTrailingRow(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 100))
	ledger.Insert(payment("2023-01-02", 500))

	rows := ledger.ComputeTimeline(0.0825, D("2023-06-01"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[1].RunningBalanceAfter.IsNegative() {
		t.Errorf("final balance = %s, want negative", rows[1].RunningBalanceAfter)
	}
}

func TestComputeTimeline_EmptyLedger(t *testing.T) {
	ledger := NewLedger()
	if rows := ledger.ComputeTimeline(0.0825, Today()); len(rows) != 0 {
		t.Errorf("got %d rows for an empty ledger, want 0", len(rows))
	}
}

func TestComputeTimeline_OutOfOrderDatesYieldZeroDays(t *testing.T) {
	// Two entries on the same date: the gap is zero days, zero interest.
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 1000))
	ledger.Insert(loan("2023-01-01", 500))

	rows := ledger.ComputeTimeline(0.0825, D("2023-01-01"))
	if rows[1].DaysSincePrevious != 0 || !rows[1].InterestAccrued.IsZero() {
		t.Errorf("same-day gap: days=%d interest=%s, want 0 and 0",
			rows[1].DaysSincePrevious, rows[1].InterestAccrued)
	}
}
