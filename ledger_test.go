package lendbook

import (
	"errors"
	"testing"
)

func ids(l *Ledger) []string {
	var out []string
	for _, tx := range l.Transactions() {
		out = append(out, tx.ID)
	}
	return out
}

func TestLedger_InsertKeepsChronologicalOrder(t *testing.T) {
	ledger := NewLedger()
	late := loan("2023-03-01", 10)
	early := loan("2023-01-01", 10)
	middle := payment("2023-02-01", 5)

	ledger.Insert(late)
	ledger.Insert(early)
	ledger.Insert(middle)

	want := []string{early.ID, middle.ID, late.ID}
	got := ids(ledger)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestLedger_SameDateOrderIsStable(t *testing.T) {
	ledger := NewLedger()
	a := loan("2023-02-01", 100)
	b := loan("2023-02-01", 200)
	ledger.Insert(a)
	ledger.Insert(b)

	check := func(stage string) {
		t.Helper()
		var got []string
		for _, tx := range ledger.Transactions() {
			if tx.Date == D("2023-02-01") {
				got = append(got, tx.ID)
			}
		}
		if len(got) != 2 || got[0] != a.ID || got[1] != b.ID {
			t.Errorf("%s: same-date order = %v, want [%s %s]", stage, got, a.ID, b.ID)
		}
	}
	check("after initial inserts")

	// unrelated mutations must not reorder a and b
	before := loan("2023-01-15", 1)
	after := payment("2023-03-15", 1)
	ledger.Insert(after)
	ledger.Insert(before)
	check("after unrelated inserts")

	if err := ledger.Remove(before.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	check("after unrelated removal")
}

func TestLedger_Remove(t *testing.T) {
	ledger := NewLedger()
	tx := loan("2023-01-01", 10)
	ledger.Insert(tx)

	if err := ledger.Remove(tx.ID); err != nil {
		t.Fatalf("Remove(%s): %v", tx.ID, err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger length = %d, want 0", ledger.Len())
	}
}

func TestLedger_RemoveNotFound(t *testing.T) {
	ledger := NewLedger()
	tx := loan("2023-01-01", 10)
	ledger.Insert(tx)

	err := ledger.Remove("no-such-id")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Remove(no-such-id) = %v, want *NotFoundError", err)
	}
	if nf.ID != "no-such-id" {
		t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "no-such-id")
	}
	// the ledger is unchanged on failure
	if ledger.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", ledger.Len())
	}
}

func TestLedger_Replace(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(loan("2023-01-01", 10))

	replacement := []Transaction{
		loan("2024-02-01", 30),
		loan("2024-01-01", 20),
	}
	ledger.Replace(replacement)

	if ledger.Len() != 2 {
		t.Fatalf("ledger length = %d, want 2", ledger.Len())
	}
	if got := ledger.OldestTransactionDate(); got != D("2024-01-01") {
		t.Errorf("OldestTransactionDate = %s, want 2024-01-01", got)
	}
	if got := ledger.NewestTransactionDate(); got != D("2024-02-01") {
		t.Errorf("NewestTransactionDate = %s, want 2024-02-01", got)
	}

	// clear-all is a replace with nothing
	ledger.Replace(nil)
	if ledger.Len() != 0 {
		t.Errorf("ledger length after clear = %d, want 0", ledger.Len())
	}
}
