package lendbook

import (
	"iter"
	"sort"
	"sync"
)

// Ledger owns the ordered collection of accepted transactions.
//
// Transactions are always kept in chronological order; entries sharing a
// date keep their original relative insertion order, and that order is
// never disturbed by later mutations (the sort is stable).
//
// A single lock makes every mutation and every read-compute pass mutually
// exclusive: no reader ever observes the ledger mid-sort or mid-replace.
type Ledger struct {
	mu           sync.Mutex
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

// Insert adds a validated transaction to the ledger and restores the
// chronological order. The ledger does not re-validate: the caller is
// responsible for having run the transaction through a Validator first.
func (l *Ledger) Insert(tx Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, tx)
	l.stableSort()
}

// Remove deletes the transaction with the given id. It returns a
// *NotFoundError if no entry has that id, and the ledger is left unchanged.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Replace substitutes the whole transaction list, used for backup restore
// and clear-all. The substitution is all-or-nothing: the given set becomes
// the ledger in one step, sorted chronologically.
func (l *Ledger) Replace(txs []Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = make([]Transaction, len(txs))
	copy(l.transactions, txs)
	l.stableSort()
}

// Transactions returns an iterator over a snapshot of the ledger in
// chronological order. The snapshot is taken under the lock, so the caller
// may mutate the ledger while iterating.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	snapshot := l.snapshot()
	return func(yield func(int, Transaction) bool) {
		for i, tx := range snapshot {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// snapshot returns a copy of the transaction list taken under the lock.
func (l *Ledger) snapshot() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	snapshot := make([]Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	return snapshot
}

// stableSort sorts the ledger by transaction date. The sort is stable,
// meaning transactions on the same day maintain their original relative
// order. The caller must hold the lock.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}
