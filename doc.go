// Package lendbook tracks a running balance of money lent to one borrower.
//
// The ledger is a chronological list of loan and payment transactions.
// Simple daily interest accrues on any positive outstanding balance and is
// folded into the balance at each transaction date, and once more up to
// "today". Everything derived (timeline, statistics) is recomputed from the
// ledger on every read; nothing is cached.
package lendbook
