package lendbook

// duplicateTolerance is the amount slack below which two transactions on the
// same day with the same type are reported as near-duplicates.
var duplicateTolerance = A(0.01)

// FindDuplicate scans the ledger for an existing transaction with the same
// date, the same type, and an amount within one cent of the candidate.
// Only the first match is reported even if several exist. The result is
// purely advisory and never blocks acceptance.
func FindDuplicate(candidate Transaction, ledger *Ledger) (Transaction, bool) {
	for _, tx := range ledger.Transactions() {
		if tx.Date != candidate.Date || tx.Type != candidate.Type {
			continue
		}
		if tx.Amount.Sub(candidate.Amount).Abs().LessThan(duplicateTolerance) {
			return tx, true
		}
	}
	return Transaction{}, false
}
