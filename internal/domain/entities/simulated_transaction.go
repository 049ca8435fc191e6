package entities

import "time"

// Outcome is the terminal result the simulator decided for a transaction.
type Outcome struct {
	Status TransactionStatus
	Reason string
}

// SimulatedTransaction is the record kept by the in-memory store.
//
// The transaction is stored PENDING together with the outcome it will be promoted to and
// the earliest instant the promotion may be observed. Promotion happens on read.

type SimulatedTransaction struct {
	Transaction Transaction
	Outcome     Outcome
	EligibleAt  time.Time
}

// Promote applies the decided outcome when now has reached EligibleAt.
// It returns true when the record changed.
func (s *SimulatedTransaction) Promote(now time.Time, financialTransactionID string) bool {
	if s.Transaction.Status.IsTerminal() || now.Before(s.EligibleAt) {
		return false
	}
	ftid := ""
	if s.Outcome.Status == TransactionStatusSuccessful {
		ftid = financialTransactionID
	}
	return s.Transaction.Complete(s.Outcome.Status, s.Outcome.Reason, ftid, now)
}
