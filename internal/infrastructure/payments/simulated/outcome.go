package simulated

import (
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	PendingSuffix = "999"
	DwellTime     = 5 * time.Second
)

// DefaultPayers is the built-in payer registry: true marks an active wallet,
// false a wallet the provider reports as unknown.
func DefaultPayers() map[string]bool {
	return map[string]bool{
		"250788123456": true,
		"250788654321": true,
		"250722000001": true,
		"256772123456": true,
		"250700000000": false,
		"250700000001": false,
	}
}

// Decision is what the simulator decided for a request: the terminal outcome and how
// long after creation it becomes observable.
type Decision struct {
	Outcome entities.Outcome
	Dwell   time.Duration
}

// OutcomeSimulator maps (payer, amount) to a deterministic outcome.
type OutcomeSimulator struct {
	payers  map[string]bool
	ceiling decimal.Decimal
}

func NewOutcomeSimulator(payers map[string]bool, ceiling decimal.Decimal) OutcomeSimulator {
	copied := make(map[string]bool, len(payers))
	for k, v := range payers {
		copied[k] = v
	}
	return OutcomeSimulator{payers: copied, ceiling: ceiling}
}

// Decide applies, in order:
//   - payer ending in PendingSuffix: SUCCESSFUL after DwellTime
//   - payer listed inactive: FAILED PAYER_NOT_FOUND
//   - amount above the ceiling: FAILED INSUFFICIENT_FUNDS
//   - payer listed active: SUCCESSFUL
//   - anything else: FAILED PAYER_NOT_FOUND
func (s OutcomeSimulator) Decide(payer string, amount decimal.Decimal) Decision {
	if strings.HasSuffix(payer, PendingSuffix) {
		return Decision{Outcome: entities.Outcome{Status: entities.TransactionStatusSuccessful}, Dwell: DwellTime}
	}

	active, listed := s.payers[payer]
	switch {
	case listed && !active:
		return failed(entities.ReasonPayerNotFound)
	case amount.GreaterThan(s.ceiling):
		return failed(entities.ReasonInsufficientFunds)
	case listed && active:
		return Decision{Outcome: entities.Outcome{Status: entities.TransactionStatusSuccessful}}
	default:
		return failed(entities.ReasonPayerNotFound)
	}
}

// IsActive reports whether validation of the payer should succeed.
func (s OutcomeSimulator) IsActive(payer string) bool {
	if strings.HasSuffix(payer, PendingSuffix) {
		return true
	}
	return s.payers[payer]
}

func failed(reason string) Decision {
	return Decision{Outcome: entities.Outcome{Status: entities.TransactionStatusFailed, Reason: reason}}
}
