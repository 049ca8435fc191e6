package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the request-to-pay outcome as reported by the provider.
//
// A transaction always starts PENDING and moves at most once, to SUCCESSFUL or FAILED.

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

// Failure reasons reported on FAILED transactions.
const (
	ReasonPayerNotFound     = "PAYER_NOT_FOUND"
	ReasonInsufficientFunds = "INSUFFICIENT_FUNDS"
	ReasonRejected          = "APPROVAL_REJECTED"
	ReasonExpired           = "EXPIRED"
	ReasonInternalError     = "INTERNAL_PROCESSING_ERROR"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccessful || s == TransactionStatusFailed
}

// CanTransition reports whether a transaction may move from one status to another.
func CanTransition(from, to TransactionStatus) bool {
	return from == TransactionStatusPending && to.IsTerminal()
}

// Transaction is one request-to-pay against a payer's wallet.
//
// ReferenceID is generated by the gateway and is the only lookup key. ExternalID is the
// caller's business reference and is carried through untouched.

type Transaction struct {
	ReferenceID            string            `json:"reference_id"`
	ExternalID             string            `json:"external_id"`
	Amount                 decimal.Decimal   `json:"amount"`
	Currency               string            `json:"currency"`
	Payer                  string            `json:"payer"`
	Status                 TransactionStatus `json:"status"`
	Reason                 string            `json:"reason,omitempty"`
	FinancialTransactionID string            `json:"financial_transaction_id,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	CompletedAt            *time.Time        `json:"completed_at,omitempty"`
}

// Complete moves a PENDING transaction to a terminal status. It is a no-op
// returning false when the transition is not allowed.
func (t *Transaction) Complete(status TransactionStatus, reason, financialTransactionID string, at time.Time) bool {
	if !CanTransition(t.Status, status) {
		return false
	}
	t.Status = status
	if status == TransactionStatusFailed {
		t.Reason = reason
	} else {
		t.Reason = ""
	}
	t.FinancialTransactionID = financialTransactionID
	completed := at
	t.CompletedAt = &completed
	return true
}

// AccountHolder is the result of a payer validation. It is computed per call.
type AccountHolder struct {
	Payer    string `json:"payer"`
	IsActive bool   `json:"is_active"`
}

// Balance is the collection account balance.
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Currency  string          `json:"currency"`
}

// AccessToken is an upstream bearer credential. Never persisted.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

func (t AccessToken) Valid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}
