package response

import (
	"time"

	"momo_gateway/internal/domain/entities"
)

type TransactionResponse struct {
	ReferenceID            string     `json:"reference_id"`
	ExternalID             string     `json:"external_id"`
	Amount                 string     `json:"amount"`
	Currency               string     `json:"currency"`
	Payer                  string     `json:"payer"`
	Status                 string     `json:"status"`
	Reason                 string     `json:"reason,omitempty"`
	FinancialTransactionID string     `json:"financial_transaction_id,omitempty"`
	CreatedAt              *time.Time `json:"created_at,omitempty"`
	// CompletedAt is only known for simulated transactions.
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	res := TransactionResponse{
		ReferenceID:            tx.ReferenceID,
		ExternalID:             tx.ExternalID,
		Amount:                 tx.Amount.String(),
		Currency:               tx.Currency,
		Payer:                  tx.Payer,
		Status:                 string(tx.Status),
		Reason:                 tx.Reason,
		FinancialTransactionID: tx.FinancialTransactionID,
		CompletedAt:            tx.CompletedAt,
	}
	if !tx.CreatedAt.IsZero() {
		created := tx.CreatedAt
		res.CreatedAt = &created
	}
	return res
}

type AccountHolderResponse struct {
	Payer    string `json:"payer"`
	IsActive bool   `json:"is_active"`
}

func FromAccountHolder(h entities.AccountHolder) AccountHolderResponse {
	return AccountHolderResponse{Payer: h.Payer, IsActive: h.IsActive}
}

type BalanceResponse struct {
	Available string `json:"available"`
	Currency  string `json:"currency"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{Available: b.Available.String(), Currency: b.Currency}
}
