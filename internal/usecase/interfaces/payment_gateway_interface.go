package interfaces

import (
	"context"
	"momo_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// IPaymentGateway abstracts the mobile-money provider.
//
// The live and the simulated implementations honor the same contract, including the
// error kinds in entities, so call sites cannot tell which one is behind it.
type IPaymentGateway interface {
	ValidateAccountHolder(ctx context.Context, payer string) (entities.AccountHolder, error)
	RequestToPay(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error)
	CheckTransactionStatus(ctx context.Context, referenceID string) (entities.Transaction, error)
	GetAccountBalance(ctx context.Context) (entities.Balance, error)
	// ProcessPayment validates the payer and then initiates the payment. It does not poll.
	ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error)
}

// ITokenProvider owns the upstream access token.
type ITokenProvider interface {
	GetAccessToken(ctx context.Context) (entities.AccessToken, error)
	// Invalidate drops any cached token so the next call fetches a fresh one.
	Invalidate()
}
