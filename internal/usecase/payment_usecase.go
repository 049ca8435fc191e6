package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPollDeadlineExceeded = errors.New("payment still pending at poll deadline")
)

// PollPolicy bounds how a caller waits for a transaction to reach a terminal status.
type PollPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	Timeout         time.Duration
}

func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		InitialInterval: time.Second,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
		Timeout:         60 * time.Second,
	}
}

func (p PollPolicy) withDefaults() PollPolicy {
	def := DefaultPollPolicy()
	if p.InitialInterval <= 0 {
		p.InitialInterval = def.InitialInterval
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = def.MaxInterval
	}
	if p.MaxInterval < p.InitialInterval {
		p.MaxInterval = p.InitialInterval
	}
	if p.Multiplier < 1 {
		p.Multiplier = def.Multiplier
	}
	if p.Timeout <= 0 {
		p.Timeout = def.Timeout
	}
	return p
}

// IPaymentUseCase is the checkout side of the gateway: validate the payer, initiate the
// payment and follow it until it settles. Ticket state is reconciled by the caller.
type IPaymentUseCase interface {
	ValidatePayer(ctx context.Context, payer string) (entities.AccountHolder, error)
	StartPayment(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error)
	GetPaymentStatus(ctx context.Context, referenceID string) (entities.Transaction, error)
	AwaitCompletion(ctx context.Context, referenceID string, policy PollPolicy) (entities.Transaction, error)
	GetBalance(ctx context.Context) (entities.Balance, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	log     *zap.SugaredLogger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, log *zap.SugaredLogger) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, log: log}
}

func (u *PaymentUseCase) ValidatePayer(ctx context.Context, payer string) (entities.AccountHolder, error) {
	if u.gateway == nil {
		return entities.AccountHolder{}, ErrGatewayNotConfigured
	}
	return u.gateway.ValidateAccountHolder(ctx, payer)
}

func (u *PaymentUseCase) StartPayment(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	u.log.Infow("[payment][usecase] start payment", "external_id", req.ExternalID, "amount", req.Amount.String(), "currency", req.Currency)
	if u.gateway == nil {
		u.log.Errorw("[payment][usecase] gateway not configured", "external_id", req.ExternalID)
		return entities.Transaction{}, ErrGatewayNotConfigured
	}

	tx, err := u.gateway.ProcessPayment(ctx, req)
	if err != nil {
		u.log.Warnw("[payment][usecase] start payment failed", "external_id", req.ExternalID, "kind", entities.KindOf(err), "err", err)
		return entities.Transaction{}, err
	}
	u.log.Infow("[payment][usecase] payment initiated", "external_id", tx.ExternalID, "reference_id", tx.ReferenceID, "status", tx.Status)
	return tx, nil
}

func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, referenceID string) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrGatewayNotConfigured
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Transaction{}, entities.NewValidationError("reference id is required")
	}
	return u.gateway.CheckTransactionStatus(ctx, referenceID)
}

// AwaitCompletion polls the gateway with exponential backoff until the transaction is
// terminal or policy.Timeout elapses. Transient upstream failures are retried within the
// deadline; any other error ends the wait. On deadline the last snapshot is returned with
// ErrPollDeadlineExceeded.
func (u *PaymentUseCase) AwaitCompletion(ctx context.Context, referenceID string, policy PollPolicy) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrGatewayNotConfigured
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Transaction{}, entities.NewValidationError("reference id is required")
	}
	policy = policy.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, policy.Timeout)
	defer cancel()

	var last entities.Transaction
	interval := policy.InitialInterval
	for attempt := 1; ; attempt++ {
		tx, err := u.gateway.CheckTransactionStatus(ctx, referenceID)
		switch {
		case err == nil:
			last = tx
			if tx.Status.IsTerminal() {
				u.log.Infow("[payment][usecase] payment settled", "reference_id", referenceID, "status", tx.Status, "reason", tx.Reason, "attempts", attempt)
				return tx, nil
			}
		case isTransient(err) && ctx.Err() == nil:
			u.log.Warnw("[payment][usecase] transient status failure; will retry", "reference_id", referenceID, "attempt", attempt, "err", err)
		case ctx.Err() != nil:
			return last, ErrPollDeadlineExceeded
		default:
			return entities.Transaction{}, err
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			u.log.Infow("[payment][usecase] poll deadline reached", "reference_id", referenceID, "attempts", attempt)
			return last, ErrPollDeadlineExceeded
		case <-timer.C:
		}

		interval = time.Duration(float64(interval) * policy.Multiplier)
		if interval > policy.MaxInterval {
			interval = policy.MaxInterval
		}
	}
}

func (u *PaymentUseCase) GetBalance(ctx context.Context) (entities.Balance, error) {
	if u.gateway == nil {
		return entities.Balance{}, ErrGatewayNotConfigured
	}
	return u.gateway.GetAccountBalance(ctx)
}

func isTransient(err error) bool {
	return errors.Is(err, entities.ErrUpstream) || errors.Is(err, entities.ErrUpstreamTimeout)
}
