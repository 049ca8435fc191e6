package simulated

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gateway implements the payment gateway contract without any network.
//
// Transactions are written PENDING with their decided outcome; a status check promotes
// them once their dwell time has elapsed. Everything lives in the store and is lost on restart.
type Gateway struct {
	store    interfaces.ITransactionStore
	sim      OutcomeSimulator
	log      *zap.SugaredLogger
	latency  time.Duration
	currency string
	now      func() time.Time
	newID    func() string
}

var _ interfaces.IPaymentGateway = (*Gateway)(nil)

type Option func(*Gateway)

// WithLatency sets the artificial delay applied to every operation.
func WithLatency(d time.Duration) Option {
	return func(g *Gateway) { g.latency = d }
}

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithCurrency sets the currency reported by GetAccountBalance.
func WithCurrency(currency string) Option {
	return func(g *Gateway) { g.currency = strings.ToUpper(currency) }
}

func NewGateway(store interfaces.ITransactionStore, sim OutcomeSimulator, log *zap.SugaredLogger, opts ...Option) *Gateway {
	g := &Gateway{
		store:    store,
		sim:      sim,
		log:      log,
		currency: "EUR",
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) ValidateAccountHolder(ctx context.Context, payer string) (entities.AccountHolder, error) {
	payer = entities.NormalizePayer(payer)
	if err := entities.ValidatePayer(payer); err != nil {
		return entities.AccountHolder{}, err
	}
	if err := g.wait(ctx); err != nil {
		return entities.AccountHolder{}, err
	}
	if !g.sim.IsActive(payer) {
		g.log.Infow("[payment][simulated] payer not active", "payer", payer)
		return entities.AccountHolder{}, entities.NewNotFoundError("payer " + payer + " is not an active account holder")
	}
	return entities.AccountHolder{Payer: payer, IsActive: true}, nil
}

func (g *Gateway) RequestToPay(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return entities.Transaction{}, err
	}
	if err := g.wait(ctx); err != nil {
		return entities.Transaction{}, err
	}

	now := g.now().UTC()
	decision := g.sim.Decide(req.Payer, req.Amount)
	rec := entities.SimulatedTransaction{
		Transaction: entities.Transaction{
			ReferenceID: g.newID(),
			ExternalID:  req.ExternalID,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Payer:       req.Payer,
			Status:      entities.TransactionStatusPending,
			CreatedAt:   now,
		},
		Outcome:    decision.Outcome,
		EligibleAt: now.Add(decision.Dwell),
	}
	if err := g.store.Insert(rec); err != nil {
		g.log.Errorw("[payment][simulated] store insert failed", "reference_id", rec.Transaction.ReferenceID, "err", err)
		return entities.Transaction{}, err
	}

	g.log.Infow("[payment][simulated] request-to-pay accepted",
		"reference_id", rec.Transaction.ReferenceID,
		"external_id", req.ExternalID,
		"payer", req.Payer,
		"amount", req.Amount.String(),
		"outcome", decision.Outcome.Status,
		"dwell", decision.Dwell,
	)
	return rec.Transaction, nil
}

func (g *Gateway) CheckTransactionStatus(ctx context.Context, referenceID string) (entities.Transaction, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Transaction{}, entities.NewValidationError("reference id is required")
	}
	if err := g.wait(ctx); err != nil {
		return entities.Transaction{}, err
	}

	// Terminal records are immutable; serve them under the read lock.
	current, err := g.store.Get(referenceID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if current.Transaction.Status.IsTerminal() {
		return current.Transaction, nil
	}

	rec, err := g.store.Update(referenceID, func(rec *entities.SimulatedTransaction) {
		now := g.now().UTC()
		if rec.Promote(now, strconv.FormatInt(now.UnixNano(), 10)) {
			g.log.Infow("[payment][simulated] transaction completed", "reference_id", referenceID, "status", rec.Transaction.Status, "reason", rec.Transaction.Reason)
		}
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return rec.Transaction, nil
}

// GetAccountBalance reports the sum of successful transactions in the configured currency.
func (g *Gateway) GetAccountBalance(ctx context.Context) (entities.Balance, error) {
	if err := g.wait(ctx); err != nil {
		return entities.Balance{}, err
	}
	available := decimal.Zero
	for _, rec := range g.store.List() {
		tx := rec.Transaction
		if tx.Status == entities.TransactionStatusSuccessful && tx.Currency == g.currency {
			available = available.Add(tx.Amount)
		}
	}
	return entities.Balance{Available: available, Currency: g.currency}, nil
}

func (g *Gateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return entities.Transaction{}, err
	}
	if _, err := g.ValidateAccountHolder(ctx, req.Payer); err != nil {
		return entities.Transaction{}, err
	}
	return g.RequestToPay(ctx, req)
}

// Transactions lists every stored transaction. Test harnesses only.
func (g *Gateway) Transactions() []entities.Transaction {
	recs := g.store.List()
	out := make([]entities.Transaction, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Transaction)
	}
	return out
}

// Reset empties the store. Test harnesses only.
func (g *Gateway) Reset() {
	g.store.Reset()
}

func (g *Gateway) wait(ctx context.Context) error {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
		}
	}

	switch err := ctx.Err(); {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return entities.NewUpstreamTimeoutError("simulated provider did not respond in time", err)
	default:
		return entities.NewUpstreamError("request canceled", 0, err)
	}
}
