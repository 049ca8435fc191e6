package simulated

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"momo_gateway/internal/adapter/persistence/repository"
	"momo_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestGateway(t *testing.T, opts ...Option) (*Gateway, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	sim := NewOutcomeSimulator(DefaultPayers(), decimal.NewFromInt(1000000))
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	g := NewGateway(repository.NewTransactionMemoryRepository(), sim, zap.NewNop().Sugar(), opts...)
	return g, clock
}

func paymentRequest(payer string, amount int64) entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:     decimal.NewFromInt(amount),
		Currency:   "EUR",
		Payer:      payer,
		ExternalID: "ticket-1",
	}
}

func TestGateway_RequestToPay_ReturnsPendingWithFreshReference(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, payer := range []string{"250788123456", "250700000000", "250788000999", "250711111111"} {
		tx, err := g.RequestToPay(ctx, paymentRequest(payer, 100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.TransactionStatusPending || tx.CompletedAt != nil {
			t.Fatalf("expected PENDING snapshot, got %+v", tx)
		}
		if seen[tx.ReferenceID] {
			t.Fatalf("reference id reused: %s", tx.ReferenceID)
		}
		seen[tx.ReferenceID] = true
	}
	if len(g.Transactions()) != 4 {
		t.Fatalf("expected 4 stored transactions, got %d", len(g.Transactions()))
	}
}

func TestGateway_RequestToPay_ValidationBeforeStore(t *testing.T) {
	g, _ := newTestGateway(t)

	cases := map[string]entities.PaymentRequest{
		"zero amount":      paymentRequest("250788123456", 0),
		"negative amount":  paymentRequest("250788123456", -5),
		"missing currency": {Amount: decimal.NewFromInt(1), Payer: "250788123456", ExternalID: "x"},
		"missing payer":    {Amount: decimal.NewFromInt(1), Currency: "EUR", ExternalID: "x"},
		"missing external": {Amount: decimal.NewFromInt(1), Currency: "EUR", Payer: "250788123456"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := g.RequestToPay(context.Background(), req); !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(g.Transactions()) != 0 {
		t.Fatalf("invalid requests must not reach the store")
	}
}

func TestGateway_SuccessfulScenario(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	tx, err := g.RequestToPay(ctx, paymentRequest("250788123456", 50000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.TransactionStatusSuccessful || got.FinancialTransactionID == "" || got.CompletedAt == nil {
		t.Fatalf("expected SUCCESSFUL, got %+v", got)
	}

	again, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Status != got.Status || again.Reason != got.Reason || again.FinancialTransactionID != got.FinancialTransactionID || !again.CompletedAt.Equal(*got.CompletedAt) {
		t.Fatalf("terminal reads differ: %+v vs %+v", got, again)
	}
}

func TestGateway_InactivePayerScenario(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	tx, err := g.RequestToPay(ctx, paymentRequest("250700000000", 50000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.TransactionStatusFailed || got.Reason != entities.ReasonPayerNotFound || got.FinancialTransactionID != "" {
		t.Fatalf("expected FAILED PAYER_NOT_FOUND, got %+v", got)
	}
}

func TestGateway_PendingScenario(t *testing.T) {
	g, clock := newTestGateway(t)
	ctx := context.Background()

	tx, err := g.RequestToPay(ctx, paymentRequest("250788000999", 1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.Advance(DwellTime - time.Millisecond)
	early, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if early.Status != entities.TransactionStatusPending {
		t.Fatalf("expected PENDING before dwell time, got %s", early.Status)
	}

	clock.Advance(time.Millisecond)
	late, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if late.Status != entities.TransactionStatusSuccessful {
		t.Fatalf("expected SUCCESSFUL after dwell time, got %s", late.Status)
	}

	clock.Advance(time.Hour)
	for i := 0; i < 3; i++ {
		again, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
		if err != nil || again.Status != entities.TransactionStatusSuccessful || again.FinancialTransactionID != late.FinancialTransactionID {
			t.Fatalf("terminal status changed: %+v %v", again, err)
		}
	}
}

func TestGateway_ConcurrentPromotionIsMonotonic(t *testing.T) {
	g, clock := newTestGateway(t)
	ctx := context.Background()

	tx, err := g.RequestToPay(ctx, paymentRequest("250788000999", 1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.Advance(DwellTime)

	var wg sync.WaitGroup
	results := make(chan entities.Transaction, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := g.CheckTransactionStatus(ctx, tx.ReferenceID)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- got
		}()
	}
	wg.Wait()
	close(results)

	ftid := ""
	for got := range results {
		if got.Status != entities.TransactionStatusSuccessful {
			t.Fatalf("expected SUCCESSFUL, got %s", got.Status)
		}
		if ftid == "" {
			ftid = got.FinancialTransactionID
		}
		if got.FinancialTransactionID != ftid {
			t.Fatalf("promotion applied more than once")
		}
	}
}

func TestGateway_UnknownReference(t *testing.T) {
	g, _ := newTestGateway(t)

	if _, err := g.CheckTransactionStatus(context.Background(), "does-not-exist"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := g.CheckTransactionStatus(context.Background(), " "); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGateway_ValidateAccountHolder(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	holder, err := g.ValidateAccountHolder(ctx, "+250 788 123456")
	if err != nil || !holder.IsActive || holder.Payer != "250788123456" {
		t.Fatalf("unexpected result: %+v %v", holder, err)
	}
	for _, payer := range []string{"250700000000", "250711111111"} {
		if _, err := g.ValidateAccountHolder(ctx, payer); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %s, got %v", payer, err)
		}
	}
}

func TestGateway_ProcessPayment(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	if _, err := g.ProcessPayment(ctx, paymentRequest("250700000000", 100)); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(g.Transactions()) != 0 {
		t.Fatalf("failed validation must not initiate a payment")
	}

	tx, err := g.ProcessPayment(ctx, paymentRequest("250788123456", 100))
	if err != nil || tx.Status != entities.TransactionStatusPending {
		t.Fatalf("unexpected result: %+v %v", tx, err)
	}
}

func TestGateway_Balance(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	for _, req := range []entities.PaymentRequest{
		paymentRequest("250788123456", 100),
		paymentRequest("250788654321", 250),
		paymentRequest("250700000000", 999),
	} {
		tx, err := g.RequestToPay(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := g.CheckTransactionStatus(ctx, tx.ReferenceID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	bal, err := g.GetAccountBalance(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bal.Currency != "EUR" || !bal.Available.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("unexpected balance: %+v", bal)
	}
}

func TestGateway_Reset(t *testing.T) {
	g, _ := newTestGateway(t)
	tx, err := g.RequestToPay(context.Background(), paymentRequest("250788123456", 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.Reset()
	if len(g.Transactions()) != 0 {
		t.Fatalf("expected empty store")
	}
	if _, err := g.CheckTransactionStatus(context.Background(), tx.ReferenceID); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reset, got %v", err)
	}
}

func TestGateway_LatencyHonorsContext(t *testing.T) {
	g, _ := newTestGateway(t, WithLatency(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.RequestToPay(ctx, paymentRequest("250788123456", 100))
	if !errors.Is(err, entities.ErrUpstreamTimeout) {
		t.Fatalf("expected ErrUpstreamTimeout, got %v", err)
	}
	if len(g.Transactions()) != 0 {
		t.Fatalf("timed out request must not be stored")
	}
}

func TestGateway_LatencyIsApplied(t *testing.T) {
	g, _ := newTestGateway(t, WithLatency(50*time.Millisecond))

	start := time.Now()
	if _, err := g.RequestToPay(context.Background(), paymentRequest("250788123456", 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("expected artificial latency, took %v", elapsed)
	}
}
