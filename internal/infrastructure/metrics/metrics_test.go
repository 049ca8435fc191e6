package metrics

import (
	"context"
	"errors"
	"testing"

	"momo_gateway/internal/domain/entities"
	mock_interfaces "momo_gateway/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInstrumentedGateway_RecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIPaymentGateway(ctrl)
	m := NewMetrics(prometheus.NewRegistry())
	g := NewInstrumentedGateway(next, m, "simulated")
	ctx := context.Background()

	req := entities.PaymentRequest{Amount: decimal.NewFromInt(10), Currency: "EUR", Payer: "250788123456", ExternalID: "t-1"}
	tx := entities.Transaction{ReferenceID: "ref-1", Status: entities.TransactionStatusPending}

	next.EXPECT().RequestToPay(ctx, req).Return(tx, nil)
	next.EXPECT().CheckTransactionStatus(ctx, "missing").Return(entities.Transaction{}, entities.NewNotFoundError("transaction missing not found"))
	next.EXPECT().GetAccountBalance(ctx).Return(entities.Balance{}, errors.New("boom"))
	next.EXPECT().ValidateAccountHolder(ctx, "250788123456").Return(entities.AccountHolder{Payer: "250788123456", IsActive: true}, nil)
	next.EXPECT().ProcessPayment(ctx, req).Return(entities.Transaction{}, entities.NewUpstreamTimeoutError("deadline", nil))

	got, err := g.RequestToPay(ctx, req)
	if err != nil || got.ReferenceID != "ref-1" {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
	if _, err := g.CheckTransactionStatus(ctx, "missing"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected not found to pass through, got %v", err)
	}
	_, _ = g.GetAccountBalance(ctx)
	_, _ = g.ValidateAccountHolder(ctx, "250788123456")
	_, _ = g.ProcessPayment(ctx, req)

	cases := []struct {
		op, outcome string
	}{
		{"request_to_pay", "ok"},
		{"check_transaction_status", "not_found"},
		{"get_account_balance", "error"},
		{"validate_account_holder", "ok"},
		{"process_payment", "upstream_timeout"},
	}
	for _, tc := range cases {
		if v := testutil.ToFloat64(m.Requests.WithLabelValues("simulated", tc.op, tc.outcome)); v != 1 {
			t.Fatalf("%s/%s: expected 1, got %v", tc.op, tc.outcome, v)
		}
	}
	if n := testutil.CollectAndCount(m.Duration); n != len(cases) {
		t.Fatalf("expected %d duration series, got %d", len(cases), n)
	}
}
