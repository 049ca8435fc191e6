package metrics

import (
	"context"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gateway collectors. Labels carry the gateway mode so live and
// simulated traffic can be compared in one query.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "momo_gateway",
				Name:      "requests_total",
				Help:      "Gateway operations by mode, operation and outcome",
			},
			[]string{"mode", "operation", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "momo_gateway",
				Name:      "request_duration_seconds",
				Help:      "Gateway operation latency by mode and operation",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5, 10, 30},
			},
			[]string{"mode", "operation"},
		),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}

func (m *Metrics) observe(mode, op string, start time.Time, err error) {
	m.Requests.WithLabelValues(mode, op, outcome(err)).Inc()
	m.Duration.WithLabelValues(mode, op).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := entities.KindOf(err); kind != "" {
		return strings.ToLower(string(kind))
	}
	return "error"
}

// InstrumentedGateway records metrics around another gateway without changing its behavior.
type InstrumentedGateway struct {
	next    interfaces.IPaymentGateway
	metrics *Metrics
	mode    string
}

var _ interfaces.IPaymentGateway = (*InstrumentedGateway)(nil)

func NewInstrumentedGateway(next interfaces.IPaymentGateway, m *Metrics, mode string) *InstrumentedGateway {
	return &InstrumentedGateway{next: next, metrics: m, mode: mode}
}

func (g *InstrumentedGateway) ValidateAccountHolder(ctx context.Context, payer string) (entities.AccountHolder, error) {
	start := time.Now()
	res, err := g.next.ValidateAccountHolder(ctx, payer)
	g.metrics.observe(g.mode, "validate_account_holder", start, err)
	return res, err
}

func (g *InstrumentedGateway) RequestToPay(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	start := time.Now()
	res, err := g.next.RequestToPay(ctx, req)
	g.metrics.observe(g.mode, "request_to_pay", start, err)
	return res, err
}

func (g *InstrumentedGateway) CheckTransactionStatus(ctx context.Context, referenceID string) (entities.Transaction, error) {
	start := time.Now()
	res, err := g.next.CheckTransactionStatus(ctx, referenceID)
	g.metrics.observe(g.mode, "check_transaction_status", start, err)
	return res, err
}

func (g *InstrumentedGateway) GetAccountBalance(ctx context.Context) (entities.Balance, error) {
	start := time.Now()
	res, err := g.next.GetAccountBalance(ctx)
	g.metrics.observe(g.mode, "get_account_balance", start, err)
	return res, err
}

func (g *InstrumentedGateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	start := time.Now()
	res, err := g.next.ProcessPayment(ctx, req)
	g.metrics.observe(g.mode, "process_payment", start, err)
	return res, err
}
