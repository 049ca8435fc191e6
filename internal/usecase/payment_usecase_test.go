package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"momo_gateway/internal/domain/entities"
	mock_interfaces "momo_gateway/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func fastPolicy() PollPolicy {
	return PollPolicy{InitialInterval: time.Millisecond, MaxInterval: 4 * time.Millisecond, Multiplier: 2, Timeout: time.Second}
}

func TestPaymentUseCase_GatewayNotConfigured(t *testing.T) {
	uc := NewPaymentUseCase(nil, zap.NewNop().Sugar())
	ctx := context.Background()

	if _, err := uc.StartPayment(ctx, entities.PaymentRequest{}); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.GetPaymentStatus(ctx, "ref"); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.AwaitCompletion(ctx, "ref", fastPolicy()); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.ValidatePayer(ctx, "250788123456"); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.GetBalance(ctx); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestPaymentUseCase_StartPayment(t *testing.T) {
	req := entities.PaymentRequest{Amount: decimal.NewFromInt(50000), Currency: "EUR", Payer: "250788123456", ExternalID: "ticket-1"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

		gateway.EXPECT().ProcessPayment(gomock.Any(), req).Return(entities.Transaction{ReferenceID: "ref-1", ExternalID: "ticket-1", Status: entities.TransactionStatusPending}, nil)

		tx, err := uc.StartPayment(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ReferenceID != "ref-1" || tx.Status != entities.TransactionStatusPending {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("gateway error is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

		gateway.EXPECT().ProcessPayment(gomock.Any(), req).Return(entities.Transaction{}, entities.NewDuplicateError("conflict"))

		_, err := uc.StartPayment(context.Background(), req)
		if !errors.Is(err, entities.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

	if _, err := uc.GetPaymentStatus(context.Background(), "  "); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(entities.Transaction{ReferenceID: "ref-1", Status: entities.TransactionStatusSuccessful}, nil)
	tx, err := uc.GetPaymentStatus(context.Background(), " ref-1 ")
	if err != nil || tx.Status != entities.TransactionStatusSuccessful {
		t.Fatalf("unexpected result: %+v %v", tx, err)
	}
}

func TestPaymentUseCase_AwaitCompletion(t *testing.T) {
	pending := entities.Transaction{ReferenceID: "ref-1", Status: entities.TransactionStatusPending}
	settled := entities.Transaction{ReferenceID: "ref-1", Status: entities.TransactionStatusSuccessful, FinancialTransactionID: "ft-1"}

	t.Run("polls until terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

		gomock.InOrder(
			gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(pending, nil).Times(2),
			gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(entities.Transaction{}, entities.NewUpstreamError("boom", 503, nil)),
			gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(settled, nil),
		)

		tx, err := uc.AwaitCompletion(context.Background(), "ref-1", fastPolicy())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.TransactionStatusSuccessful || tx.FinancialTransactionID != "ft-1" {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("terminal error stops polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

		gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(entities.Transaction{}, entities.NewNotFoundError("unknown"))

		_, err := uc.AwaitCompletion(context.Background(), "ref-1", fastPolicy())
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("deadline returns last snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, zap.NewNop().Sugar())

		gateway.EXPECT().CheckTransactionStatus(gomock.Any(), "ref-1").Return(pending, nil).MinTimes(1)

		policy := fastPolicy()
		policy.Timeout = 30 * time.Millisecond
		tx, err := uc.AwaitCompletion(context.Background(), "ref-1", policy)
		if !errors.Is(err, ErrPollDeadlineExceeded) {
			t.Fatalf("expected ErrPollDeadlineExceeded, got %v", err)
		}
		if tx.Status != entities.TransactionStatusPending || tx.ReferenceID != "ref-1" {
			t.Fatalf("expected last pending snapshot, got %+v", tx)
		}
	})
}

func TestPollPolicy_WithDefaults(t *testing.T) {
	p := PollPolicy{}.withDefaults()
	if p != DefaultPollPolicy() {
		t.Fatalf("expected defaults, got %+v", p)
	}

	p = PollPolicy{Timeout: 30 * time.Second}.withDefaults()
	if p.InitialInterval != time.Second || p.MaxInterval != 5*time.Second || p.Multiplier != 2 || p.Timeout != 30*time.Second {
		t.Fatalf("expected backoff defaults kept with custom timeout, got %+v", p)
	}

	p = PollPolicy{InitialInterval: 8 * time.Second}.withDefaults()
	if p.MaxInterval != 8*time.Second {
		t.Fatalf("expected max interval raised to initial interval, got %+v", p)
	}

	p = PollPolicy{InitialInterval: 2 * time.Second, MaxInterval: time.Second, Multiplier: 0.5, Timeout: time.Minute}.withDefaults()
	if p.MaxInterval != 2*time.Second || p.Multiplier != 2 || p.Timeout != time.Minute {
		t.Fatalf("unexpected policy: %+v", p)
	}
}
