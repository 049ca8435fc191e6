package request

import (
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase"

	"github.com/shopspring/decimal"
)

const maxAwaitTimeout = 120 * time.Second

// PaymentCreateRequest is the checkout payload. Amount accepts a JSON number or string.
type PaymentCreateRequest struct {
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"50000"`
	Currency     string          `json:"currency" binding:"required" example:"EUR"`
	Payer        string          `json:"payer" binding:"required" example:"250788123456"`
	ExternalID   string          `json:"external_id" binding:"required" example:"ticket-42"`
	PayerMessage string          `json:"payer_message,omitempty"`
	PayeeNote    string          `json:"payee_note,omitempty"`
}

func (r PaymentCreateRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:       r.Amount,
		Currency:     r.Currency,
		Payer:        r.Payer,
		ExternalID:   r.ExternalID,
		PayerMessage: r.PayerMessage,
		PayeeNote:    r.PayeeNote,
	}
}

// PaymentAwaitRequest tunes how long the server polls before answering.
// Zero values fall back to the default poll policy.
type PaymentAwaitRequest struct {
	TimeoutSeconds    int `json:"timeout_seconds" example:"30"`
	IntervalMillis    int `json:"interval_ms" example:"1000"`
	MaxIntervalMillis int `json:"max_interval_ms" example:"5000"`
}

func (r PaymentAwaitRequest) ToPollPolicy() usecase.PollPolicy {
	p := usecase.DefaultPollPolicy()
	if r.TimeoutSeconds > 0 {
		p.Timeout = time.Duration(r.TimeoutSeconds) * time.Second
	}
	if p.Timeout > maxAwaitTimeout {
		p.Timeout = maxAwaitTimeout
	}
	if r.IntervalMillis > 0 {
		p.InitialInterval = time.Duration(r.IntervalMillis) * time.Millisecond
	}
	if r.MaxIntervalMillis > 0 {
		p.MaxInterval = time.Duration(r.MaxIntervalMillis) * time.Millisecond
	}
	return p
}
