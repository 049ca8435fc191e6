package momo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/infrastructure/config"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	requestToPayPath  = "/collection/v1_0/requesttopay"
	accountHolderPath = "/collection/v1_0/accountholder/msisdn/%s/active"
	balancePath       = "/collection/v1_0/account/balance"
)

// Gateway talks to the MTN MoMo collection API.
//
// The provider is the source of truth: every status check is a round trip and no
// terminal state is cached locally.
type Gateway struct {
	client *client
	log    *zap.SugaredLogger
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*Gateway)(nil)

func NewGateway(cfg config.MoMoConfig, httpClient *http.Client, tokens interfaces.ITokenProvider, log *zap.SugaredLogger) *Gateway {
	return &Gateway{
		client: newClient(cfg, httpClient, tokens, log),
		log:    log,
		now:    time.Now,
	}
}

type party struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type requestToPayBody struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payer        party  `json:"payer"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

type requestToPayStatus struct {
	Amount                 string          `json:"amount"`
	Currency               string          `json:"currency"`
	FinancialTransactionID string          `json:"financialTransactionId"`
	ExternalID             string          `json:"externalId"`
	Payer                  party           `json:"payer"`
	Status                 string          `json:"status"`
	Reason                 json.RawMessage `json:"reason"`
}

func (g *Gateway) ValidateAccountHolder(ctx context.Context, payer string) (entities.AccountHolder, error) {
	payer = entities.NormalizePayer(payer)
	if err := entities.ValidatePayer(payer); err != nil {
		return entities.AccountHolder{}, err
	}

	var out struct {
		Result bool `json:"result"`
	}
	err := g.client.do(ctx, apiCall{
		op:       "validate-account-holder",
		method:   http.MethodGet,
		path:     fmt.Sprintf(accountHolderPath, url.PathEscape(payer)),
		timeout:  readTimeout,
		accepted: []int{http.StatusOK},
	}, &out)
	if err != nil {
		g.log.Infow("[payment][gateway] validate-account-holder failed", "payer", payer, "err", err)
		return entities.AccountHolder{}, err
	}
	if !out.Result {
		g.log.Infow("[payment][gateway] payer not active", "payer", payer)
		return entities.AccountHolder{}, entities.NewNotFoundError("payer " + payer + " is not an active account holder")
	}
	return entities.AccountHolder{Payer: payer, IsActive: true}, nil
}

func (g *Gateway) RequestToPay(ctx context.Context, req entities.PaymentRequest) (entities.Transaction, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return entities.Transaction{}, err
	}

	referenceID := g.client.newID()
	g.log.Infow("[payment][gateway] request-to-pay start", "reference_id", referenceID, "external_id", req.ExternalID, "payer", req.Payer, "amount", req.Amount.String(), "currency", req.Currency)

	err := g.client.do(ctx, apiCall{
		op:     "request-to-pay",
		method: http.MethodPost,
		path:   requestToPayPath,
		body: requestToPayBody{
			Amount:       req.Amount.String(),
			Currency:     req.Currency,
			ExternalID:   req.ExternalID,
			Payer:        party{PartyIDType: "MSISDN", PartyID: req.Payer},
			PayerMessage: req.PayerMessage,
			PayeeNote:    req.PayeeNote,
		},
		referenceID: referenceID,
		timeout:     writeTimeout,
		accepted:    []int{http.StatusAccepted},
	}, nil)
	if err != nil {
		g.log.Warnw("[payment][gateway] request-to-pay failed", "reference_id", referenceID, "external_id", req.ExternalID, "err", err)
		return entities.Transaction{}, err
	}

	g.log.Infow("[payment][gateway] request-to-pay accepted", "reference_id", referenceID)
	return entities.Transaction{
		ReferenceID: referenceID,
		ExternalID:  req.ExternalID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Payer:       req.Payer,
		Status:      entities.TransactionStatusPending,
		CreatedAt:   g.now().UTC(),
	}, nil
}

func (g *Gateway) CheckTransactionStatus(ctx context.Context, referenceID string) (entities.Transaction, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Transaction{}, entities.NewValidationError("reference id is required")
	}

	var out requestToPayStatus
	err := g.client.do(ctx, apiCall{
		op:       "check-transaction-status",
		method:   http.MethodGet,
		path:     requestToPayPath + "/" + url.PathEscape(referenceID),
		timeout:  readTimeout,
		accepted: []int{http.StatusOK},
	}, &out)
	if err != nil {
		return entities.Transaction{}, err
	}

	tx, err := g.toTransaction(referenceID, out)
	if err != nil {
		g.log.Warnw("[payment][gateway] unexpected status payload", "reference_id", referenceID, "status", out.Status, "err", err)
		return entities.Transaction{}, err
	}
	g.log.Debugw("[payment][gateway] status observed", "reference_id", referenceID, "status", tx.Status, "reason", tx.Reason)
	return tx, nil
}

func (g *Gateway) GetAccountBalance(ctx context.Context) (entities.Balance, error) {
	var out struct {
		AvailableBalance string `json:"availableBalance"`
		Currency         string `json:"currency"`
	}
	err := g.client.do(ctx, apiCall{
		op:       "get-account-balance",
		method:   http.MethodGet,
		path:     balancePath,
		timeout:  readTimeout,
		accepted: []int{http.StatusOK},
	}, &out)
	if err != nil {
		return entities.Balance{}, err
	}

	available, err := decimal.NewFromString(strings.TrimSpace(out.AvailableBalance))
	if err != nil {
		return entities.Balance{}, entities.NewProtocolError("invalid balance amount", err)
	}
	return entities.Balance{Available: available, Currency: out.Currency}, nil
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

func (g *Gateway) toTransaction(referenceID string, out requestToPayStatus) (entities.Transaction, error) {
	tx := entities.Transaction{
		ReferenceID: referenceID,
		ExternalID:  out.ExternalID,
		Currency:    out.Currency,
		Payer:       out.Payer.PartyID,
		Status:      entities.TransactionStatusPending,
	}
	if v := strings.TrimSpace(out.Amount); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return entities.Transaction{}, entities.NewProtocolError("invalid transaction amount", err)
		}
		tx.Amount = amount
	}

	now := g.now().UTC()
	switch strings.ToUpper(strings.TrimSpace(out.Status)) {
	case "PENDING", "CREATED", "ONGOING":
	case "SUCCESSFUL":
		tx.Complete(entities.TransactionStatusSuccessful, "", out.FinancialTransactionID, now)
	case "FAILED":
		tx.Complete(entities.TransactionStatusFailed, reasonCode(out.Reason, entities.ReasonInternalError), "", now)
	case "REJECTED":
		tx.Complete(entities.TransactionStatusFailed, reasonCode(out.Reason, entities.ReasonRejected), "", now)
	case "TIMEOUT", "EXPIRED":
		tx.Complete(entities.TransactionStatusFailed, reasonCode(out.Reason, entities.ReasonExpired), "", now)
	default:
		return entities.Transaction{}, entities.NewProtocolError("unknown transaction status "+out.Status, nil)
	}
	// The collection API does not report when a transaction settled.
	tx.CompletedAt = nil
	return tx, nil
}

// reasonCode accepts the reason either as a bare string or as {"code": ..., "message": ...}.
func reasonCode(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 || string(raw) == "null" {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && strings.TrimSpace(obj.Code) != "" {
		return strings.TrimSpace(obj.Code)
	}
	return fallback
}
