package handlers

import (
	"errors"
	"net/http"

	"momo_gateway/internal/adapter/http/dto/request"
	"momo_gateway/internal/adapter/http/dto/response"
	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase"
	"momo_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the checkout flow over HTTP.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.SugaredLogger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.SugaredLogger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log}
}

// StartPayment godoc
// @Summary      Start a mobile money payment
// @Description  Sends a request-to-pay to the payer's wallet. The transaction is returned PENDING.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.PaymentCreateRequest  true  "Payment"
// @Success      202      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      504      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) StartPayment(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Infow("[payment][handler] invalid payload", "err", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.StartPayment(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.fail(c, "start", err)
		return
	}
	h.log.Infow("[payment][handler] start success", "reference_id", tx.ReferenceID, "external_id", tx.ExternalID)

	c.JSON(http.StatusAccepted, response.FromTransaction(tx))
}

// GetPaymentStatus godoc
// @Summary      Get payment status
// @Tags         payments
// @Produce      json
// @Param        reference_id  path      string  true  "Reference ID"
// @Success      200           {object}  response.TransactionResponse
// @Failure      404           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Router       /payments/{reference_id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	referenceID := c.Param("reference_id")

	tx, err := h.usecase.GetPaymentStatus(c.Request.Context(), referenceID)
	if err != nil {
		h.fail(c, "status", err)
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// AwaitPayment godoc
// @Summary      Wait for a payment to settle
// @Description  Polls the provider until the payment is SUCCESSFUL or FAILED. Answers 202 with the last snapshot when the wait ends first.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        reference_id  path      string                        true   "Reference ID"
// @Param        policy        body      request.PaymentAwaitRequest  false  "Poll policy"
// @Success      200           {object}  response.TransactionResponse
// @Success      202           {object}  response.TransactionResponse
// @Failure      404           {object}  pkg.HTTPError
// @Failure      408           {object}  pkg.HTTPError
// @Router       /payments/{reference_id}/await [post]
func (h *PaymentHandler) AwaitPayment(c *gin.Context) {
	referenceID := c.Param("reference_id")

	var req request.PaymentAwaitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	tx, err := h.usecase.AwaitCompletion(c.Request.Context(), referenceID, req.ToPollPolicy())
	if errors.Is(err, usecase.ErrPollDeadlineExceeded) {
		if tx.ReferenceID == "" {
			appErr := pkg.NewDomainErrorSimple("PAYMENT_STILL_PENDING", "Payment did not settle in time", http.StatusRequestTimeout)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.log.Infow("[payment][handler] await deadline", "reference_id", referenceID, "status", tx.Status)
		c.JSON(http.StatusAccepted, response.FromTransaction(tx))
		return
	}
	if err != nil {
		h.fail(c, "await", err)
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ValidateAccountHolder godoc
// @Summary      Validate a payer
// @Tags         accounts
// @Produce      json
// @Param        payer  path      string  true  "Payer MSISDN"
// @Success      200    {object}  response.AccountHolderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /accounts/{payer}/active [get]
func (h *PaymentHandler) ValidateAccountHolder(c *gin.Context) {
	holder, err := h.usecase.ValidatePayer(c.Request.Context(), c.Param("payer"))
	if err != nil {
		h.fail(c, "validate", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAccountHolder(holder))
}

// GetBalance godoc
// @Summary      Collection account balance
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  response.BalanceResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /accounts/balance [get]
func (h *PaymentHandler) GetBalance(c *gin.Context) {
	balance, err := h.usecase.GetBalance(c.Request.Context())
	if err != nil {
		h.fail(c, "balance", err)
		return
	}

	c.JSON(http.StatusOK, response.FromBalance(balance))
}

func (h *PaymentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapPaymentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Errorw("[payment][handler] request failed", "op", op, "status", appErr.HTTPStatus, "err", err)
	} else {
		h.log.Infow("[payment][handler] request rejected", "op", op, "status", appErr.HTTPStatus, "err", err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", publicMessage(err, "Invalid request"), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrAuth):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", publicMessage(err, "Resource not found"), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrDuplicate):
		return pkg.NewDomainError("DUPLICATE_REFERENCE", "Reference already used", err, http.StatusConflict)
	case errors.Is(err, entities.ErrUpstreamTimeout):
		return pkg.NewDomainError("PAYMENT_PROVIDER_TIMEOUT", "Payment provider timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, entities.ErrUpstream), errors.Is(err, entities.ErrProtocol):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// publicMessage returns the gateway error message when it is safe to show to clients.
func publicMessage(err error, fallback string) string {
	var ge *entities.GatewayError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return fallback
}
