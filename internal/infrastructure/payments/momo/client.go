package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/infrastructure/config"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderSubscriptionKey   = "Ocp-Apim-Subscription-Key"
	HeaderAuthorization     = "Authorization"
	HeaderTargetEnvironment = "X-Target-Environment"
	HeaderReferenceID       = "X-Reference-Id"
	HeaderCallbackURL       = "X-Callback-Url"

	writeTimeout = 30 * time.Second
	readTimeout  = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// client performs authenticated calls against the collection API.
//
// Each call carries a fresh X-Reference-Id unless the caller pins one. A 401 drops the
// cached token and the call is replayed exactly once with a new token.
type client struct {
	cfg        config.MoMoConfig
	httpClient *http.Client
	tokens     interfaces.ITokenProvider
	log        *zap.SugaredLogger
	newID      func() string
}

type apiCall struct {
	op          string
	method      string
	path        string
	body        any
	referenceID string
	timeout     time.Duration
	accepted    []int
}

func newClient(cfg config.MoMoConfig, httpClient *http.Client, tokens interfaces.ITokenProvider, log *zap.SugaredLogger) *client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &client{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
		log:        log,
		newID:      func() string { return uuid.NewString() },
	}
}

func (c *client) do(ctx context.Context, call apiCall, out any) error {
	var payload []byte
	if call.body != nil {
		b, err := json.Marshal(call.body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", call.op, err)
		}
		payload = b
	}

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.GetAccessToken(ctx)
		if err != nil {
			return err
		}

		status, raw, err := c.send(ctx, call, token.Value, payload)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized {
			c.tokens.Invalidate()
			if attempt == 0 {
				c.log.Infow("[payment][gateway] token rejected; refreshing and retrying once", "op", call.op)
				continue
			}
			c.log.Warnw("[payment][gateway] upstream rejected refreshed token", "op", call.op, "body", string(raw))
			return entities.NewAuthError(call.op+": upstream rejected credentials", nil)
		}

		return c.translate(call, status, raw, out)
	}
}

func (c *client) send(ctx context.Context, call apiCall, token string, payload []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, call.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, call.method, c.cfg.BaseURL+call.path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", call.op, err)
	}

	ref := call.referenceID
	if ref == "" {
		ref = c.newID()
	}
	req.Header.Set(HeaderSubscriptionKey, c.cfg.SubscriptionKey)
	req.Header.Set(HeaderAuthorization, "Bearer "+token)
	req.Header.Set(HeaderTargetEnvironment, c.cfg.TargetEnvironment)
	req.Header.Set(HeaderReferenceID, ref)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		if c.cfg.CallbackURL != "" {
			req.Header.Set(HeaderCallbackURL, c.cfg.CallbackURL)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Warnw("[payment][gateway] upstream timeout", "op", call.op, "timeout", call.timeout)
			return 0, nil, entities.NewUpstreamTimeoutError(call.op+": upstream did not respond in time", err)
		}
		c.log.Warnw("[payment][gateway] upstream request failed", "op", call.op, "err", err)
		return 0, nil, entities.NewUpstreamError(call.op+": upstream request failed", 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return 0, nil, entities.NewUpstreamTimeoutError(call.op+": upstream did not respond in time", err)
		}
		return 0, nil, entities.NewUpstreamError(call.op+": read response", resp.StatusCode, err)
	}
	return resp.StatusCode, raw, nil
}

func (c *client) translate(call apiCall, status int, raw []byte, out any) error {
	for _, ok := range call.accepted {
		if status != ok {
			continue
		}
		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			c.log.Warnw("[payment][gateway] undecodable upstream body", "op", call.op, "status", status, "body", string(raw))
			return entities.NewProtocolError(call.op+": invalid response body", err)
		}
		return nil
	}

	c.log.Warnw("[payment][gateway] upstream error response", "op", call.op, "status", status, "body", string(raw))
	detail := upstreamMessage(raw)
	switch {
	case status == http.StatusBadRequest:
		return entities.NewValidationError(call.op + ": provider rejected request" + detail)
	case status == http.StatusForbidden:
		return entities.NewAuthError(call.op+": provider denied access"+detail, nil)
	case status == http.StatusNotFound:
		return entities.NewNotFoundError(call.op + ": provider reports resource not found" + detail)
	case status == http.StatusConflict:
		return entities.NewDuplicateError(call.op + ": provider reports a conflicting request" + detail)
	case status >= http.StatusInternalServerError:
		return entities.NewUpstreamError(call.op+": provider unavailable"+detail, status, nil)
	default:
		return entities.NewUpstreamError(fmt.Sprintf("%s: unexpected status %d%s", call.op, status, detail), status, nil)
	}
}

// upstreamMessage extracts a short "code" or "message" from an error body, if any.
func upstreamMessage(raw []byte) string {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if v := strings.TrimSpace(body.Code); v != "" {
		return " (" + v + ")"
	}
	if v := strings.TrimSpace(body.Message); v != "" {
		return " (" + v + ")"
	}
	return ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
