package momo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/infrastructure/config"
	"momo_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	tokenPath    = "/collection/token/"
	tokenTimeout = 30 * time.Second
	tokenSkew    = 60 * time.Second
)

// TokenProvider exchanges the API user and key for a bearer token and caches it
// until shortly before it expires. Concurrent callers share a single refresh.
type TokenProvider struct {
	cfg        config.MoMoConfig
	httpClient *http.Client
	log        *zap.SugaredLogger
	now        func() time.Time

	mu      sync.Mutex
	token   entities.AccessToken
	refresh singleflight.Group
}

var _ interfaces.ITokenProvider = (*TokenProvider)(nil)

func NewTokenProvider(cfg config.MoMoConfig, httpClient *http.Client, log *zap.SugaredLogger) *TokenProvider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TokenProvider{cfg: cfg, httpClient: httpClient, log: log, now: time.Now}
}

func (p *TokenProvider) GetAccessToken(ctx context.Context) (entities.AccessToken, error) {
	if missing := p.missingCredentials(); len(missing) > 0 {
		p.log.Errorw("[payment][token] missing credentials", "missing", missing)
		return entities.AccessToken{}, entities.NewAuthError("missing MoMo credentials: "+strings.Join(missing, ", "), nil)
	}

	p.mu.Lock()
	cached := p.token
	p.mu.Unlock()
	if cached.Valid(p.now()) {
		return cached, nil
	}

	v, err, shared := p.refresh.Do("token", func() (any, error) {
		p.mu.Lock()
		cached := p.token
		p.mu.Unlock()
		if cached.Valid(p.now()) {
			return cached, nil
		}
		return p.fetch(ctx)
	})
	if err != nil {
		return entities.AccessToken{}, err
	}
	if shared {
		p.log.Debugw("[payment][token] joined in-flight refresh")
	}
	return v.(entities.AccessToken), nil
}

// Invalidate drops the cached token, forcing the next caller to fetch a new one.
func (p *TokenProvider) Invalidate() {
	p.mu.Lock()
	p.token = entities.AccessToken{}
	p.mu.Unlock()
}

func (p *TokenProvider) fetch(ctx context.Context) (entities.AccessToken, error) {
	// The refresh is shared, so one caller giving up must not fail the others.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tokenTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return entities.AccessToken{}, entities.NewProtocolError("build token request", err)
	}
	req.SetBasicAuth(p.cfg.APIUser, p.cfg.APIKey)
	req.Header.Set(HeaderSubscriptionKey, p.cfg.SubscriptionKey)

	p.log.Debugw("[payment][token] refresh start")
	resp, err := p.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			p.log.Warnw("[payment][token] token endpoint timeout", "timeout", tokenTimeout)
			return entities.AccessToken{}, entities.NewUpstreamTimeoutError("token endpoint did not respond in time", err)
		}
		p.log.Warnw("[payment][token] token request failed", "err", err)
		return entities.AccessToken{}, entities.NewUpstreamError("token request failed", 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return entities.AccessToken{}, entities.NewUpstreamError("read token response", resp.StatusCode, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		p.log.Errorw("[payment][token] credentials rejected", "status", resp.StatusCode, "body", string(raw))
		return entities.AccessToken{}, entities.NewAuthError("token endpoint rejected credentials", nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		p.log.Warnw("[payment][token] token endpoint error", "status", resp.StatusCode, "body", string(raw))
		return entities.AccessToken{}, entities.NewUpstreamError("token endpoint unavailable", resp.StatusCode, nil)
	case resp.StatusCode != http.StatusOK:
		p.log.Warnw("[payment][token] unexpected token status", "status", resp.StatusCode, "body", string(raw))
		return entities.AccessToken{}, entities.NewUpstreamError("unexpected token response status", resp.StatusCode, nil)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || strings.TrimSpace(body.AccessToken) == "" {
		p.log.Warnw("[payment][token] invalid token response", "body", string(raw))
		return entities.AccessToken{}, entities.NewProtocolError("invalid token response", err)
	}

	now := p.now()
	ttl := time.Duration(body.ExpiresIn)*time.Second - tokenSkew
	token := entities.AccessToken{Value: body.AccessToken, ExpiresAt: now.Add(ttl)}

	p.mu.Lock()
	if ttl > 0 {
		p.token = token
	} else {
		p.token = entities.AccessToken{}
	}
	p.mu.Unlock()

	p.log.Infow("[payment][token] refresh success", "expires_in", body.ExpiresIn)
	return token, nil
}

func (p *TokenProvider) missingCredentials() []string {
	var missing []string
	if p.cfg.APIUser == "" {
		missing = append(missing, "MOMO_API_USER")
	}
	if p.cfg.APIKey == "" {
		missing = append(missing, "MOMO_API_KEY")
	}
	if p.cfg.SubscriptionKey == "" {
		missing = append(missing, "MOMO_SUBSCRIPTION_KEY")
	}
	return missing
}
