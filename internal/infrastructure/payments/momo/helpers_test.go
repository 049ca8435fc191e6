package momo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"momo_gateway/internal/infrastructure/config"

	"go.uber.org/zap"
)

// fakeUpstream is a stand-in for the collection API. Routes are keyed by "METHOD path".
type fakeUpstream struct {
	t      *testing.T
	server *httptest.Server

	tokenHits atomic.Int32
	tokenFn   func(w http.ResponseWriter, r *http.Request)

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []*http.Request
	bodies   [][]byte
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{t: t, routes: map[string]http.HandlerFunc{}}
	f.tokenFn = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "tok-1", "token_type": "access_token", "expires_in": 3600})
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == tokenPath {
		f.tokenHits.Add(1)
		f.tokenFn(w, r)
		return
	}

	body := make([]byte, 0)
	if r.Body != nil {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		body = raw
	}

	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	f.bodies = append(f.bodies, body)
	h, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func (f *fakeUpstream) handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

func (f *fakeUpstream) calls() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func (f *fakeUpstream) lastBody() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bodies) == 0 {
		return nil
	}
	return f.bodies[len(f.bodies)-1]
}

func (f *fakeUpstream) config() config.MoMoConfig {
	return config.MoMoConfig{
		Environment:       config.EnvironmentSandbox,
		BaseURL:           f.server.URL,
		SubscriptionKey:   "sub-key",
		APIUser:           "api-user",
		APIKey:            "api-key",
		TargetEnvironment: "sandbox",
	}
}

func (f *fakeUpstream) gateway() (*Gateway, *TokenProvider) {
	log := zap.NewNop().Sugar()
	tokens := NewTokenProvider(f.config(), f.server.Client(), log)
	return NewGateway(f.config(), f.server.Client(), tokens, log), tokens
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
