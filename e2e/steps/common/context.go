// Package common holds the scenario state shared by every step package and
// the generic request and assertion steps.
package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"parcours/internal/app"
	jwttoken "parcours/internal/jwt_token"
	"parcours/internal/platform/config"
	httptransport "parcours/internal/transport/http"
	"parcours/pkg/platform/httputil"
)

const (
	signingKey = "e2e-signing-key-0123456789"
	issuer     = "parcours"
	audience   = "parcours-api"
)

// TestContext is the state of one scenario: a running engine behind a real
// HTTP server, the signed-in caller and the last response.
type TestContext struct {
	server *httptest.Server
	engine *app.App
	tokens *jwttoken.JWTService
	client *http.Client

	mu  sync.Mutex
	now time.Time

	token      string
	LastStatus int
	LastBody   []byte
	remembered map[string]string
}

func NewTestContext() *TestContext {
	return &TestContext{
		tokens:     jwttoken.NewJWTService(signingKey, issuer, audience),
		client:     &http.Client{Timeout: 10 * time.Second},
		remembered: map[string]string{},
	}
}

// Start builds an in-memory engine seeded from fixturesPath and serves it.
func (tc *TestContext) Start(ctx context.Context, fixturesPath string, now time.Time) error {
	tc.Close()
	tc.SetNow(now)

	cfg := &config.Config{
		Database:  config.DatabaseConfig{Driver: "memory"},
		Auth:      config.AuthConfig{JWTSigningKey: signingKey, Issuer: issuer, Audience: audience},
		Lifecycle: config.LifecycleConfig{Timezone: "Europe/Brussels", FixturesPath: fixturesPath},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	tc.engine = engine
	tc.server = httptest.NewServer(httptransport.NewRouter(httptransport.RouterConfig{
		Commands:       engine.Commands,
		Queries:        engine.Queries,
		Files:          engine.Files,
		Validator:      jwttoken.NewJWTServiceAdapter(tc.tokens),
		Logger:         logger,
		Metrics:        engine.Metrics,
		Gatherer:       engine.Registry,
		RequestTimeout: 5 * time.Second,
		Clock:          tc.Now,
	}))
	return nil
}

// Close stops the server and releases the engine.
func (tc *TestContext) Close() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
	if tc.engine != nil {
		tc.engine.Close()
		tc.engine = nil
	}
	tc.token = ""
	tc.LastStatus = 0
	tc.LastBody = nil
	tc.remembered = map[string]string{}
}

func (tc *TestContext) Now() time.Time {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.now
}

func (tc *TestContext) SetNow(now time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.now = now
}

// SignIn issues a token for matricule used by every following request.
func (tc *TestContext) SignIn(matricule, language string) error {
	token, err := tc.tokens.GenerateAccessToken(matricule, language, time.Hour)
	if err != nil {
		return err
	}
	tc.token = token
	return nil
}

// Remember stores value under name; "{name}" in later bodies expands to it.
func (tc *TestContext) Remember(name, value string) {
	tc.remembered[name] = value
}

func (tc *TestContext) Recall(name string) (string, bool) {
	v, ok := tc.remembered[name]
	return v, ok
}

// Expand replaces every remembered "{name}" in s.
func (tc *TestContext) Expand(s string) string {
	for name, value := range tc.remembered {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// Send posts body to /api/v1/{kind}/{name} and keeps the response.
func (tc *TestContext) Send(ctx context.Context, kind, name, body string) error {
	if tc.server == nil {
		return fmt.Errorf("the engine is not running")
	}
	url := tc.server.URL + "/api/v1/" + kind + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(tc.Expand(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	defer resp.Body.Close()
	tc.LastStatus = resp.StatusCode
	tc.LastBody, err = io.ReadAll(resp.Body)
	return err
}

// Result decodes the "result" member of the last response into v.
func (tc *TestContext) Result(v any) error {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(tc.LastBody, &envelope); err != nil {
		return fmt.Errorf("decode response %q: %w", tc.LastBody, err)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("no result in response %q", tc.LastBody)
	}
	return json.Unmarshal(envelope.Result, v)
}

// ErrorCodes lists the business error codes of the last response.
func (tc *TestContext) ErrorCodes() ([]string, error) {
	var body httputil.ErrorResponse
	if err := json.Unmarshal(tc.LastBody, &body); err != nil {
		return nil, fmt.Errorf("decode error response %q: %w", tc.LastBody, err)
	}
	codes := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		codes = append(codes, e.StatusCode)
	}
	return codes, nil
}

// Query sends a query and decodes its result, failing on a non-200 answer.
func (tc *TestContext) Query(ctx context.Context, name, body string, v any) error {
	if err := tc.Send(ctx, "queries", name, body); err != nil {
		return err
	}
	if tc.LastStatus != http.StatusOK {
		return fmt.Errorf("query %s answered %d: %s", name, tc.LastStatus, tc.LastBody)
	}
	return tc.Result(v)
}
