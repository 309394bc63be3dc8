// Backend REST API client
//
// 환경변수:
//   - BACKEND_URL: shortener backend (예: http://localhost:8080); "/api" is appended
//   - BACKEND_TIMEOUT: per-request timeout (default: 30s)
//
// Every call forwards the browser's session cookies, and every response goes
// through intercept before the caller sees it. A 401 is handed to the
// Coordinator once per request; everything else is normalized to *APIError.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shortenurl/web/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultBackendURL = "http://localhost:8080"
	defaultTimeout    = 30 * time.Second
	maxResponseBytes  = 4 << 20
	requestIDHeader   = "X-Request-ID"
	tracerName        = "github.com/shortenurl/web/internal/client"
)

var ErrMisconfigured = errors.New("backend config invalid")

// CookieStore supplies the cookies sent to the backend and receives the
// ones it sets.
type CookieStore interface {
	Cookies() []*http.Cookie
	SetCookies(cookies []*http.Cookie)
}

// Session is what the BFF hands a per-request client: the browser's cookies,
// the probe, and the way to drop the session when it cannot be recovered.
type Session interface {
	CookieStore
	SessionProber
	Clear(ctx context.Context) error
}

// Settings is the parsed, shareable part of the backend configuration.
type Settings struct {
	BaseURL    string
	HTTPClient *http.Client
}

func ParseSettings(cfg config.BackendConfig) (Settings, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBackendURL
	}

	timeout := defaultTimeout
	if strings.TrimSpace(cfg.Timeout) != "" {
		parsed, err := time.ParseDuration(cfg.Timeout)
		if err != nil || parsed <= 0 {
			return Settings{}, fmt.Errorf("%w: invalid BACKEND_TIMEOUT", ErrMisconfigured)
		}
		timeout = parsed
	}

	return Settings{
		BaseURL: baseURL + "/api",
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cookies    CookieStore
	session    Session
	refresh    *Coordinator
	metrics    *Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	requestID  string
}

type Option func(*Client)

// WithSession wires the browser session: cookies in and out, plus a
// Coordinator that probes it and clears it on failure.
func WithSession(s Session) Option {
	return func(c *Client) {
		c.cookies = s
		c.session = s
	}
}

// WithCoordinator shares one Coordinator between several clients.
func WithCoordinator(coord *Coordinator) Option {
	return func(c *Client) {
		c.refresh = coord
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider replaces the global provider for this client's spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) {
		if p != nil {
			c.propagator = p
		}
	}
}

func WithRequestID(id string) Option {
	return func(c *Client) {
		c.requestID = id
	}
}

func New(settings Settings, opts ...Option) *Client {
	httpClient := settings.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	c := &Client{
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		httpClient: httpClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session != nil && c.refresh == nil {
		s := c.session
		c.refresh = NewCoordinator(s,
			OnExpired(func(ctx context.Context) { _ = s.Clear(ctx) }),
			WithRefreshMetrics(c.metrics),
			WithRefreshLogger(c.logger),
		)
	}
	return c
}

func (c *Client) Coordinator() *Coordinator {
	return c.refresh
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out, true)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, true)
}

// call is one logical request; retried flips once it has been handed to
// the Coordinator.
type call struct {
	method  string
	path    string
	payload []byte
	retried bool
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, refreshable bool) error {
	req := &call{method: method, path: path, retried: !refreshable}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindClient, Code: CodeClientError, Message: "invalid request body", Err: err}
		}
		req.payload = payload
	}

	for {
		res, err := c.send(ctx, req)
		if err != nil {
			return err
		}

		if res.status >= 200 && res.status < 300 {
			return decode(res, out)
		}

		retry, err := c.intercept(ctx, req, res)
		if !retry {
			return err
		}
	}
}

// intercept classifies a failed response. It returns retry=true only for a
// first 401 whose shared refresh found the session still valid.
func (c *Client) intercept(ctx context.Context, req *call, res *response) (bool, error) {
	apiErr := normalize(res.status, res.header, res.body)
	if apiErr.Kind == KindServer {
		c.logger.ErrorContext(ctx, "backend server error",
			"method", req.method,
			"path", req.path,
			"status", res.status,
			"detail", apiErr.Detail,
			"request_id", c.requestID,
		)
	}

	if res.status != http.StatusUnauthorized || req.retried || c.refresh == nil {
		return false, apiErr
	}

	req.retried = true
	if err := c.refresh.Await(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) send(ctx context.Context, req *call) (*response, error) {
	ctx, span := c.tracer.Start(ctx, "backend "+req.method+" "+req.path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.method),
			attribute.String("url.path", req.path),
			attribute.Bool("retry", req.retried),
		),
	)
	defer span.End()

	var body io.Reader
	if req.payload != nil {
		body = bytes.NewReader(req.payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &APIError{Kind: KindClient, Code: CodeClientError, Message: "failed to create request", Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.requestID != "" {
		httpReq.Header.Set(requestIDHeader, c.requestID)
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(httpReq.Header))
	if c.cookies != nil {
		for _, cookie := range c.cookies.Cookies() {
			httpReq.AddCookie(cookie)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observeRequest(req.method, 0, time.Since(start))
		apiErr := transportError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, apiErr.Code)
		c.logger.WarnContext(ctx, "backend request failed",
			"method", req.method,
			"path", req.path,
			"code", apiErr.Code,
			"error", err,
			"request_id", c.requestID,
		)
		return nil, apiErr
	}
	defer resp.Body.Close()

	c.metrics.observeRequest(req.method, resp.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, resp.Status)
	}

	if c.cookies != nil {
		c.cookies.SetCookies(resp.Cookies())
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(fmt.Errorf("failed to read response: %w", err))
	}

	return &response{status: resp.StatusCode, header: resp.Header, body: payload}, nil
}

func decode(res *response, out any) error {
	if out == nil || len(bytes.TrimSpace(res.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return &APIError{
			Kind:    KindServer,
			Status:  res.status,
			Code:    CodeInvalidResponse,
			Message: msgServer,
			Err:     fmt.Errorf("failed to parse response: %w", err),
		}
	}
	return nil
}
