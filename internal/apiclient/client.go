// Package apiclient performs calls against the payments/rewards REST API and
// normalizes their outcome: decoded JSON on success, *HTTPError on status
// >= 400 and *ConnectionError when no response arrived.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	headers http.Header
	metrics *Metrics
	tracer  trace.Tracer
}

type Option func(*Client)

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithHeader adds a header to every request. Per-call headers still win.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithHTTPClient uses a copy of hc as the underlying client, so its
// Transport and Jar are shared but the caller's Timeout is left alone.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

// New builds a client for baseURL. The http.Client is shared by all calls
// and safe for concurrent use.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		headers: http.Header{},
		tracer:  otel.Tracer("card-rewards-gateway/apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = timeout
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends one HTTP call. Empty query values are dropped; a nil body
// sends no payload.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any, headers http.Header) (json.RawMessage, error) {
	target := c.baseURL + path
	if q := cleanQuery(query); len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	route := routeOf(path)
	ctx, span := c.tracer.Start(ctx, method+" "+route, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", target),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	for k, vs := range headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordRequest(method, route, "error", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream unreachable")
		log.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestid.FromContext(ctx)).
			Msg("upstream request failed")
		return nil, &ConnectionError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordRequest(method, route, "error", elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "reading upstream body")
		return nil, &ConnectionError{Method: method, URL: target, Err: err}
	}

	c.metrics.RecordRequest(method, route, strconv.Itoa(resp.StatusCode), elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		herr := newHTTPError(resp.StatusCode, raw)
		span.SetStatus(codes.Error, herr.Message)
		log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("latency", elapsed).
			Str("error", herr.Message).
			Msg("upstream returned error")
		return nil, herr
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", elapsed).
		Msg("upstream request")

	return successBody(resp.StatusCode, raw), nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, query, nil, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, nil, body, nil)
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, path, nil, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Path joins a template prefix with escaped path parameters.
//
//	Path("/api/customers", 7, "credit-cards") == "/api/customers/7/credit-cards"
func Path(prefix string, segments ...any) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(fmt.Sprint(s)))
	}
	return b.String()
}

func cleanQuery(q url.Values) url.Values {
	if len(q) == 0 {
		return nil
	}
	out := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	return out
}

type fallbackEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// successBody returns the body verbatim when it is JSON, otherwise a
// {"message":"Success","status_code":n} envelope.
func successBody(status int, raw []byte) json.RawMessage {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	data, _ := json.Marshal(fallbackEnvelope{Message: "Success", StatusCode: status})
	return data
}
