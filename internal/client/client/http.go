package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/cookies"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/google/uuid"
)

const (
	headerCSRF        = "X-CSRFToken"
	headerRequestedBy = "X-Requested-With"
	headerRequestID   = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// RequestOptions describes a single call made through HTTPClient.Request.
//
// Body is JSON-encoded unless it is a []byte or an io.Reader, which are sent
// as-is. Headers override the defaults.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Response is a successful (2xx) response. For JSON responses Data holds the
// decoded value; otherwise only the raw Body is set.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Data       any
	JSON       bool
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if !r.JSON {
		return malformed("expected a JSON body, got %q", r.Header.Get("Content-Type"))
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// HTTPClient talks to the diary backend with cookie credentials. It is safe
// for sequential use by one front-end; requests are not coordinated.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	jar     *cookies.Jar
	log     logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithTransport replaces the http.RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.http.Transport = rt }
}

// NewHTTPClient creates a client for baseURL. A nil jar gets an in-memory one.
func NewHTTPClient(baseURL string, jar *cookies.Jar, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if jar == nil {
		jar, err = cookies.NewJar(u, nil)
		if err != nil {
			return nil, err
		}
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		jar:     jar,
		log:     logging.Nop(),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the backend base URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// IsMutating reports whether method needs a CSRF token.
func IsMutating(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// EnsureCSRFToken performs the credentialed GET whose only purpose is to make
// the server set the csrftoken cookie. It returns the cookie value, "" if the
// server still did not set one.
func (c *HTTPClient) EnsureCSRFToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(PathUserInfo), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCSRFBootstrap, err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(headerRequestedBy, "XMLHttpRequest")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %v", ErrCSRFBootstrap, ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrCSRFBootstrap, resp.StatusCode)
	}

	token, _ := c.jar.Get(cookies.CSRFCookie)
	return token, nil
}

// Request sends one request to path (relative to the base URL) and returns
// the 2xx response. Non-2xx responses fail with *HTTPError, transport
// failures with an error wrapping ErrUnavailable.
//
// Mutating methods refresh the CSRF cookie first and send it back in the
// X-CSRFToken header. A failed refresh is logged and the request still goes
// out.
func (c *HTTPClient) Request(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	mutating := IsMutating(method)

	if mutating {
		if _, err := c.EnsureCSRFToken(ctx); err != nil {
			c.log.Warn(ctx, "failed to get CSRF token", "error", err)
		}
	}

	body, contentType, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	reqID := c.newID()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(headerRequestedBy, "XMLHttpRequest")
	req.Header.Set(headerRequestID, reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if mutating {
		token, ok := c.jar.Get(cookies.CSRFCookie)
		if !ok {
			c.log.Warn(ctx, "no CSRF token found for mutating request", "method", method, "path", path)
		}
		req.Header.Set(headerCSRF, token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	log := c.log.With("request_id", reqID, "method", method, "path", path)
	log.Debug(ctx, "sending request",
		"url", req.URL.String(),
		"headers", headerNames(req.Header),
		"csrftoken", presence(c.jar.Has(cookies.CSRFCookie)),
		"sessionid", presence(c.jar.Has(cookies.SessionCookie)),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		log.Error(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), contentTypeJSON)
	log.Debug(ctx, "received response",
		"status", resp.StatusCode,
		"headers", headerNames(resp.Header),
		"json", isJSON,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := newHTTPError(resp.StatusCode, isJSON, data)
		log.Debug(ctx, "request rejected", "status", resp.StatusCode, "message", herr.Message)
		return nil, herr
	}

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data, JSON: isJSON}
	if isJSON {
		if err := json.Unmarshal(data, &out.Data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}
	return out, nil
}

func (c *HTTPClient) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL.String() + path
}

// ClearSession expires the session and CSRF cookies and persists the jar.
func (c *HTTPClient) ClearSession(ctx context.Context) error {
	c.jar.Clear(cookies.SessionCookie, cookies.CSRFCookie)
	return c.jar.Save(ctx)
}

// SaveSession persists the jar.
func (c *HTTPClient) SaveSession(ctx context.Context) error {
	return c.jar.Save(ctx)
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() {
	c.http.CloseIdleConnections()
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case io.Reader:
		return b, "", nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(raw), contentTypeJSON, nil
}

func headerNames(h http.Header) []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}
