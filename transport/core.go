package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrEthical07/goEdu/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// DefaultTimeout bounds calls that do not set their own timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultLoginPath is where the navigator is sent on unauthorized responses.
	DefaultLoginPath = "/login"
	// DefaultMaxResponseBytes caps buffered response bodies.
	DefaultMaxResponseBytes int64 = 32 << 20
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "goEdu/1.0"
)

// SessionStore is the view of the session store the core needs.
type SessionStore interface {
	Get(ctx context.Context) session.Session
	Clear(ctx context.Context) error
}

// Config configures a Core.
type Config struct {
	// BaseURL is the API root including any path prefix, e.g.
	// "http://localhost:8080/api".
	BaseURL          string
	DefaultTimeout   time.Duration
	LoginPath        string
	UserAgent        string
	MaxResponseBytes int64
}

// Option configures optional collaborators of a Core.
type Option func(*Core)

// WithHTTPClient replaces the HTTP client. Its own Timeout should be zero or
// larger than every per-call timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(core *Core) {
		if c != nil {
			core.http = c
		}
	}
}

// WithObserver reports every settled call to o.
func WithObserver(o Observer) Option {
	return func(core *Core) {
		if o != nil {
			core.observer = o
		}
	}
}

// WithLogger sets the logger for request outcomes and session invalidation.
func WithLogger(l zerolog.Logger) Option {
	return func(core *Core) {
		core.log = l
	}
}

// Core performs requests against the backend. It is safe for concurrent use.
type Core struct {
	base     string
	cfg      Config
	store    SessionStore
	nav      Navigator
	http     *http.Client
	observer Observer
	log      zerolog.Logger
}

// New validates cfg and returns a Core. A nil navigator is replaced by
// NopNavigator.
func New(cfg Config, store SessionStore, nav Navigator, opts ...Option) (*Core, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: session store is required", ErrInvalidConfig)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base url must be absolute http(s), got %q", ErrInvalidConfig, cfg.BaseURL)
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = DefaultTimeout
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = DefaultLoginPath
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if nav == nil {
		nav = NopNavigator{}
	}

	c := &Core{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		cfg:      cfg,
		store:    store,
		nav:      nav,
		http:     &http.Client{},
		observer: nopObserver{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the effective configuration.
func (c *Core) Config() Config {
	return c.cfg
}

// URL returns the absolute URL of path with query appended.
func (c *Core) URL(path string, query url.Values) string {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do performs req and decodes the payload into out, which may be nil.
//
// For Enveloped requests a body carrying a "code" key is unwrapped: the number 0
// decodes data into out, any other value (including strings and null) fails with
// *BusinessError, or *UnauthorizedError for 401. Bodies without the key are
// decoded as is. Raw requests are decoded as JSON without unwrapping.
func (c *Core) Do(ctx context.Context, req Request, out any) error {
	start := time.Now()
	res, oc, err := c.exchange(ctx, req)
	if err == nil {
		err = c.interpret(ctx, req, res, out, &oc)
	}
	c.settle(start, &oc, err)
	return err
}

// DoRaw performs req and returns a successful body untouched. Failures follow the
// same rules as Do.
func (c *Core) DoRaw(ctx context.Context, req Request) (*RawResponse, error) {
	start := time.Now()
	res, oc, err := c.exchange(ctx, req)
	if err == nil && !success(res.Status) {
		err = c.failure(ctx, res, &oc)
	}
	c.settle(start, &oc, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Core) exchange(ctx context.Context, req Request) (*RawResponse, Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	target := c.URL(req.Path, req.Query)
	oc := Outcome{Method: method, Path: req.Path, RequestID: requestID}

	body, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, oc, &TransportError{Method: method, URL: target, Err: err}
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		if rc, ok := body.(io.Closer); ok {
			_ = rc.Close()
		}
		return nil, oc, &TransportError{Method: method, URL: target, Err: err}
	}
	if sized, ok := body.(interface{ Len() int64 }); ok {
		httpReq.ContentLength = sized.Len()
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if sess := c.store.Get(ctx); sess.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, oc, &TransportError{Method: method, URL: target, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()
	oc.Status = resp.StatusCode

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, oc, &TransportError{Method: method, URL: target, Err: err}
	}
	if int64(len(data)) > c.cfg.MaxResponseBytes {
		return nil, oc, &TransportError{Method: method, URL: target, Err: ErrResponseTooLarge}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		msg := gjson.GetBytes(data, "message").String()
		c.invalidate(ctx, &oc)
		return nil, oc, &UnauthorizedError{Status: resp.StatusCode, Code: http.StatusUnauthorized, Message: msg}
	}

	return &RawResponse{
		Status:   resp.StatusCode,
		Header:   resp.Header,
		Body:     data,
		FileName: fileName(resp.Header.Get("Content-Disposition")),
	}, oc, nil
}

func (c *Core) interpret(ctx context.Context, req Request, res *RawResponse, out any, oc *Outcome) error {
	if req.Kind == Raw {
		if !success(res.Status) {
			return c.failure(ctx, res, oc)
		}
		return decode(res.Body, out)
	}

	code := envelopeCode(res.Body)
	if !code.Exists() {
		if !success(res.Status) {
			return statusError(res.Body, res.Status)
		}
		return decode(res.Body, out)
	}
	if err := c.rejection(ctx, res, code, oc); err != nil {
		return err
	}
	if !success(res.Status) {
		return statusError(res.Body, res.Status)
	}
	return decode([]byte(gjson.GetBytes(res.Body, "data").Raw), out)
}

// failure translates a non-2xx response that was not a transport-level 401.
func (c *Core) failure(ctx context.Context, res *RawResponse, oc *Outcome) error {
	if code := envelopeCode(res.Body); code.Exists() {
		if err := c.rejection(ctx, res, code, oc); err != nil {
			return err
		}
	}
	return statusError(res.Body, res.Status)
}

// rejection returns the error an envelope code stands for, or nil when the
// code is the number 0. Codes that are not numbers count as rejections.
func (c *Core) rejection(ctx context.Context, res *RawResponse, code gjson.Result, oc *Outcome) error {
	numeric := code.Type == gjson.Number
	if numeric && code.Num == 0 {
		return nil
	}
	msg := gjson.GetBytes(res.Body, "message").String()
	if numeric && code.Num == http.StatusUnauthorized {
		c.invalidate(ctx, oc)
		return &UnauthorizedError{Status: res.Status, Code: http.StatusUnauthorized, Message: msg}
	}
	if msg == "" {
		msg = fmt.Sprintf("request rejected with code %s", code.Raw)
	}
	return &BusinessError{Code: int(code.Int()), Message: msg, Status: res.Status}
}

// invalidate clears the session and redirects to the login path, in that order.
func (c *Core) invalidate(ctx context.Context, oc *Outcome) {
	// Clearing must not be cut short by the request deadline.
	clearCtx := context.WithoutCancel(ctx)
	if err := c.store.Clear(clearCtx); err != nil {
		c.log.Warn().Err(err).Str("request_id", oc.RequestID).Msg("session clear failed")
	}
	oc.SessionCleared = true
	c.log.Warn().
		Str("method", oc.Method).
		Str("path", oc.Path).
		Str("request_id", oc.RequestID).
		Msg("session invalidated by unauthorized response")
	c.nav.Navigate(clearCtx, c.cfg.LoginPath)
}

func (c *Core) settle(start time.Time, oc *Outcome, err error) {
	oc.Duration = time.Since(start)
	oc.Err = err
	oc.Result = classify(err)

	ev := c.log.Debug()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Str("method", oc.Method).
		Str("path", oc.Path).
		Int("status", oc.Status).
		Str("result", oc.Result.String()).
		Dur("duration", oc.Duration).
		Str("request_id", oc.RequestID).
		Msg("request settled")

	c.observer.ObserveRequest(*oc)
}

func (c *Core) encodeBody(req Request) (io.Reader, string, error) {
	if req.Form != nil && req.Body != nil {
		return nil, "", errors.New("request has both a JSON body and a form")
	}
	if req.Form != nil {
		body, contentType, size, err := req.Form.open()
		if err != nil {
			return nil, "", err
		}
		if req.Form.OnProgress != nil {
			body = &progressReader{r: body, total: size, fn: req.Form.OnProgress}
		}
		return &sizedReader{ReadCloser: body, n: size}, contentType, nil
	}
	if req.Body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// sizedReader lets the request carry a Content-Length for streamed bodies. A
// negative n sends the body chunked.
type sizedReader struct {
	io.ReadCloser
	n int64
}

func (s *sizedReader) Len() int64 {
	return s.n
}

func classify(err error) Result {
	var te *TransportError
	switch {
	case err == nil:
		return ResultSuccess
	case errors.As(err, &te):
		if te.Timeout() {
			return ResultTimeout
		}
		return ResultTransport
	case errors.Is(err, ErrUnauthorized):
		return ResultUnauthorized
	default:
		return ResultBusiness
	}
}

func envelopeCode(body []byte) gjson.Result {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return gjson.Result{}
	}
	return gjson.GetBytes(trimmed, "code")
}

func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError keeps the body's message when it has one.
func statusError(body []byte, status int) error {
	msg := ""
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		msg = gjson.GetBytes(trimmed, "message").String()
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &BusinessError{Code: status, Message: msg, Status: status}
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func fileName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
