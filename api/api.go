package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MrEthical07/goEdu/transport"
)

const (
	// DefaultUploadTimeout bounds multipart uploads.
	DefaultUploadTimeout = 60 * time.Second
	// DefaultAITimeout bounds AI assistant calls.
	DefaultAITimeout = 120 * time.Second
)

// Doer executes requests. *transport.Core implements it.
type Doer interface {
	Do(ctx context.Context, req transport.Request, out any) error
	DoRaw(ctx context.Context, req transport.Request) (*transport.RawResponse, error)
	URL(path string, query url.Values) string
}

// RejectFunc is told about calls refused before any I/O.
type RejectFunc func(op string, err *transport.ValidationError)

type options struct {
	uploadTimeout time.Duration
	aiTimeout     time.Duration
	onReject      RejectFunc
}

// Option configures the API modules.
type Option func(*options)

// WithUploadTimeout overrides DefaultUploadTimeout.
func WithUploadTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.uploadTimeout = d
		}
	}
}

// WithAITimeout overrides DefaultAITimeout.
func WithAITimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.aiTimeout = d
		}
	}
}

// WithRejectHook reports validation failures to fn.
func WithRejectHook(fn RejectFunc) Option {
	return func(o *options) {
		o.onReject = fn
	}
}

// API groups every resource module.
type API struct {
	Auth          *Auth
	Users         *Users
	Classes       *Classes
	Courses       *Courses
	Assignments   *Assignments
	Submissions   *Submissions
	Enrollments   *Enrollments
	Discussions   *Discussions
	Comments      *Comments
	Cloud         *Cloud
	Statistics    *Statistics
	Notifications *Notifications
	AI            *AI
	Uploads       *Uploads
}

// New returns the modules bound to d.
func New(d Doer, opts ...Option) *API {
	o := options{
		uploadTimeout: DefaultUploadTimeout,
		aiTimeout:     DefaultAITimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	c := &caller{d: d, opts: o}

	return &API{
		Auth:          &Auth{c: c},
		Users:         &Users{c: c},
		Classes:       &Classes{c: c},
		Courses:       &Courses{c: c},
		Assignments:   &Assignments{c: c},
		Submissions:   &Submissions{c: c},
		Enrollments:   &Enrollments{c: c},
		Discussions:   &Discussions{c: c},
		Comments:      &Comments{c: c},
		Cloud:         &Cloud{c: c},
		Statistics:    &Statistics{c: c},
		Notifications: &Notifications{c: c},
		AI:            &AI{c: c},
		Uploads:       &Uploads{c: c},
	}
}

type caller struct {
	d    Doer
	opts options
}

func (c *caller) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.d.Do(ctx, transport.Request{Method: http.MethodGet, Path: path, Query: q}, out)
}

func (c *caller) post(ctx context.Context, path string, body any, out any) error {
	return c.d.Do(ctx, transport.Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *caller) put(ctx context.Context, path string, q url.Values, body any, out any) error {
	return c.d.Do(ctx, transport.Request{Method: http.MethodPut, Path: path, Query: q, Body: body}, out)
}

func (c *caller) delete(ctx context.Context, path string, out any) error {
	return c.d.Do(ctx, transport.Request{Method: http.MethodDelete, Path: path}, out)
}

func (c *caller) upload(ctx context.Context, path string, form *transport.Multipart, out any) error {
	return c.d.Do(ctx, transport.Request{
		Method:  http.MethodPost,
		Path:    path,
		Form:    form,
		Timeout: c.opts.uploadTimeout,
	}, out)
}

func (c *caller) reject(op string, err *transport.ValidationError) error {
	if c.opts.onReject != nil {
		c.opts.onReject(op, err)
	}
	return err
}

// path joins segments, formatting int64 ids in base 10 and escaping strings.
func path(segments ...any) string {
	out := ""
	for _, s := range segments {
		switch v := s.(type) {
		case int64:
			out += "/" + strconv.FormatInt(v, 10)
		case string:
			out += "/" + url.PathEscape(v)
		}
	}
	return out
}

func (p Params) values() url.Values {
	if len(p) == 0 {
		return nil
	}
	q := make(url.Values, len(p))
	for k, v := range p {
		q.Set(k, v)
	}
	return q
}

func query(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		q.Set(pairs[i], pairs[i+1])
	}
	return q
}

func itoa(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
