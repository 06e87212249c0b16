package goEdu

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/internal/events"
	"github.com/MrEthical07/goEdu/jwt"
	"github.com/MrEthical07/goEdu/session"
	"github.com/MrEthical07/goEdu/transport"
)

// Client is the signed-in view of the backend. Every api module is reachable
// through the embedded *api.API (c.Classes, c.Cloud, ...). A Client is safe for
// concurrent use.
type Client struct {
	*api.API

	config     Config
	core       *transport.Core
	store      *session.Store
	metrics    *Metrics
	events     *events.Dispatcher
	log        zerolog.Logger
	ownedRedis redis.UniversalClient
	now        func() time.Time

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return cloneConfig(c.config)
}

// Store exposes the session store the client reads credentials from.
func (c *Client) Store() *session.Store {
	return c.store
}

// URL resolves a backend path against the configured base URL.
func (c *Client) URL(path string) string {
	return c.core.URL(path, nil)
}

// Login signs in and persists the resulting session. Identity fields missing
// from the response are filled from the token claims, and the token expiry is
// recorded so expired sessions are detected locally.
func (c *Client) Login(ctx context.Context, cred api.Credentials) (session.Session, error) {
	if c.closed.Load() {
		return session.Session{}, ErrClientClosed
	}

	res, err := c.Auth.Login(ctx, cred)
	if err != nil {
		c.metrics.Inc(MetricLoginFailures)
		c.emit(ctx, Event{Type: EventLogin, Success: false, Error: err.Error()})
		return session.Session{}, err
	}
	if res.Token == "" {
		c.metrics.Inc(MetricLoginFailures)
		err := errors.New("login response carries no token")
		c.emit(ctx, Event{Type: EventLogin, Success: false, Error: err.Error()})
		return session.Session{}, err
	}

	sess := c.sessionFrom(res)
	if err := c.store.Set(ctx, sess); err != nil {
		c.metrics.Inc(MetricLoginFailures)
		return session.Session{}, fmt.Errorf("persist session: %w", err)
	}

	c.metrics.Inc(MetricLogins)
	c.emit(ctx, Event{Type: EventLogin, UserID: sess.UserID, Success: true})
	c.log.Info().Int64("user_id", sess.UserID).Str("role", string(sess.Role)).Msg("signed in")
	return sess, nil
}

func (c *Client) sessionFrom(res api.AuthResult) session.Session {
	sess := session.Session{
		Token:    res.Token,
		UserID:   res.UserID,
		Username: res.Username,
		Role:     session.Role(res.Role),
		RealName: res.RealName,
		Email:    res.Email,
		Phone:    res.Phone,
	}

	claims, err := jwt.Inspect(res.Token)
	if err != nil {
		c.log.Debug().Err(err).Msg("token claims unreadable")
		return sess
	}
	if sess.UserID == 0 {
		sess.UserID = claims.UserID
	}
	if sess.Username == "" {
		sess.Username = claims.Username
	}
	if sess.Role == "" {
		sess.Role = session.Role(claims.Role)
	}
	if !claims.ExpiresAt.IsZero() {
		sess.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return sess
}

// Register creates an account. The stored session is not changed; sign in with
// Login afterwards.
func (c *Client) Register(ctx context.Context, reg api.Registration) (api.AuthResult, error) {
	if c.closed.Load() {
		return api.AuthResult{}, ErrClientClosed
	}
	return c.Auth.Register(ctx, reg)
}

// Logout ends the session on the server when possible and always clears it
// locally. Only a failure to clear the local session is returned.
func (c *Client) Logout(ctx context.Context) error {
	sess := c.store.Get(ctx)
	if sess.Authenticated() {
		if err := c.Auth.Logout(ctx); err != nil {
			c.log.Debug().Err(err).Msg("server logout failed")
		}
	}

	if err := c.store.Clear(context.WithoutCancel(ctx)); err != nil {
		c.emit(ctx, Event{Type: EventLogout, UserID: sess.UserID, Success: false, Error: err.Error()})
		return err
	}

	c.metrics.Inc(MetricLogouts)
	c.emit(ctx, Event{Type: EventLogout, UserID: sess.UserID, Success: true})
	return nil
}

// Session returns the stored session, or the empty session.
func (c *Client) Session(ctx context.Context) session.Session {
	return c.store.Get(ctx)
}

// Active reports whether a non-expired signed-in identity is stored.
func (c *Client) Active(ctx context.Context) bool {
	return c.store.Get(ctx).Active(c.now())
}

// StudentClasses returns the cached classes of the signed-in student.
func (c *Client) StudentClasses(ctx context.Context) []session.JoinedClass {
	return c.store.StudentClasses(ctx)
}

// RefreshStudentClasses reloads the joined classes of the signed-in student from
// the backend and replaces the cache.
func (c *Client) RefreshStudentClasses(ctx context.Context) ([]session.JoinedClass, error) {
	sess := c.store.Get(ctx)
	if _, role, ok := sess.Identity(); !ok || role != session.RoleStudent {
		return nil, ErrNotStudent
	}

	classes, err := c.Classes.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	joined := make([]session.JoinedClass, 0, len(classes))
	for _, cl := range classes {
		joined = append(joined, joinedClass(cl))
	}
	if err := c.store.SaveStudentClasses(ctx, joined); err != nil {
		return nil, err
	}
	return joined, nil
}

// JoinClass joins a class by invite code and adds it to the student cache.
func (c *Client) JoinClass(ctx context.Context, inviteCode string) (api.Class, error) {
	cl, err := c.Classes.Join(ctx, inviteCode)
	if err != nil {
		return cl, err
	}

	cached := c.store.StudentClasses(ctx)
	for _, jc := range cached {
		if jc.ID == cl.ID {
			return cl, nil
		}
	}
	cached = append(cached, joinedClass(cl))
	if err := c.store.SaveStudentClasses(ctx, cached); err != nil {
		c.log.Warn().Err(err).Int64("class_id", cl.ID).Msg("joined class not cached")
	}
	return cl, nil
}

func joinedClass(cl api.Class) session.JoinedClass {
	code := cl.Code
	if code == "" {
		code = cl.InviteCode
	}
	return session.JoinedClass{
		ID:        cl.ID,
		Name:      cl.Name,
		Code:      code,
		TeacherID: cl.TeacherID,
	}
}

// MetricsSnapshot copies the client counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// EventsDropped returns the number of events lost to backpressure.
func (c *Client) EventsDropped() uint64 {
	return c.events.Dropped()
}

// Close flushes pending events and releases resources the client opened.
// Calls after Close fail with ErrClientClosed where noted.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.closeErr = c.release()
	})
	return c.closeErr
}

func (c *Client) release() error {
	c.events.Close()
	if c.ownedRedis != nil {
		return c.ownedRedis.Close()
	}
	return nil
}

func (c *Client) emit(ctx context.Context, ev Event) {
	if c.events == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = c.now()
	}
	timeout := c.config.Events.EmitTimeout
	if timeout <= 0 {
		timeout = defaultEmitTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	c.events.Emit(ctx, ev)
}

// observe turns every settled call into metrics and failure events.
func (c *Client) observe(o transport.Outcome) {
	c.metrics.Inc(MetricRequests)
	c.metrics.Observe(MetricRequestLatency, o.Duration)

	switch o.Result {
	case transport.ResultSuccess:
		c.metrics.Inc(MetricRequestSuccess)
	case transport.ResultBusiness:
		c.metrics.Inc(MetricBusinessErrors)
	case transport.ResultUnauthorized:
		c.metrics.Inc(MetricUnauthorized)
	case transport.ResultTransport:
		c.metrics.Inc(MetricTransportErrors)
	case transport.ResultTimeout:
		c.metrics.Inc(MetricTimeouts)
	}

	ctx := context.Background()
	if o.SessionCleared {
		c.metrics.Inc(MetricSessionsCleared)
		c.emit(ctx, Event{
			Type:      EventSessionCleared,
			RequestID: o.RequestID,
			Method:    o.Method,
			Path:      o.Path,
			Status:    o.Status,
			Success:   true,
		})
	}
	if o.Err != nil {
		c.emit(ctx, Event{
			Type:      EventRequestFailed,
			RequestID: o.RequestID,
			Method:    o.Method,
			Path:      o.Path,
			Status:    o.Status,
			Success:   false,
			Error:     o.Err.Error(),
		})
	}
}

func (c *Client) navigate(next transport.Navigator) transport.Navigator {
	return transport.NavigatorFunc(func(ctx context.Context, path string) {
		c.metrics.Inc(MetricNavigations)
		next.Navigate(ctx, path)
	})
}

func (c *Client) rejected(op string, err *transport.ValidationError) {
	c.metrics.Inc(MetricValidationErrors)
	c.log.Debug().Err(err).Str("op", op).Msg("call rejected before sending")
}
