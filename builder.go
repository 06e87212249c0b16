package goEdu

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/internal/events"
	"github.com/MrEthical07/goEdu/internal/logging"
	"github.com/MrEthical07/goEdu/session"
	"github.com/MrEthical07/goEdu/transport"
)

// Builder assembles a Client. Configure it during initialization and call Build
// once.
type Builder struct {
	config Config

	store     *session.Store
	redis     redis.UniversalClient
	navigator transport.Navigator
	http      *http.Client
	logger    *zerolog.Logger
	sink      EventSink
	now       func() time.Time

	built bool
}

// New returns a Builder holding the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL overrides API.BaseURL.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithSessionStore uses store instead of opening the configured backend.
func (b *Builder) WithSessionStore(store *session.Store) *Builder {
	b.store = store
	return b
}

// WithRedis supplies the client for the redis session backend. The caller keeps
// ownership; Close does not close it.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithNavigator receives the login path after the session is invalidated.
func (b *Builder) WithNavigator(nav transport.Navigator) *Builder {
	b.navigator = nav
	return b
}

func (b *Builder) WithHTTPClient(c *http.Client) *Builder {
	b.http = c
	return b
}

// WithLogger replaces the logger built from Config.Log.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.logger = &l
	return b
}

// WithEventSink routes lifecycle events to sink. Events are only dispatched when
// Config.Events.Enabled is set.
func (b *Builder) WithEventSink(sink EventSink) *Builder {
	b.sink = sink
	return b
}

// WithClock replaces time.Now for session expiry checks and event timestamps.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and wires the client.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// -------- LOGGER --------
	var log zerolog.Logger
	if b.logger != nil {
		log = *b.logger
	} else {
		l, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		log = l
	}

	// -------- SESSION STORE --------
	c := &Client{
		config: cfg,
		log:    log,
		now:    time.Now,
	}
	if b.now != nil {
		c.now = b.now
	}

	if b.store != nil {
		c.store = b.store
	} else {
		store, owned, err := openStore(cfg.Session, b.redis, log)
		if err != nil {
			return nil, err
		}
		c.store = store
		c.ownedRedis = owned
	}

	// -------- METRICS / EVENTS --------
	c.metrics = NewMetrics(cfg.Metrics)
	sink := b.sink
	if sink == nil {
		sink = events.NewLogSink(log)
	}
	c.events = events.NewDispatcher(events.Config{
		Enabled:    cfg.Events.Enabled,
		BufferSize: cfg.Events.BufferSize,
		DropIfFull: cfg.Events.DropIfFull,
	}, sink)

	// -------- TRANSPORT --------
	nav := b.navigator
	if nav == nil {
		nav = transport.NopNavigator{}
	}
	core, err := transport.New(transport.Config{
		BaseURL:          cfg.API.BaseURL,
		DefaultTimeout:   cfg.Timeouts.Default,
		LoginPath:        cfg.API.LoginPath,
		UserAgent:        cfg.API.UserAgent,
		MaxResponseBytes: cfg.API.MaxResponseBytes,
	}, c.store, c.navigate(nav),
		transport.WithHTTPClient(b.http),
		transport.WithObserver(transport.ObserverFunc(c.observe)),
		transport.WithLogger(log),
	)
	if err != nil {
		c.release()
		return nil, err
	}
	c.core = core

	// -------- API MODULES --------
	c.API = api.New(core,
		api.WithUploadTimeout(cfg.Timeouts.Upload),
		api.WithAITimeout(cfg.Timeouts.AI),
		api.WithRejectHook(c.rejected),
	)

	b.built = true
	return c, nil
}

// openStore opens the configured session backend. The returned redis client is
// non-nil when the store owns it.
func openStore(cfg SessionConfig, shared redis.UniversalClient, log zerolog.Logger) (*session.Store, redis.UniversalClient, error) {
	opt := session.WithLogger(log)

	switch cfg.Backend {
	case "", BackendMemory:
		return session.NewMemoryStore(opt), nil, nil

	case BackendFile:
		backend, err := session.NewFileBackend(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return session.NewStore(backend, opt), nil, nil

	case BackendRedis:
		client := shared
		var owned redis.UniversalClient
		if client == nil {
			owned = redis.NewUniversalClient(&redis.UniversalOptions{
				Addrs: []string{cfg.RedisAddr},
			})
			client = owned
		}
		backend := session.NewRedisBackend(client, cfg.RedisPrefix, cfg.Profile, cfg.TTL)
		return session.NewStore(backend, opt), owned, nil

	default:
		return nil, nil, fmt.Errorf("%w: unsupported session backend %q", ErrInvalidConfig, cfg.Backend)
	}
}
