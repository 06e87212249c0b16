package test

import (
	"context"
	"net/http"
	"testing"
	"time"

	goEdu "github.com/MrEthical07/goEdu"
	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/guard"
	"github.com/MrEthical07/goEdu/jwt"
	promexport "github.com/MrEthical07/goEdu/metrics/export/prometheus"
	"github.com/MrEthical07/goEdu/session"
	"github.com/MrEthical07/goEdu/transport"
)

// Guards the exported surface consumers compile against.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goEdu.New
	_ = goEdu.DefaultConfig
	_ = goEdu.LoadConfig

	var _ *goEdu.Client
	var _ *goEdu.Builder
	var _ goEdu.Config
	var _ goEdu.MetricsSnapshot
	var _ goEdu.EventSink = goEdu.NoOpSink{}
	var _ *api.API
	var _ session.Backend = session.NewMemoryBackend()
	var _ transport.Navigator = transport.NopNavigator{}
	var _ guard.TokenVerifier = (*jwt.HMAC)(nil)

	var _ error = goEdu.ErrUnauthorized
	var _ error = goEdu.ErrBusiness
	var _ error = goEdu.ErrTransport
	var _ error = goEdu.ErrValidation
	var _ error = goEdu.ErrInvalidConfig
	var _ error = goEdu.ErrClientClosed
	var _ error = goEdu.ErrNotStudent

	var _ func(*goEdu.Client, context.Context, api.Credentials) (session.Session, error) = (*goEdu.Client).Login
	var _ func(*goEdu.Client, context.Context) error = (*goEdu.Client).Logout
	var _ func(*goEdu.Client, context.Context) session.Session = (*goEdu.Client).Session
	var _ func(*goEdu.Client, context.Context) ([]session.JoinedClass, error) = (*goEdu.Client).RefreshStudentClasses
	var _ func(*goEdu.Client, context.Context, string) (api.Class, error) = (*goEdu.Client).JoinClass
	var _ func(session.Session, guard.Route, string, time.Time) guard.Decision = guard.Decide
	var _ func(guard.Resolver, []guard.Route) func(http.Handler) http.Handler = guard.Middleware
	var _ func(*goEdu.Client) *promexport.Exporter = promexport.NewExporter
}
