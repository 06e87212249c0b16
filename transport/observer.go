package transport

import "time"

// Result classifies how a call settled.
type Result uint8

const (
	ResultSuccess Result = iota
	ResultBusiness
	ResultUnauthorized
	ResultTransport
	ResultTimeout
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultBusiness:
		return "business_error"
	case ResultUnauthorized:
		return "unauthorized"
	case ResultTransport:
		return "transport_error"
	case ResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Outcome describes one settled call.
type Outcome struct {
	Method    string
	Path      string
	Status    int
	Result    Result
	Duration  time.Duration
	RequestID string
	// SessionCleared is set when the call invalidated the session.
	SessionCleared bool
	// Err is nil on success.
	Err error
}

// Observer is notified synchronously after every call. Implementations must be
// cheap and safe for concurrent use.
type Observer interface {
	ObserveRequest(Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Outcome)

func (f ObserverFunc) ObserveRequest(o Outcome) {
	f(o)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(Outcome) {}
