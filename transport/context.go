package transport

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches the id sent as X-Request-ID by requests made with ctx.
// Without one the core generates a random id per request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
