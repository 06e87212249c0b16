package api

import (
	"context"
	"net/http"

	"github.com/MrEthical07/goEdu/transport"
)

// AI talks to the backend's assistant. Answers can take long, so Chat runs with
// the AI timeout instead of the default.
type AI struct {
	c *caller
}

func (a *AI) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var out ChatResponse
	err := a.c.d.Do(ctx, transport.Request{
		Method:  http.MethodPost,
		Path:    "/ai/chat",
		Body:    req,
		Timeout: a.c.opts.aiTimeout,
	}, &out)
	return out, err
}

// Models lists the assistant models the backend offers.
func (a *AI) Models(ctx context.Context) ([]string, error) {
	var out []string
	err := a.c.get(ctx, "/ai/models", nil, &out)
	return out, err
}
