package transport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Kind selects how a response body is interpreted.
type Kind uint8

const (
	// Enveloped endpoints answer with {code, message, data}.
	Enveloped Kind = iota
	// Raw endpoints answer with a body that must be passed through untouched,
	// such as file downloads.
	Raw
)

func (k Kind) String() string {
	switch k {
	case Enveloped:
		return "enveloped"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Request describes one call relative to the configured base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when non-nil. Mutually exclusive with Form.
	Body any
	Form *Multipart
	Kind Kind
	// Timeout overrides the configured default when positive.
	Timeout time.Duration
}

// Envelope is the standard response wrapper.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RawResponse is a successful response returned without unwrapping.
type RawResponse struct {
	Status int
	Header http.Header
	Body   []byte
	// FileName is taken from Content-Disposition when present.
	FileName string
}
