package goEdu

import "github.com/MrEthical07/goEdu/internal/events"

// Event types emitted by a Client.
const (
	EventLogin          = "login"
	EventLogout         = "logout"
	EventSessionCleared = "session_cleared"
	EventRequestFailed  = "request_failed"
)

type (
	// Event is one client lifecycle record.
	Event = events.Event
	// EventSink receives events from the dispatcher goroutine.
	EventSink      = events.Sink
	NoOpSink       = events.NoOpSink
	ChannelSink    = events.ChannelSink
	JSONWriterSink = events.JSONWriterSink
	LogSink        = events.LogSink
)

var (
	NewChannelSink    = events.NewChannelSink
	NewJSONWriterSink = events.NewJSONWriterSink
	NewLogSink        = events.NewLogSink
)
