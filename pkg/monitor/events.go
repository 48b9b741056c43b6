// Package monitor collects fired assertions and serves them to live
// dashboards over Server-Sent Events and WebSocket.
package monitor

import "time"

// EventType represents the type of assertion event.
type EventType string

const (
	// EventFired is emitted when a terminal action acted on a
	// detected condition.
	EventFired EventType = "fired"
	// EventLog carries a plain log entry.
	EventLog EventType = "log"
)

// AssertionEvent is one entry of the live feed.
type AssertionEvent struct {
	Type       EventType      `json:"type"`
	Level      string         `json:"level,omitempty"`
	Action     string         `json:"action,omitempty"`
	Subject    string         `json:"subject,omitempty"`
	Message    string         `json:"message"`
	Kind       string         `json:"kind,omitempty"`
	ErrorCount int            `json:"error_count,omitempty"`
	Location   string         `json:"location,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
