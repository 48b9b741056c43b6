package monitor

import (
	"fmt"
	"sync"
	"time"

	"digital.vasic.assertions/pkg/logging"
)

// EventCollector captures assertion events.
type EventCollector struct {
	mu       sync.RWMutex
	events   []AssertionEvent
	handlers []func(AssertionEvent)
	stats    CollectorStats
	limit    int
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Total     int           `json:"total"`
	Fired     int           `json:"fired"`
	Logs      int           `json:"logs"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// DefaultEventLimit is the number of events kept in memory.
const DefaultEventLimit = 1024

// NewEventCollector creates a collector keeping at most limit
// events; limit <= 0 uses DefaultEventLimit.
func NewEventCollector(limit ...int) *EventCollector {
	n := DefaultEventLimit
	if len(limit) > 0 && limit[0] > 0 {
		n = limit[0]
	}
	return &EventCollector{
		events: make([]AssertionEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
		limit:  n,
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(AssertionEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers. The oldest
// events are dropped once the limit is reached.
func (c *EventCollector) Emit(event AssertionEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	if len(c.events) == c.limit {
		copy(c.events, c.events[1:])
		c.events = c.events[:len(c.events)-1]
	}
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventFired:
		c.stats.Fired++
	case EventLog:
		c.stats.Logs++
	}
	handlers := make([]func(AssertionEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Events returns a copy of the retained events.
func (c *EventCollector) Events() []AssertionEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]AssertionEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}

// Logger returns a logging.Logger that feeds the collector, for use
// with assertion.WithLogger.
func (c *EventCollector) Logger() logging.Logger {
	return &collectorLogger{collector: c}
}

type collectorLogger struct {
	collector *EventCollector
	fields    []logging.Field
}

func (l *collectorLogger) log(level logging.LogLevel, msg string, fields []logging.Field) {
	l.collector.Emit(AssertionEvent{
		Type:    EventLog,
		Level:   level.String(),
		Message: msg,
		Fields:  fieldMap(l.fields, fields),
	})
}

func (l *collectorLogger) Info(msg string, fields ...logging.Field) {
	l.log(logging.LevelInfo, msg, fields)
}

func (l *collectorLogger) Warn(msg string, fields ...logging.Field) {
	l.log(logging.LevelWarn, msg, fields)
}

func (l *collectorLogger) Error(msg string, fields ...logging.Field) {
	l.log(logging.LevelError, msg, fields)
}

func (l *collectorLogger) Debug(msg string, fields ...logging.Field) {
	l.log(logging.LevelDebug, msg, fields)
}

func (l *collectorLogger) WithFields(fields ...logging.Field) logging.Logger {
	merged := make([]logging.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &collectorLogger{collector: l.collector, fields: merged}
}

func (l *collectorLogger) LogFailure(failure logging.FailureLog) {
	event := AssertionEvent{
		Type:       EventFired,
		Level:      logging.LevelWarn.String(),
		Action:     failure.Action,
		Subject:    failure.Subject,
		Message:    failure.Message,
		Kind:       failure.Kind,
		ErrorCount: failure.ErrorCount,
		Fields:     fieldMap(l.fields, nil),
	}
	if failure.File != "" {
		event.Location = fmt.Sprintf("%s:%d (%s)", failure.File, failure.Line, failure.Function)
	}
	if ts, err := time.Parse(time.RFC3339, failure.Timestamp); err == nil {
		event.Timestamp = ts
	}
	l.collector.Emit(event)
}

func (l *collectorLogger) Close() error { return nil }

func fieldMap(base, extra []logging.Field) map[string]any {
	if len(base)+len(extra) == 0 {
		return nil
	}
	m := make(map[string]any, len(base)+len(extra))
	for _, f := range base {
		m[f.Key] = f.Value
	}
	for _, f := range extra {
		m[f.Key] = f.Value
	}
	return m
}
