// Package logging provides structured logging for the assertion
// engine with console, JSON, zap and multi-destination output.
package logging

// Logger defines the interface for structured assertion logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogFailure records an assertion whose terminal action
	// acted on a detected condition.
	LogFailure(failure FailureLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// FailureLog captures the details of a fired assertion.
type FailureLog struct {
	Timestamp  string `json:"timestamp"`
	Action     string `json:"action"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ErrorCount int    `json:"error_count"`
	Kind       string `json:"kind,omitempty"`
	File       string `json:"file,omitempty"`
	Line       int    `json:"line,omitempty"`
	Function   string `json:"function,omitempty"`
}

// Fields flattens the failure into log fields.
func (f FailureLog) Fields() []Field {
	fields := []Field{
		StringField("action", f.Action),
		StringField("subject", f.Subject),
		IntField("error_count", f.ErrorCount),
	}
	if f.Kind != "" {
		fields = append(fields, StringField("kind", f.Kind))
	}
	if f.File != "" {
		fields = append(fields,
			StringField("file", f.File),
			IntField("line", f.Line),
			StringField("function", f.Function),
		)
	}
	return fields
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name as written in configuration
// files into a LogLevel. Unknown names fall back to LevelInfo.
func ParseLevel(name string) LogLevel {
	switch name {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
