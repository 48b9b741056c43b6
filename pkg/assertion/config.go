package assertion

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"digital.vasic.assertions/pkg/env"
	"digital.vasic.assertions/pkg/logging"
	"digital.vasic.assertions/pkg/metrics"
)

// DefaultOrSeparator joins messages merged with OrWith.
const DefaultOrSeparator = ". "

// Config holds the package-wide assertion settings.
type Config struct {
	// OrSeparator joins messages merged with OrWith when no
	// separator is passed.
	OrSeparator string `yaml:"or_separator"`
	// Trace captures the caller location of every entry point.
	Trace bool `yaml:"trace"`
	// LogLevel is the level fired terminal actions are logged at.
	LogLevel string `yaml:"log_level"`
	// Messages overrides catalog templates by check key.
	Messages map[string]Template `yaml:"messages"`
}

// DefaultConfig returns the configuration used until Configure is
// called.
func DefaultConfig() Config {
	return Config{
		OrSeparator: DefaultOrSeparator,
		LogLevel:    "debug",
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration. Missing keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment keys read by ApplyEnv, relative to the source prefix.
const (
	EnvOrSeparator = "OR_SEPARATOR"
	EnvTrace       = "TRACE"
	EnvLogLevel    = "LOG_LEVEL"
)

// ApplyEnv returns a copy of c with the values set in src taking
// precedence. The result is validated.
func (c Config) ApplyEnv(src env.Source) (Config, error) {
	if v, ok := src.Lookup(EnvOrSeparator); ok {
		c.OrSeparator = v
	}
	if v, ok := src.Lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := src.Lookup(EnvTrace); ok {
		trace, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("env %s: %w", EnvTrace, err)
		}
		c.Trace = trace
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports configuration values the engine cannot use.
func (c Config) Validate() error {
	if err := quietString(c.OrSeparator, "or_separator").IsEmpty().Err(); err != nil {
		return err
	}
	err := quietString(c.LogLevel, "log_level").
		IsFalse(func(s string) bool {
			switch s {
			case "", "debug", "DEBUG", "info", "INFO", "warn", "WARN",
				"warning", "error", "ERROR":
				return true
			}
			return false
		}, "<name> must be one of debug, info, warn or error").
		Err()
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(c.Messages) {
		if err := quietString(c.Messages[key].Guard, "messages."+key+".guard").
			IsEmptyOrWhitespace().Err(); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]Template) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// settings is the read-only snapshot consulted by assertions.
type settings struct {
	config   Config
	level    logging.LogLevel
	logger   logging.Logger
	recorder metrics.Recorder
}

var current atomic.Pointer[settings]

func init() {
	current.Store(defaultSettings())
}

func defaultSettings() *settings {
	return &settings{
		config:   DefaultConfig(),
		level:    logging.LevelDebug,
		logger:   logging.NullLogger{},
		recorder: metrics.NoopRecorder{},
	}
}

func loadSettings() *settings {
	return current.Load()
}

// quiet backs the validation of configuration and templates, which
// is kept out of the configured logger and recorder.
var quiet = defaultSettings()

func quietString(s, name string) *StringAssertion {
	a := String(s, name)
	a.settings = quiet
	return a
}

// Option configures the package-wide settings.
type Option func(*settings)

// WithConfig applies cfg. Message overrides are written into the
// catalog when Configure runs.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		if cfg.OrSeparator == "" {
			cfg.OrSeparator = DefaultOrSeparator
		}
		s.config = cfg
		s.level = logging.LevelDebug
		if cfg.LogLevel != "" {
			s.level = logging.ParseLevel(cfg.LogLevel)
		}
	}
}

// WithLogger sets the logger that receives fired assertions.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = logging.NullLogger{}
		}
		s.logger = logger
	}
}

// WithMetrics sets the recorder for check and outcome counters.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(s *settings) {
		if recorder == nil {
			recorder = metrics.NoopRecorder{}
		}
		s.recorder = recorder
	}
}

// Configure replaces the package settings. Options not given keep
// their current values. It is meant to be called during program
// start-up; assertions already in flight keep the snapshot they
// started with.
func Configure(opts ...Option) error {
	prev := loadSettings()
	next := *prev
	for _, opt := range opts {
		opt(&next)
	}
	if err := overrideAll(next.config.Messages); err != nil {
		return err
	}
	current.Store(&next)
	return nil
}

// Reset restores the default settings and message catalog.
func Reset() {
	current.Store(defaultSettings())
	ResetMessages()
}
