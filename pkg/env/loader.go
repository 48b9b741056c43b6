// Package env reads assertion settings from the process environment
// and from .env files.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// DefaultPrefix is prepended to every key looked up by a Loader.
const DefaultPrefix = "ASSERTIONS_"

// Source provides setting values by unprefixed key.
type Source interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}

// Loader implements Source over the OS environment and values read
// from .env files. The OS environment takes precedence.
type Loader struct {
	mu     sync.RWMutex
	prefix string
	vars   map[string]string
}

// NewLoader creates a loader for keys under prefix. An empty prefix
// uses DefaultPrefix.
func NewLoader(prefix ...string) *Loader {
	p := DefaultPrefix
	if len(prefix) > 0 && prefix[0] != "" {
		p = prefix[0]
	}
	return &Loader{prefix: p, vars: make(map[string]string)}
}

// Prefix returns the key prefix.
func (l *Loader) Prefix() string { return l.prefix }

// Load reads KEY=VALUE lines from a .env file. Blank lines, comments
// and lines without '=' are skipped; surrounding quotes are removed.
func (l *Loader) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		l.vars[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	return nil
}

// unquote strips one pair of matching surrounding quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Lookup returns the value of prefix+key.
func (l *Loader) Lookup(key string) (string, bool) {
	name := l.prefix + key
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vars[name]
	return v, ok
}

// Get returns the value of prefix+key, or "" when unset.
func (l *Loader) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

// GetWithDefault returns the value of prefix+key or defaultValue
// when it is unset or empty.
func (l *Loader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

// Bool parses prefix+key as a boolean. ok is false when the key is
// unset.
func (l *Loader) Bool(key string) (value, ok bool, err error) {
	raw, ok := l.Lookup(key)
	if !ok {
		return false, false, nil
	}
	value, err = strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, true, fmt.Errorf("%s%s: %w", l.prefix, key, err)
	}
	return value, true, nil
}

// Set stores a value for prefix+key in the loader only; the process
// environment is left untouched.
func (l *Loader) Set(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[l.prefix+key] = value
}

// All returns a copy of the values read from files or Set.
func (l *Loader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
