package metrics

import "sync"

// InMemoryRecorder implements Recorder with plain counters. It is
// safe for concurrent use; export to a real backend is left to the
// host application.
type InMemoryRecorder struct {
	mu       sync.Mutex
	checks   map[string]int
	outcomes map[string]int
	total    int
}

// NewInMemoryRecorder creates an empty InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		checks:   make(map[string]int),
		outcomes: make(map[string]int),
	}
}

func (m *InMemoryRecorder) RecordCheck(check string, reported bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checks[key(check, reported, "reported", "passed")]++
	m.total++
}

func (m *InMemoryRecorder) RecordOutcome(action string, fired bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes[key(action, fired, "fired", "skipped")]++
}

// CheckCount returns how often check was evaluated with the given
// reported state.
func (m *InMemoryRecorder) CheckCount(check string, reported bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checks[key(check, reported, "reported", "passed")]
}

// OutcomeCount returns how often action ran with the given fired
// state.
func (m *InMemoryRecorder) OutcomeCount(action string, fired bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[key(action, fired, "fired", "skipped")]
}

// TotalChecks returns the number of evaluated checks.
func (m *InMemoryRecorder) TotalChecks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Reset clears every counter.
func (m *InMemoryRecorder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checks = make(map[string]int)
	m.outcomes = make(map[string]int)
	m.total = 0
}

func key(name string, flag bool, yes, no string) string {
	if flag {
		return name + ":" + yes
	}
	return name + ":" + no
}
