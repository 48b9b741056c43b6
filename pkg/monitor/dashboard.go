package monitor

import (
	"sort"
	"sync"
	"time"
)

// DashboardData aggregates fired assertions per subject.
type DashboardData struct {
	mu        sync.RWMutex
	runID     string
	startTime time.Time
	subjects  map[string]SubjectState
	kinds     map[string]int
	fired     int
}

// SubjectState is the dashboard entry of one subject name.
type SubjectState struct {
	Subject     string    `json:"subject"`
	Fired       int       `json:"fired"`
	LastAction  string    `json:"last_action"`
	LastMessage string    `json:"last_message"`
	LastKind    string    `json:"last_kind,omitempty"`
	LastSeen    time.Time `json:"last_seen"`
}

// DashboardSnapshot is a point-in-time copy of DashboardData.
type DashboardSnapshot struct {
	RunID     string                  `json:"run_id"`
	StartTime time.Time               `json:"start_time"`
	Subjects  map[string]SubjectState `json:"subjects"`
	Summary   DashboardSummary        `json:"summary"`
}

// DashboardSummary holds aggregate stats for the dashboard.
type DashboardSummary struct {
	Fired    int            `json:"fired"`
	Subjects int            `json:"subjects"`
	Kinds    map[string]int `json:"kinds,omitempty"`
	Top      []string       `json:"top,omitempty"`
	Elapsed  string         `json:"elapsed"`
}

// NewDashboardData creates a new dashboard data instance.
func NewDashboardData(runID string) *DashboardData {
	return &DashboardData{
		runID:     runID,
		startTime: time.Now(),
		subjects:  make(map[string]SubjectState),
		kinds:     make(map[string]int),
	}
}

// UpdateFromEvent folds a fired event into the dashboard. Other
// events are ignored.
func (d *DashboardData) UpdateFromEvent(event AssertionEvent) {
	if event.Type != EventFired {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	state := d.subjects[event.Subject]
	state.Subject = event.Subject
	state.Fired++
	state.LastAction = event.Action
	state.LastMessage = event.Message
	state.LastKind = event.Kind
	state.LastSeen = event.Timestamp
	d.subjects[event.Subject] = state

	d.fired++
	if event.Kind != "" {
		d.kinds[event.Kind]++
	}
}

// topSubjects is the number of subjects listed in the summary.
const topSubjects = 5

// Snapshot returns a copy of the current dashboard state.
func (d *DashboardData) Snapshot() DashboardSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snap := DashboardSnapshot{
		RunID:     d.runID,
		StartTime: d.startTime,
		Subjects:  make(map[string]SubjectState, len(d.subjects)),
		Summary: DashboardSummary{
			Fired:    d.fired,
			Subjects: len(d.subjects),
			Elapsed:  time.Since(d.startTime).Round(time.Millisecond).String(),
		},
	}
	names := make([]string, 0, len(d.subjects))
	for k, v := range d.subjects {
		snap.Subjects[k] = v
		names = append(names, k)
	}
	if len(d.kinds) > 0 {
		snap.Summary.Kinds = make(map[string]int, len(d.kinds))
		for k, v := range d.kinds {
			snap.Summary.Kinds[k] = v
		}
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := d.subjects[names[i]], d.subjects[names[j]]
		if a.Fired != b.Fired {
			return a.Fired > b.Fired
		}
		return names[i] < names[j]
	})
	if len(names) > topSubjects {
		names = names[:topSubjects]
	}
	if len(names) > 0 {
		snap.Summary.Top = names
	}
	return snap
}

// BuildDashboardData creates a DashboardData by replaying all
// events retained by collector.
func BuildDashboardData(collector *EventCollector) *DashboardData {
	data := NewDashboardData("snapshot")
	for _, event := range collector.Events() {
		data.UpdateFromEvent(event)
	}
	return data
}
