// Package metrics records counters for evaluated assertion checks
// and fired terminal actions.
package metrics

// Recorder defines the interface for recording assertion metrics.
type Recorder interface {
	// RecordCheck records one evaluated check. reported is true
	// when the check contributed a message.
	RecordCheck(check string, reported bool)
	// RecordOutcome records a terminal action. fired is true when
	// the action acted on a detected condition.
	RecordOutcome(action string, fired bool)
}

// NoopRecorder is a no-op implementation of Recorder useful for
// testing or when metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordCheck(_ string, _ bool)   {}
func (NoopRecorder) RecordOutcome(_ string, _ bool) {}
