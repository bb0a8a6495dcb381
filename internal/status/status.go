// Package status provides a thread-safe status tracker for the
// frost-monitor daemon. It is read by the HTTP status handlers while the
// poll loop writes to it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
)

// Config contains daemon configuration for display.
type Config struct {
	Pattern    string
	Pin        int
	ThresholdC int
	IntervalMs int64
	Endpoint   string
	MQTTBroker string // empty = disabled
	HTTPAddr   string
}

// Counts tracks poll loop outcomes since startup.
type Counts struct {
	Completed         int // cycles that read, decided, and actuated
	Skipped           int // cycles aborted by a stage failure
	TelemetryFailures int // reports that failed (cycle still completed)
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Sample       sensor.Sample
	Decision     logic.Decision
	HaveDecision bool
	Counts       Counts
	StartTime    time.Time
	Now          time.Time
	Config       Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// RecordCycle stores the latest completed cycle.
func (t *Tracker) RecordCycle(sample sensor.Sample, decision logic.Decision) {
	t.mu.Lock()
	t.snap.Sample = sample
	t.snap.Decision = decision
	t.snap.HaveDecision = true
	t.snap.Counts.Completed++
	t.mu.Unlock()
}

// RecordSkip counts a cycle aborted by a stage failure.
func (t *Tracker) RecordSkip() {
	t.mu.Lock()
	t.snap.Counts.Skipped++
	t.mu.Unlock()
}

// RecordTelemetryFailure counts a failed report.
func (t *Tracker) RecordTelemetryFailure() {
	t.mu.Lock()
	t.snap.Counts.TelemetryFailures++
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
