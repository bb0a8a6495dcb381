package telemetry

import (
	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
)

// FakeReporter records reported cycles for test assertions.
type FakeReporter struct {
	// Samples contains all samples that were reported.
	Samples []sensor.Sample

	// Decisions contains all decisions that were reported.
	Decisions []logic.Decision

	// Payloads contains the JSON payloads that were reported.
	Payloads [][]byte

	// ReportError, if set, will be returned by Report.
	ReportError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeReporter creates a FakeReporter for testing.
func NewFakeReporter() *FakeReporter {
	return &FakeReporter{}
}

// Report records the cycle.
func (f *FakeReporter) Report(sample sensor.Sample, decision logic.Decision) error {
	if f.ReportError != nil {
		return f.ReportError
	}

	f.Samples = append(f.Samples, sample)
	f.Decisions = append(f.Decisions, decision)

	payload, err := FormatPayload(sample, decision)
	if err != nil {
		return err
	}
	f.Payloads = append(f.Payloads, payload)

	return nil
}

// Close marks the reporter as closed.
func (f *FakeReporter) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded cycles.
func (f *FakeReporter) Reset() {
	f.Samples = nil
	f.Decisions = nil
	f.Payloads = nil
	f.ReportError = nil
	f.Closed = false
}
