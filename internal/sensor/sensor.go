// Package sensor provides 1-Wire temperature probe discovery and reading
// with hardware abstraction. The real implementation reads the kernel's
// w1 sysfs files; the fake implementation allows testing without hardware.
package sensor

import (
	"errors"
	"fmt"
)

// DefaultPattern matches the kernel's 1-Wire thermometer sysfs files
// (family code 28 = DS18B20).
const DefaultPattern = "/sys/bus/w1/devices/28-*/temperature"

// Reading is one probe's measurement for one cycle. Immutable once built.
type Reading struct {
	// ProbeID is the stable hardware identifier (the w1 device directory
	// name, e.g. "28-0316b4a2c1ff").
	ProbeID string

	// MilliC is the raw value exactly as reported by the hardware, in
	// thousandths of a degree Celsius.
	MilliC int
}

// TempC returns the reading in degrees Celsius with fractional precision.
func (r Reading) TempC() float64 {
	return float64(r.MilliC) / 1000.0
}

// Sample is one cycle's set of readings. Probe order carries no meaning;
// probe ids are unique within a sample.
type Sample []Reading

// Reader reads all discoverable probes.
type Reader interface {
	// ReadAll discovers probes at call time and reads each one. A single
	// unreadable probe fails the whole read — no partial sample is
	// returned.
	ReadAll() (Sample, error)
}

// ErrNoProbes is returned when discovery matches zero probes.
var ErrNoProbes = errors.New("no probes found")

// MalformedReadingError reports a probe whose raw value could not be
// parsed as an integer.
type MalformedReadingError struct {
	ProbeID string
	Raw     string
}

func (e *MalformedReadingError) Error() string {
	return fmt.Sprintf("probe %s: malformed reading %q", e.ProbeID, e.Raw)
}

// DuplicateProbeError reports a probe id that appeared more than once in a
// single discovery pass. Duplicates indicate an enumeration fault; the
// sample cannot be trusted.
type DuplicateProbeError struct {
	ProbeID string
}

func (e *DuplicateProbeError) Error() string {
	return fmt.Sprintf("duplicate probe id %s", e.ProbeID)
}

// NewSample builds a Sample from readings, rejecting duplicate probe ids.
func NewSample(readings []Reading) (Sample, error) {
	if err := Sample(readings).Validate(); err != nil {
		return nil, err
	}
	return Sample(readings), nil
}

// Validate checks the sample's probe ids for uniqueness.
func (s Sample) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, r := range s {
		if seen[r.ProbeID] {
			return &DuplicateProbeError{ProbeID: r.ProbeID}
		}
		seen[r.ProbeID] = true
	}
	return nil
}
