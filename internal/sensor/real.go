package sensor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// RealReader reads 1-Wire probes from the kernel's w1 sysfs tree.
type RealReader struct {
	pattern string
}

// NewRealReader creates a reader that discovers probes matching the given
// glob pattern (e.g. /sys/bus/w1/devices/28-*/temperature). Discovery
// happens on every ReadAll — probes may appear or disappear between cycles.
func NewRealReader(pattern string) *RealReader {
	return &RealReader{pattern: pattern}
}

// ReadAll globs the sysfs pattern and reads every matching probe.
func (r *RealReader) ReadAll() (Sample, error) {
	paths, err := filepath.Glob(r.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", r.pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w matching %s", ErrNoProbes, r.pattern)
	}

	readings := make([]Reading, 0, len(paths))
	for _, path := range paths {
		reading, err := readProbe(path)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return NewSample(readings)
}

// readProbe reads one probe file. The probe id is the device directory
// name; the file contains the temperature in milli-degrees as ASCII.
func readProbe(path string) (Reading, error) {
	id := filepath.Base(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return Reading{}, fmt.Errorf("read probe %s: %w", id, err)
	}

	raw := strings.TrimSpace(string(data))
	milli, err := strconv.Atoi(raw)
	if err != nil {
		return Reading{}, &MalformedReadingError{ProbeID: id, Raw: raw}
	}

	return Reading{ProbeID: id, MilliC: milli}, nil
}
