package logic

import (
	"errors"

	"github.com/sweeney/frost-monitor/internal/sensor"
)

// ErrEmptySample is returned by Decide for a sample with zero readings.
// The sensor reader never produces one, but the decision stage must not
// silently invent a minimum for it.
var ErrEmptySample = errors.New("empty sample")

// RoundMilli rounds a milli-degree value to the nearest whole degree.
// Ties round away from zero: 9500 → 10, -9500 → -10.
func RoundMilli(milli int) int {
	if milli >= 0 {
		return (milli + 500) / 1000
	}
	return (milli - 500) / 1000
}

// Decide reduces a cycle's readings to one actuation decision: round each
// reading to whole degrees, take the minimum across probes, and compare it
// strictly against the threshold. A reading exactly at the threshold is
// inactive.
func Decide(sample sensor.Sample, thresholdC int) (Decision, error) {
	if len(sample) == 0 {
		return Decision{}, ErrEmptySample
	}

	min := RoundMilli(sample[0].MilliC)
	for _, r := range sample[1:] {
		if c := RoundMilli(r.MilliC); c < min {
			min = c
		}
	}

	return Decision{
		MinC:       min,
		ThresholdC: thresholdC,
		Active:     min < thresholdC,
	}, nil
}
