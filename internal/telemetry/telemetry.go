// Package telemetry reports polling cycles to a remote collector, with
// abstraction for testing. The HTTP reporter is the primary sink; an MQTT
// reporter can publish the same payload to a broker.
package telemetry

import (
	"encoding/json"

	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
)

// Unit is the measurement unit carried in every payload.
const Unit = "C"

// Reporter reports one cycle's readings and decision to a sink.
type Reporter interface {
	// Report sends the cycle to the sink. Returns error if sending fails
	// (must not crash the process — the caller logs and moves on).
	Report(sample sensor.Sample, decision logic.Decision) error

	// Close releases the sink's resources.
	Close() error
}

// Payload is the JSON body sent to the collector. It carries enough for
// the collector to reconstruct the decision: per-probe raw and rounded
// values plus the selected minimum.
type Payload struct {
	Unit        string          `json:"unit"`
	Sensors     []SensorPayload `json:"sensors"`
	MinTempIntC int             `json:"min_temperature_int_c"`
}

// SensorPayload is one probe's contribution to the payload.
type SensorPayload struct {
	ID              string  `json:"id"`
	TemperatureC    float64 `json:"temperature_c"`
	TemperatureIntC int     `json:"temperature_int_c"`
}

// FormatPayload creates the JSON payload for one cycle.
func FormatPayload(sample sensor.Sample, decision logic.Decision) ([]byte, error) {
	sensors := make([]SensorPayload, 0, len(sample))
	for _, r := range sample {
		sensors = append(sensors, SensorPayload{
			ID:              r.ProbeID,
			TemperatureC:    r.TempC(),
			TemperatureIntC: logic.RoundMilli(r.MilliC),
		})
	}

	return json.Marshal(Payload{
		Unit:        Unit,
		Sensors:     sensors,
		MinTempIntC: decision.MinC,
	})
}
