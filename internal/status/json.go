package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/frost-monitor/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	State         string       `json:"state"`
	MinTempIntC   *int         `json:"min_temperature_int_c,omitempty"`
	ThresholdC    int          `json:"threshold_c"`
	Sensors       []SensorJSON `json:"sensors"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	Counts        CountsJSON   `json:"cycle_counts"`
	Config        ConfigJSON   `json:"config"`
}

// SensorJSON is the JSON representation of one probe's last reading.
type SensorJSON struct {
	ID              string  `json:"id"`
	TemperatureC    float64 `json:"temperature_c"`
	TemperatureIntC int     `json:"temperature_int_c"`
}

// CountsJSON is the JSON representation of cycle counts.
type CountsJSON struct {
	Completed         int `json:"completed"`
	Skipped           int `json:"skipped"`
	TelemetryFailures int `json:"telemetry_failures"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	Pattern    string `json:"sensor_pattern"`
	Pin        int    `json:"pin"`
	ThresholdC int    `json:"threshold_c"`
	IntervalMs int64  `json:"interval_ms"`
	Endpoint   string `json:"endpoint"`
	MQTTBroker string `json:"mqtt_broker,omitempty"`
	HTTPAddr   string `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	state := "UNKNOWN"
	var minC *int
	if snap.HaveDecision {
		state = string(snap.Decision.State())
		m := snap.Decision.MinC
		minC = &m
	}

	sensors := make([]SensorJSON, 0, len(snap.Sample))
	for _, r := range snap.Sample {
		sensors = append(sensors, SensorJSON{
			ID:              r.ProbeID,
			TemperatureC:    r.TempC(),
			TemperatureIntC: logic.RoundMilli(r.MilliC),
		})
	}

	return StatusInner{
		State:         state,
		MinTempIntC:   minC,
		ThresholdC:    snap.Config.ThresholdC,
		Sensors:       sensors,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			Completed:         snap.Counts.Completed,
			Skipped:           snap.Counts.Skipped,
			TelemetryFailures: snap.Counts.TelemetryFailures,
		},
		Config: ConfigJSON{
			Pattern:    snap.Config.Pattern,
			Pin:        snap.Config.Pin,
			ThresholdC: snap.Config.ThresholdC,
			IntervalMs: snap.Config.IntervalMs,
			Endpoint:   snap.Config.Endpoint,
			MQTTBroker: snap.Config.MQTTBroker,
			HTTPAddr:   snap.Config.HTTPAddr,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}
