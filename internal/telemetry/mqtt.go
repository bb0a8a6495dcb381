package telemetry

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
)

// Topic is the MQTT topic for cycle readings.
const Topic = "energy/frost/monitor/readings"

// MQTTReporter publishes cycle payloads to an MQTT broker. It carries the
// same JSON body as the HTTP reporter so broker consumers and the HTTP
// collector see identical data.
type MQTTReporter struct {
	client paho.Client
	topic  string
}

// NewMQTTReporter creates a reporter connected to the given broker.
func NewMQTTReporter(broker string) (*MQTTReporter, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("frost-monitor").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &MQTTReporter{
		client: client,
		topic:  Topic,
	}, nil
}

// Report publishes one cycle to the broker.
func (r *MQTTReporter) Report(sample sensor.Sample, decision logic.Decision) error {
	payload, err := FormatPayload(sample, decision)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// QoS 0 (at-most-once), not retained — a missed cycle is never
	// retried; the next cycle supersedes it.
	token := r.client.Publish(r.topic, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// Close disconnects from the broker.
func (r *MQTTReporter) Close() error {
	r.client.Disconnect(1000) // 1 second timeout
	return nil
}
