// Command frost-monitor polls 1-Wire temperature probes, drives a GPIO
// output from a frost-protection threshold, and reports readings to a
// telemetry collector.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/frost-monitor/internal/gpio"
	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
	"github.com/sweeney/frost-monitor/internal/status"
	"github.com/sweeney/frost-monitor/internal/telemetry"
	"github.com/sweeney/frost-monitor/internal/web"
)

// config is resolved once from flags at startup and immutable afterwards.
type config struct {
	pattern    string
	pin        int
	thresholdC int
	interval   time.Duration
	endpoint   string
	token      string
	timeout    time.Duration
	mqttBroker string
	httpAddr   string
	readOnce   bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.pattern, "sensors", sensor.DefaultPattern, "Glob pattern for 1-Wire probe files")
	flag.IntVar(&cfg.pin, "pin", gpio.DefaultPin, "BCM pin number for the actuator output")
	flag.IntVar(&cfg.thresholdC, "threshold", 10, "Temperature threshold in whole °C (output active strictly below)")
	flag.DurationVar(&cfg.interval, "interval", 60*time.Second, "Polling interval")
	flag.StringVar(&cfg.endpoint, "endpoint", "https://example.com/temperature", "Telemetry collector URL (empty to disable)")
	flag.StringVar(&cfg.token, "token", "", "Bearer token for the collector (empty to omit)")
	flag.DurationVar(&cfg.timeout, "telemetry-timeout", telemetry.DefaultTimeout, "Timeout per collector request")
	flag.StringVar(&cfg.mqttBroker, "mqtt-broker", "", "MQTT broker address for readings (empty to disable)")
	flag.StringVar(&cfg.httpAddr, "http", ":80", "HTTP status address (empty to disable)")
	flag.BoolVar(&cfg.readOnce, "read-once", false, "Read probes, print the decision, and exit (no GPIO)")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config) error {
	reader := sensor.NewRealReader(cfg.pattern)

	// Read-once mode: diagnostics without touching the actuator.
	if cfg.readOnce {
		sample, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("read sensors: %w", err)
		}
		decision, err := logic.Decide(sample, cfg.thresholdC)
		if err != nil {
			return fmt.Errorf("decide: %w", err)
		}
		for _, r := range sample {
			fmt.Printf("%s: %.3f°C (%d°C)\n", r.ProbeID, r.TempC(), logic.RoundMilli(r.MilliC))
		}
		fmt.Printf("min %d°C, threshold %d°C, output would be %s\n",
			decision.MinC, decision.ThresholdC, decision.State())
		return nil
	}

	// Initialize GPIO. This is the only fatal failure — there is no safe
	// way to run without a confirmed actuator line.
	out, err := gpio.NewRealOutput(cfg.pin)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer out.Close()

	if err := out.SafeDefault(); err != nil {
		return fmt.Errorf("force safe default: %w", err)
	}
	log.Printf("actuator initialized: pin=%d, safe default applied", cfg.pin)

	// Initialize telemetry sinks
	var reporters []telemetry.Reporter
	if cfg.endpoint != "" {
		reporters = append(reporters, telemetry.NewHTTPReporter(cfg.endpoint, cfg.token, cfg.timeout))
	}
	if cfg.mqttBroker != "" {
		mq, err := telemetry.NewMQTTReporter(cfg.mqttBroker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		reporters = append(reporters, mq)
	}
	defer func() {
		for _, rep := range reporters {
			rep.Close()
		}
	}()

	tracker := status.NewTracker(time.Now(), status.Config{
		Pattern:    cfg.pattern,
		Pin:        cfg.pin,
		ThresholdC: cfg.thresholdC,
		IntervalMs: cfg.interval.Milliseconds(),
		Endpoint:   cfg.endpoint,
		MQTTBroker: cfg.mqttBroker,
		HTTPAddr:   cfg.httpAddr,
	})

	// Start HTTP status server
	if cfg.httpAddr != "" {
		srv := web.New(cfg.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.httpAddr)
	}

	log.Printf("started: sensors=%s pin=%d threshold=%d°C interval=%v endpoint=%s",
		cfg.pattern, cfg.pin, cfg.thresholdC, cfg.interval, cfg.endpoint)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, out, reporters, tracker, cfg.thresholdC, ticker.C, sigCh)
}

// runLoop executes cycles until a shutdown signal arrives, then forces the
// actuator back to the safe default. The first cycle runs immediately; the
// ticker paces the rest. A failed cycle is logged and skipped — nothing in
// the loop terminates the process.
func runLoop(reader sensor.Reader, out gpio.Output, reporters []telemetry.Reporter, tracker *status.Tracker, thresholdC int, tick <-chan time.Time, sig <-chan os.Signal) error {
	cycle(reader, out, reporters, tracker, thresholdC)

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if err := out.SafeDefault(); err != nil {
				log.Printf("force safe default: %v", err)
			} else {
				log.Printf("actuator forced to safe default")
			}
			return nil

		case <-tick:
			cycle(reader, out, reporters, tracker, thresholdC)
		}
	}
}

// cycleError attributes a cycle failure to the stage that produced it.
type cycleError struct {
	stage string // "read", "decide", or "actuate"
	err   error
}

func (e *cycleError) Error() string {
	return e.stage + ": " + e.err.Error()
}

func (e *cycleError) Unwrap() error {
	return e.err
}

// cycle runs one iteration and contains its failures: an error from any
// stage skips the rest of the cycle and is logged with the failing stage.
func cycle(reader sensor.Reader, out gpio.Output, reporters []telemetry.Reporter, tracker *status.Tracker, thresholdC int) {
	if err := runCycle(reader, out, reporters, tracker, thresholdC); err != nil {
		var ce *cycleError
		if errors.As(err, &ce) {
			log.Printf("cycle skipped: stage=%s: %v", ce.stage, ce.err)
		} else {
			log.Printf("cycle skipped: %v", err)
		}
		if tracker != nil {
			tracker.RecordSkip()
		}
	}
}

// runCycle performs read → decide → actuate → report. Telemetry failures
// are handled here and never propagate: a reporting outage must not affect
// actuation or suppress the next cycle.
func runCycle(reader sensor.Reader, out gpio.Output, reporters []telemetry.Reporter, tracker *status.Tracker, thresholdC int) error {
	sample, err := reader.ReadAll()
	if err != nil {
		return &cycleError{stage: "read", err: err}
	}
	if err := sample.Validate(); err != nil {
		return &cycleError{stage: "read", err: err}
	}

	decision, err := logic.Decide(sample, thresholdC)
	if err != nil {
		return &cycleError{stage: "decide", err: err}
	}

	if err := out.Apply(decision.Active); err != nil {
		return &cycleError{stage: "actuate", err: err}
	}

	log.Printf("cycle: probes=%d min=%d°C threshold=%d°C output=%s",
		len(sample), decision.MinC, decision.ThresholdC, decision.State())

	if tracker != nil {
		tracker.RecordCycle(sample, decision)
	}

	for _, rep := range reporters {
		if err := rep.Report(sample, decision); err != nil {
			log.Printf("telemetry error: %v", err)
			if tracker != nil {
				tracker.RecordTelemetryFailure()
			}
		}
	}

	return nil
}
