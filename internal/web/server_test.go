package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
	"github.com/sweeney/frost-monitor/internal/status"
)

func newTestServer(t *testing.T) (*httptest.Server, *status.Tracker) {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := status.Config{
		Pattern:    "/sys/bus/w1/devices/28-*/temperature",
		Pin:        17,
		ThresholdC: 10,
		IntervalMs: 60000,
		Endpoint:   "https://example.com/temperature",
		HTTPAddr:   ":80",
	}
	tr := status.NewTracker(start, cfg)
	srv := New(":0", tr)
	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts, tr
}

func TestJSONEndpoint(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.RecordCycle(
		sensor.Sample{
			{ProbeID: "28-aaaaaaaaaaaa", MilliC: 12000},
			{ProbeID: "28-bbbbbbbbbbbb", MilliC: 8000},
		},
		logic.Decision{MinC: 8, ThresholdC: 10, Active: true},
	)

	resp, err := http.Get(ts.URL + "/index.json")
	if err != nil {
		t.Fatalf("GET /index.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var sj status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&sj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if sj.Status.State != "ACTIVE" {
		t.Errorf("state: got %q, want ACTIVE", sj.Status.State)
	}
	if sj.Status.MinTempIntC == nil || *sj.Status.MinTempIntC != 8 {
		t.Errorf("min_temperature_int_c: got %v, want 8", sj.Status.MinTempIntC)
	}
	if len(sj.Status.Sensors) != 2 {
		t.Fatalf("sensors: got %d, want 2", len(sj.Status.Sensors))
	}
	if sj.Status.Counts.Completed != 1 {
		t.Errorf("completed: got %d, want 1", sj.Status.Counts.Completed)
	}
	if sj.Status.Config.Endpoint != "https://example.com/temperature" {
		t.Errorf("endpoint: got %q", sj.Status.Config.Endpoint)
	}
}

func TestJSONUnknownStateBeforeFirstCycle(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/index.json")
	if err != nil {
		t.Fatalf("GET /index.json: %v", err)
	}
	defer resp.Body.Close()

	var sj status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&sj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if sj.Status.State != "UNKNOWN" {
		t.Errorf("state: got %q, want UNKNOWN", sj.Status.State)
	}
}

func TestIndexPage(t *testing.T) {
	ts, tr := newTestServer(t)
	tr.RecordCycle(
		sensor.Sample{{ProbeID: "28-aaaaaaaaaaaa", MilliC: 8000}},
		logic.Decision{MinC: 8, ThresholdC: 10, Active: true},
	)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	html := string(body)

	if !strings.Contains(html, "ACTIVE") {
		t.Error("expected page to show ACTIVE state")
	}
	if !strings.Contains(html, "28-aaaaaaaaaaaa") {
		t.Error("expected page to list the probe id")
	}
}

func TestNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}
