package telemetry

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/sensor"
)

// DefaultTimeout bounds each collector request so a slow or unreachable
// collector cannot stall the poll loop.
const DefaultTimeout = 5 * time.Second

// HTTPReporter POSTs cycle payloads to an HTTP(S) collector.
type HTTPReporter struct {
	client *http.Client
	url    string
	token  string
}

// NewHTTPReporter creates a reporter for the given endpoint. token, if
// non-empty, is sent as a bearer credential; its absence does not alter the
// payload shape. A timeout of 0 uses DefaultTimeout.
func NewHTTPReporter(url, token string, timeout time.Duration) *HTTPReporter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPReporter{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

// Report sends one cycle to the collector as a JSON POST.
func (r *HTTPReporter) Report(sample sensor.Sample, decision logic.Decision) error {
	payload, err := FormatPayload(sample, decision)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to collector: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collector returned %s", resp.Status)
	}
	return nil
}

// Close releases idle connections.
func (r *HTTPReporter) Close() error {
	r.client.CloseIdleConnections()
	return nil
}
