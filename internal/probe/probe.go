// Package probe implements the outbound liveness checks against the
// third-party services the dashboard reports on. Probes are issued once
// per request with a fixed timeout and never retried.
package probe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Probe classifications.
const (
	StatusOnline = "ONLINE"
	StatusDown   = "DOWN"
)

// Upper bound on probe response bodies read into memory.
const maxBodySize = 1 << 20

// Result is the outcome of a single probe.
type Result struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency"`
	Timestamp string `json:"timestamp"`
}

// CatboxProber issues HEAD requests against the file host used for
// served audio. Any transport error or status >= 400 classifies DOWN;
// the looser >= 500 threshold from an earlier revision was dropped in
// favor of this stricter one.
type CatboxProber struct {
	url        string
	httpClient *http.Client
}

// NewCatboxProber creates a catbox prober with the given target and timeout
func NewCatboxProber(url string, timeout time.Duration) *CatboxProber {
	return &CatboxProber{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Probe checks the file host. Latency is the full round trip in
// milliseconds, 0 when the host is unreachable.
func (p *CatboxProber) Probe(ctx context.Context) (string, int64) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return StatusDown, 0
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return StatusDown, 0
	}
	defer resp.Body.Close()

	latency := time.Since(start).Milliseconds()
	if resp.StatusCode >= 400 {
		return StatusDown, latency
	}
	return StatusOnline, latency
}

// MonitorProber issues GET requests against the music-lookup API with a
// fixed test query and validates the response shape end to end.
type MonitorProber struct {
	url        string
	httpClient *http.Client
}

// NewMonitorProber creates a monitor prober with the given target and timeout
func NewMonitorProber(url string, timeout time.Duration) *MonitorProber {
	return &MonitorProber{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// lookupBody is the subset of the music-lookup response the probe
// inspects. A healthy lookup carries either a success flag or a result
// identifier.
type lookupBody struct {
	Success *bool  `json:"success"`
	Link    string `json:"link"`
	ID      string `json:"id"`
}

// Probe checks the lookup API. ONLINE requires a clean transport, an
// exact 200 status, a JSON body, and the expected result shape; anything
// else is DOWN with latency forced to 0.
func (p *MonitorProber) Probe(ctx context.Context) Result {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	down := Result{Status: StatusDown, LatencyMS: 0, Timestamp: timestamp}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return down
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return down
	}
	defer resp.Body.Close()

	latency := time.Since(start).Milliseconds()

	if resp.StatusCode != http.StatusOK {
		return down
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return down
	}

	var lookup lookupBody
	if err := json.Unmarshal(body, &lookup); err != nil {
		return down
	}

	healthy := (lookup.Success != nil && *lookup.Success) || lookup.Link != "" || lookup.ID != ""
	if !healthy {
		return down
	}

	return Result{Status: StatusOnline, LatencyMS: latency, Timestamp: timestamp}
}
