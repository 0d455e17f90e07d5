package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCatboxProbeOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	status, latency := NewCatboxProber(srv.URL, time.Second).Probe(context.Background())
	assert.Equal(t, StatusOnline, status)
	assert.GreaterOrEqual(t, latency, int64(0))
}

func TestCatboxProbeErrorStatus(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		status, _ := NewCatboxProber(srv.URL, time.Second).Probe(context.Background())
		assert.Equal(t, StatusDown, status, "status code %d", code)
		srv.Close()
	}
}

func TestCatboxProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	status, latency := NewCatboxProber(srv.URL, time.Second).Probe(context.Background())
	assert.Equal(t, StatusDown, status)
	assert.Zero(t, latency)
}

func TestMonitorProbeOnline(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"success flag", `{"success": true}`},
		{"result link", `{"link": "https://cdn.example/song.mp3"}`},
		{"result id", `{"id": "abc123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res := NewMonitorProber(srv.URL, time.Second).Probe(context.Background())
			assert.Equal(t, StatusOnline, res.Status)
			assert.GreaterOrEqual(t, res.LatencyMS, int64(0))
			assert.NotEmpty(t, res.Timestamp)
		})
	}
}

func TestMonitorProbeDown(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200 status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"success": true}`))
		}},
		{"unparseable body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}},
		{"missing result shape", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "error": "quota"}`))
		}},
		{"empty object", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := NewMonitorProber(srv.URL, time.Second).Probe(context.Background())
			assert.Equal(t, StatusDown, res.Status)
			assert.Zero(t, res.LatencyMS)
			assert.NotEmpty(t, res.Timestamp)
		})
	}
}

func TestMonitorProbeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	res := NewMonitorProber(srv.URL, 20*time.Millisecond).Probe(context.Background())
	assert.Equal(t, StatusDown, res.Status)
	assert.Zero(t, res.LatencyMS)
}
