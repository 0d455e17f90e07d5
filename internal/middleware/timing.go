package middleware

import (
	"context"
	"net/http"
	"time"
)

// timingKey is the context key for request start time
type timingKey struct{}

// Timing records the request start time in the context. The stats
// handler reads it back to report the api_speed field.
func Timing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), timingKey{}, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestStartTime retrieves the request start time from the context
func GetRequestStartTime(ctx context.Context) time.Time {
	if start, ok := ctx.Value(timingKey{}).(time.Time); ok {
		return start
	}
	return time.Now()
}

// GetElapsedMs returns the milliseconds elapsed since request start,
// rounded to two decimal places for display.
func GetElapsedMs(ctx context.Context) float64 {
	elapsed := time.Since(GetRequestStartTime(ctx))
	return float64(elapsed.Microseconds()) / 1000.0
}
