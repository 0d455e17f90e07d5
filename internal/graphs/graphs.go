// Package graphs synthesizes the chart series shown on the dashboard.
// The series are a pseudo-random projection of the stored cumulative
// counters, not a record of real history: two calls over identical
// stored state legitimately produce different shapes, and nothing here
// is persisted or reproducible.
package graphs

import (
	"math/rand/v2"
)

const (
	monthlyPoints = 30
	hourlyBuckets = 24
)

// Monthly decomposes a cumulative usage counter into an at-most-30-point
// daily series, oldest first. Each step drops a uniformly random amount
// between 1 and 10% of the remaining total plus one; the walk stops
// early once the remainder hits zero.
func Monthly(totalUsage int64) []int64 {
	// Stored counters are monotone non-negative, but a corrupt record
	// must not break chart rendering.
	if totalUsage < 0 {
		totalUsage = 0
	}

	remaining := totalUsage
	points := make([]int64, 0, monthlyPoints)

	for i := 0; i < monthlyPoints; i++ {
		drop := rand.Int64N(remaining/10+1) + 1
		remaining -= drop
		if remaining < 0 {
			remaining = 0
		}
		points = append(points, remaining)
		if remaining == 0 {
			break
		}
	}

	// Generated newest-first; charts want oldest-first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return points
}

// Today spreads the used_today counter over a 24-bucket hourly
// histogram. Each unit lands in a uniformly random bucket no later than
// currentHour, so the buckets always sum to usedToday and no bucket
// after the current hour is ever touched.
func Today(usedToday int64, currentHour int) []int64 {
	buckets := make([]int64, hourlyBuckets)
	if currentHour < 0 {
		currentHour = 0
	}
	if currentHour >= hourlyBuckets {
		currentHour = hourlyBuckets - 1
	}

	for i := int64(0); i < usedToday; i++ {
		buckets[rand.IntN(currentHour+1)]++
	}

	return buckets
}
