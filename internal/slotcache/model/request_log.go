package model

import "time"

// RequestLog is an append-only record of one resolution attempt.
type RequestLog struct {
	Endpoint       string
	Method         string
	Slot           *uint64
	CacheHit       bool
	ResponseTimeMs uint32
	StatusCode     uint16
	ErrorMessage   string
	CreatedAt      time.Time
}

// RequestStats aggregates request logs over a time window.
type RequestStats struct {
	TotalRequests     uint64
	CacheHits         uint64
	AvgResponseTimeMs float64
}
