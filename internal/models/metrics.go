package models

import "time"

// SystemMetrics is a JSON-friendly snapshot of the in-process counters.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	ApprovalsTotal           uint64    `json:"approvals_total"`
	RejectionsTotal          uint64    `json:"rejections_total"`
	NotificationsFailed      uint64    `json:"notifications_failed"`
	SyncFailures             uint64    `json:"sync_failures"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
