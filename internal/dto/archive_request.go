package dto

import "time"

type AlertSearchRequest struct {
	StartTime  time.Time
	EndTime    time.Time
	Protocols  []string
	Severities []int
	EventTypes []string
	Page       int
	Size       int
}

type AlertHistoryRequest struct {
	StartTime time.Time
	EndTime   time.Time
	Interval  string // "1 hour", "1 day"
	GroupBy   string // "proto", "severity", "event_type", "total"
}
