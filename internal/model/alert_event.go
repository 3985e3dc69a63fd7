package model

import "time"

// AlertEvent is the time-series row derived from an ingested AlertRecord.
type AlertEvent struct {
	Time      time.Time         `json:"time"`
	EventType string            `json:"event_type"`
	Proto     string            `json:"proto"`
	Severity  *int              `json:"severity,omitempty"`
	Tags      map[string]string `json:"tags"`
}
