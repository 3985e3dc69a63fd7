package elasticsearch

import (
	"fmt"
	"time"

	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"
)

const dayLayout = "2006-01-02"

// alertDocument is the indexed form of an eve record. @timestamp is the parsed
// event time so range queries work; the raw timestamp is kept as is.
type alertDocument struct {
	model.AlertRecord
	EventTime  time.Time `json:"@timestamp"`
	Severity   *int      `json:"severity,omitempty"`
	SourceFile string    `json:"source_file,omitempty"`
}

// newAlertDocument falls back to ingestTime when the event time cannot be
// parsed.
func newAlertDocument(record model.AlertRecord, source string, ingestTime time.Time) alertDocument {
	doc := alertDocument{
		AlertRecord: record,
		EventTime:   ingestTime.UTC(),
		SourceFile:  source,
	}
	if t, err := parser.ParseTimestamp(record.Timestamp); err == nil {
		doc.EventTime = t
	}
	if record.Alert != nil {
		severity := record.Alert.Severity
		doc.Severity = &severity
	}
	return doc
}

// indexName places a document in the daily index of its event time,
// e.g. "alerts-2024-05-01".
func indexName(prefix string, eventTime time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, eventTime.UTC().Format(dayLayout))
}
