package metrics

import (
	"strconv"
	"time"

	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"

	"github.com/rs/zerolog/log"
)

type Extractor interface {
	ExtractAlertEvent(record *model.AlertRecord) (*model.AlertEvent, bool)
}

type eveExtractor struct {
	now func() time.Time
}

func NewEveExtractor() Extractor {
	return &eveExtractor{now: time.Now}
}

// ExtractAlertEvent turns an ingested record into a time-series row. Records
// whose timestamp cannot be parsed are stamped with the ingestion time.
func (e *eveExtractor) ExtractAlertEvent(record *model.AlertRecord) (*model.AlertEvent, bool) {
	if record == nil {
		return nil, false
	}

	ts, err := parser.ParseTimestamp(record.Timestamp)
	tags := map[string]string{}
	if err != nil {
		ts = e.now().UTC()
		tags["parse_status"] = "invalid_timestamp"
	}

	eventType := record.EventType
	if eventType == "" {
		eventType = "unknown"
	}
	event := &model.AlertEvent{
		Time:      ts,
		EventType: eventType,
		Proto:     record.Proto,
		Tags:      tags,
	}
	if record.Alert != nil {
		severity := record.Alert.Severity
		event.Severity = &severity
		tags["severity"] = strconv.Itoa(severity)
		if record.Alert.Category != "" {
			tags["category"] = record.Alert.Category
		}
	}
	if record.Proto != "" {
		tags["proto"] = record.Proto
	}

	log.Trace().Str("event_type", eventType).Time("time", ts).Msg("Extracted alert event")
	return event, true
}
