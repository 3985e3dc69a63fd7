package parser

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"alertdesk-backend/internal/model"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

var (
	ErrNotAnArray = errors.New("fetched data is not an array")
	ErrEmptyLine  = errors.New("empty line")
)

// Suricata writes "2024-01-15T10:20:30.123456+0000", which RFC3339 does not accept.
const suricataLayout = "2006-01-02T15:04:05.999999-0700"

// DecodeAlertLog decodes a JSON array of alert records. Elements that are not
// objects are dropped; fields with an unexpected type are treated as absent.
func DecodeAlertLog(data []byte) ([]model.AlertRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrNotAnArray)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotAnArray
	}

	records := make([]model.AlertRecord, 0)
	skipped := 0
	root.ForEach(func(_, value gjson.Result) bool {
		record, ok := decodeRecord(value)
		if !ok {
			skipped++
			return true
		}
		records = append(records, record)
		return true
	})
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("decoded", len(records)).Msg("Dropped non-object entries from alert log")
	}
	return records, nil
}

// ParseLine decodes a single NDJSON line as written by Suricata's eve output.
func ParseLine(line string) (*model.AlertRecord, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyLine
	}
	if !gjson.Valid(line) {
		log.Debug().Str("line", line).Msg("Alert line is not valid JSON")
		return nil, fmt.Errorf("line is not valid JSON: %.64s", line)
	}
	record, ok := decodeRecord(gjson.Parse(line))
	if !ok {
		return nil, fmt.Errorf("line is not a JSON object: %.64s", line)
	}
	return &record, nil
}

func decodeRecord(value gjson.Result) (model.AlertRecord, bool) {
	if !value.IsObject() {
		return model.AlertRecord{}, false
	}
	record := model.AlertRecord{
		Timestamp: timestampField(value, "timestamp"),
		Proto:     stringField(value, "proto"),
		SrcIP:     stringField(value, "src_ip"),
		DestIP:    stringField(value, "dest_ip"),
		EventType: stringField(value, "event_type"),
	}

	alert := value.Get("alert")
	severity := alert.Get("severity")
	// Severity levels are whole numbers; anything else is treated as absent.
	if alert.IsObject() && severity.Type == gjson.Number && severity.Num == math.Trunc(severity.Num) {
		record.Alert = &model.AlertInfo{
			Severity:  int(severity.Int()),
			Signature: stringField(alert, "signature"),
			Category:  stringField(alert, "category"),
		}
	}
	return record, true
}

// timestampField accepts the usual string form and epoch milliseconds.
func timestampField(value gjson.Result, path string) string {
	field := value.Get(path)
	if field.Type == gjson.Number {
		return time.UnixMilli(int64(math.Round(field.Num))).UTC().Format(time.RFC3339Nano)
	}
	return stringField(value, path)
}

func stringField(value gjson.Result, path string) string {
	field := value.Get(path)
	if field.Type != gjson.String {
		return ""
	}
	return field.String()
}

// ParseTimestamp parses an alert timestamp and returns it in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	if t, err := time.Parse(suricataLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
