// Package aggregator turns alert records into chart-ready label/value series.
package aggregator

import (
	"sort"

	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"
)

// InvalidDateLabel is the day bucket used for timestamps that cannot be parsed.
const InvalidDateLabel = "Invalid Date"

const dayLayout = "2006-01-02"

// Series holds positionally aligned labels and counts: Labels[i] has Values[i].
type Series[K comparable] struct {
	Labels []K   `json:"labels"`
	Values []int `json:"values"`
}

// KeyExtractor returns the grouping key of a record, or false to skip it.
type KeyExtractor[K comparable] func(record model.AlertRecord) (K, bool)

// AggregateBy counts records per key in a single pass. Labels follow the order
// in which keys were first seen.
func AggregateBy[K comparable](records []model.AlertRecord, extract KeyExtractor[K]) Series[K] {
	series := Series[K]{
		Labels: make([]K, 0),
		Values: make([]int, 0),
	}
	if extract == nil {
		return series
	}

	index := make(map[K]int)
	for _, record := range records {
		key, ok := extract(record)
		if !ok {
			continue
		}
		if i, seen := index[key]; seen {
			series.Values[i]++
			continue
		}
		index[key] = len(series.Labels)
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, 1)
	}
	return series
}

// ByProtocol keys on record.proto.
func ByProtocol(record model.AlertRecord) (string, bool) {
	if record.Proto == "" {
		return "", false
	}
	return record.Proto, true
}

// BySeverity keys on record.alert.severity.
func BySeverity(record model.AlertRecord) (int, bool) {
	if !record.HasAlert() {
		return 0, false
	}
	return record.Alert.Severity, true
}

// ByDay keys on the UTC calendar day of record.timestamp.
func ByDay(record model.AlertRecord) (string, bool) {
	if record.Timestamp == "" {
		return "", false
	}
	return DayBucket(record.Timestamp), true
}

// DayBucket truncates a timestamp to YYYY-MM-DD, or InvalidDateLabel.
func DayBucket(timestamp string) string {
	t, err := parser.ParseTimestamp(timestamp)
	if err != nil {
		return InvalidDateLabel
	}
	return t.Format(dayLayout)
}

// AlertsByProtocol is the radar view.
func AlertsByProtocol(records []model.AlertRecord) Series[string] {
	return AggregateBy(records, ByProtocol)
}

// AlertsBySeverity is the bar view.
func AlertsBySeverity(records []model.AlertRecord) Series[int] {
	return AggregateBy(records, BySeverity)
}

// AlertsOverTime is the line view; day labels are sorted ascending and the
// counts are reordered with them.
func AlertsOverTime(records []model.AlertRecord) Series[string] {
	return SortByLabel(AggregateBy(records, ByDay))
}

// SortByLabel returns a copy of the series ordered by label, keeping each
// value attached to its label.
func SortByLabel(series Series[string]) Series[string] {
	order := make([]int, len(series.Labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return series.Labels[order[a]] < series.Labels[order[b]]
	})

	sorted := Series[string]{
		Labels: make([]string, len(order)),
		Values: make([]int, len(order)),
	}
	for i, j := range order {
		sorted.Labels[i] = series.Labels[j]
		sorted.Values[i] = series.Values[j]
	}
	return sorted
}

// Total sums the counts of a series.
func Total[K comparable](series Series[K]) int {
	total := 0
	for _, v := range series.Values {
		total += v
	}
	return total
}

// Point is one (timestamp, severity) pair for scatter plots.
type Point struct {
	X string `json:"x"`
	Y int    `json:"y"`
}

// Points lists the records that carry an alert as scatter points.
func Points(records []model.AlertRecord) []Point {
	points := make([]Point, 0, len(records))
	for _, record := range records {
		if !record.HasAlert() {
			continue
		}
		points = append(points, Point{X: record.Timestamp, Y: record.Alert.Severity})
	}
	return points
}
