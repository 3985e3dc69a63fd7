package aggregator_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertdesk-backend/internal/aggregator"
	"alertdesk-backend/internal/model"
)

func alert(severity int) *model.AlertInfo {
	return &model.AlertInfo{Severity: severity}
}

func TestAlertsByProtocol(t *testing.T) {
	records := []model.AlertRecord{{Proto: "TCP"}, {Proto: "TCP"}, {Proto: "UDP"}}

	series := aggregator.AlertsByProtocol(records)

	assert.Equal(t, []string{"TCP", "UDP"}, series.Labels)
	assert.Equal(t, []int{2, 1}, series.Values)
}

func TestAlertsByProtocol_FirstSeenOrder(t *testing.T) {
	records := []model.AlertRecord{{Proto: "UDP"}, {Proto: "TCP"}, {Proto: "UDP"}, {}, {Proto: "ICMP"}}

	series := aggregator.AlertsByProtocol(records)

	assert.Equal(t, []string{"UDP", "TCP", "ICMP"}, series.Labels)
	assert.Equal(t, []int{2, 1, 1}, series.Values)
}

func TestAlertsBySeverity_SkipsRecordsWithoutAlert(t *testing.T) {
	records := []model.AlertRecord{
		{Proto: "TCP", Alert: alert(3)},
		{Proto: "TCP"},
		{Proto: "UDP", Alert: alert(1)},
		{Alert: alert(3)},
	}

	series := aggregator.AlertsBySeverity(records)

	assert.Equal(t, []int{3, 1}, series.Labels)
	assert.Equal(t, []int{2, 1}, series.Values)
	assert.Equal(t, 3, aggregator.Total(series))
	assert.Equal(t, 3, aggregator.Total(aggregator.AlertsByProtocol(records)))
}

func TestAlertsOverTime(t *testing.T) {
	records := []model.AlertRecord{
		{Timestamp: "2024-03-02T08:00:00.000000+0000"},
		{Timestamp: "2024-03-01T23:59:59.000000+0000"},
		{Timestamp: "2024-03-02T10:00:00Z"},
		{Timestamp: "2024-03-01T22:30:00.000000-0200"}, // 2024-03-02 in UTC
		{Timestamp: "##invalid##"},
		{},
	}

	series := aggregator.AlertsOverTime(records)

	assert.Equal(t, []string{"2024-03-01", "2024-03-02", aggregator.InvalidDateLabel}, series.Labels)
	assert.Equal(t, []int{1, 3, 1}, series.Values)
}

func TestAlertsOverTime_LabelsAlwaysSorted(t *testing.T) {
	records := []model.AlertRecord{
		{Timestamp: "2024-05-09T00:00:00Z"},
		{Timestamp: "2023-12-31T00:00:00Z"},
		{Timestamp: "2024-05-10T00:00:00Z"},
		{Timestamp: "2024-01-01T00:00:00Z"},
		{Timestamp: "2024-05-09T12:00:00Z"},
	}

	series := aggregator.AlertsOverTime(records)

	assert.True(t, sort.StringsAreSorted(series.Labels))
	require.Len(t, series.Values, len(series.Labels))
	counts := map[string]int{}
	for i, label := range series.Labels {
		counts[label] = series.Values[i]
	}
	assert.Equal(t, 2, counts["2024-05-09"])
	assert.Equal(t, 1, counts["2023-12-31"])
}

func TestAggregateBy_EmptyInput(t *testing.T) {
	for name, records := range map[string][]model.AlertRecord{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			protocols := aggregator.AlertsByProtocol(records)
			severities := aggregator.AlertsBySeverity(records)
			days := aggregator.AlertsOverTime(records)

			assert.NotNil(t, protocols.Labels)
			assert.Empty(t, protocols.Labels)
			assert.Empty(t, protocols.Values)
			assert.Empty(t, severities.Labels)
			assert.Empty(t, days.Labels)
			assert.NotNil(t, days.Values)
		})
	}
}

func TestAggregateBy_NilExtractor(t *testing.T) {
	series := aggregator.AggregateBy[string]([]model.AlertRecord{{Proto: "TCP"}}, nil)
	assert.Empty(t, series.Labels)
}

func TestPoints(t *testing.T) {
	records := []model.AlertRecord{
		{Timestamp: "2024-03-01T00:00:00Z", Alert: alert(2)},
		{Timestamp: "2024-03-01T01:00:00Z"},
		{Timestamp: "2024-03-01T02:00:00Z", Alert: alert(1)},
	}

	points := aggregator.Points(records)

	assert.Equal(t, []aggregator.Point{
		{X: "2024-03-01T00:00:00Z", Y: 2},
		{X: "2024-03-01T02:00:00Z", Y: 1},
	}, points)
	assert.Empty(t, aggregator.Points(nil))
}
