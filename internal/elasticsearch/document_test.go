package elasticsearch

import (
	"encoding/json"
	"testing"
	"time"

	"alertdesk-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlertDocument(t *testing.T) {
	ingest := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	doc := newAlertDocument(model.AlertRecord{
		Timestamp: "2024-05-01T23:30:00.000000-0200",
		Proto:     "TCP",
		Alert:     &model.AlertInfo{Severity: 3},
	}, "eve.json", ingest)

	assert.Equal(t, time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC), doc.EventTime)
	require.NotNil(t, doc.Severity)
	assert.Equal(t, 3, *doc.Severity)
	assert.Equal(t, "alerts-2024-05-02", indexName("alerts", doc.EventTime))

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"@timestamp":"2024-05-02T01:30:00Z"`)
	assert.Contains(t, string(data), `"proto":"TCP"`)
}

func TestNewAlertDocument_UnparsableTimestamp(t *testing.T) {
	ingest := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	doc := newAlertDocument(model.AlertRecord{Timestamp: "##invalid##", Proto: "UDP"}, "eve.json", ingest)

	assert.Equal(t, ingest, doc.EventTime)
	assert.Nil(t, doc.Severity)
	assert.Equal(t, "alerts-2024-06-01", indexName("alerts", doc.EventTime))
}
