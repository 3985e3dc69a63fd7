package kafka

import (
	"encoding/json"
	"fmt"

	"alertdesk-backend/internal/model"

	"github.com/segmentio/kafka-go"
)

// encodeAlert keys messages by source IP so one host's alerts stay ordered
// within a partition.
func encodeAlert(source string, record model.AlertRecord) (kafka.Message, error) {
	value, err := json.Marshal(model.IngestedAlert{Source: source, Record: record})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode alert: %w", err)
	}
	key := record.SrcIP
	if key == "" {
		key = record.Proto
	}
	return kafka.Message{Key: []byte(key), Value: value}, nil
}

func decodeAlert(msg kafka.Message) (*model.IngestedAlert, error) {
	var alert model.IngestedAlert
	if err := json.Unmarshal(msg.Value, &alert); err != nil {
		return nil, fmt.Errorf("failed to decode alert at offset %d: %w", msg.Offset, err)
	}
	return &alert, nil
}
