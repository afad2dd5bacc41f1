package producer

import (
	"github.com/Urbancode-IT/INOUT-sub000/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// buildMessage keys by aggregate ID so events of one aggregate land on
// one partition in order. Attendance events use the employee ID as
// their aggregate for exactly this reason.
func buildMessage(event kafka.OutboxEvent) kafkago.Message {
	return kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "outbox_id", Value: []byte(event.ID)},
		},
	}
}
