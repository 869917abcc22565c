// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
	"jelantah/internal/pkg/errs"

	"github.com/IBM/sarama"
)

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// statusChangedEvent is the wire payload for an order status change.
// Keyed by order ID so events for one order stay in partition order.
type statusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	CourierID   string    `json:"courier_id,omitempty"`
	Status      string    `json:"status"`
	Transition  string    `json:"transition"`
	ActualLiter *int      `json:"actual_liters,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher delivers order status events through a Kafka sync producer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a sync producer to the brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: topic}, nil
}

// PublishStatusChanged sends the reached status for the order.
func (p *Publisher) PublishStatusChanged(_ context.Context, aggregate *order.Order, transition order.Transition) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if err := transition.Validate(); err != nil {
		return err
	}

	event := statusChangedEvent{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID().String(),
		Status:      aggregate.Status().String(),
		Transition:  transition.String(),
		ActualLiter: aggregate.ActualLiters(),
		OccurredAt:  time.Now().UTC(),
	}
	if courier := aggregate.Courier(); courier != nil {
		event.CourierID = courier.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
