package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"dispatch-platform/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher writes order events to a topic, keyed by order id so that the
// events of one order keep their order within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer. It returns (nil, nil) when
// Kafka is not configured.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newPublisher(p, topic), nil
}

func newPublisher(p sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: p, topic: topic}
}

// Publish sends one event.
func (p *Publisher) Publish(ctx context.Context, e domain.OrderEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(FromDomain(e))
	if err != nil {
		return Permanent(err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.OrderID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("tenant_id"), Value: []byte(e.TenantID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("publish order event %s: %w", e.OrderID, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
