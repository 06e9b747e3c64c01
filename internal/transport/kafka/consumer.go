package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// HandleFunc processes a single driver location ping.
type HandleFunc func(context.Context, domain.LocationPing) error

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches pings to a handler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	backoff time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns (nil, nil) when Kafka
// is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
		backoff: time.Second,
	}, nil
}

// Run consumes until ctx is done. A failed session, or one that ended on a
// retryable handler error, is followed by a backoff pause before rejoining.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		err := c.group.Consume(ctx, []string{c.topic}, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		handlerFailed := h.failed.Swap(false)
		switch {
		case err != nil:
			c.logger.Error("kafka consume error", logx.String("topic", c.topic), logx.Err(err))
		case handlerFailed:
			c.logger.Warn("kafka session ended on handler error, backing off",
				logx.String("topic", c.topic), logx.Duration("backoff", c.backoff))
		default:
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff):
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct {
	c      *Consumer
	failed atomic.Bool
}

func (*groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim commits every message it has dealt with, including ones it
// had to drop. A retryable handler error ends the claim without committing so
// the group redelivers from that offset.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.process(sess.Context(), msg); err != nil {
			h.failed.Store(true)
			return err
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

func (h *groupHandler) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	log := h.c.logger.With(logx.Int("partition", int(msg.Partition)), logx.Int64("offset", msg.Offset))

	var dto LocationDTO
	if err := json.Unmarshal(msg.Value, &dto); err != nil {
		log.Warn("kafka bad json", logx.Err(err))
		return nil
	}
	ping, err := ToDomain(dto)
	if err != nil {
		log.Warn("kafka bad location ping", logx.Err(err))
		return nil
	}

	err = h.c.handler(ctx, ping)
	switch {
	case err == nil:
		return nil
	case IsPermanent(err):
		log.Warn("kafka handle failed, skipping message",
			logx.String("driver_id", ping.DriverID.String()), logx.Err(err))
		return nil
	default:
		log.Error("kafka handle failed, will retry",
			logx.String("driver_id", ping.DriverID.String()), logx.Err(err))
		return err
	}
}
