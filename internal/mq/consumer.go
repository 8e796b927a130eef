package mq

import (
	"context"
	"fmt"

	"biolink/internal/config"
	"biolink/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// VisitHandler persists a consumed visit
type VisitHandler func(ctx context.Context, visit *model.Visit) error

var _ ConsumerInterface = (*Consumer)(nil)

// Consumer handles message consumption from RocketMQ
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler VisitHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler VisitHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: VisitTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume hands each visit to the handler. A handler failure asks the broker
// to redeliver the batch; an undecodable body is dropped since it can never succeed.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var vm VisitMessage
		if err := json.Unmarshal(msg.Body, &vm); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping undecodable visit message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("ip", vm.Visit.IPAddress).
			Msg("Processing visit")

		if c.handler == nil {
			continue
		}
		if err := c.handler(ctx, &vm.Visit); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
			return consumer.ConsumeRetryLater, err
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
