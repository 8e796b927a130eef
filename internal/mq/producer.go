package mq

import (
	"context"
	"fmt"

	"biolink/internal/config"
	"biolink/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

var _ ProducerInterface = (*Producer)(nil)

// Producer publishes visits to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// PublishVisit sends a visit message and waits for the broker to accept it
func (p *Producer) PublishVisit(ctx context.Context, visit *model.Visit) error {
	if p == nil || p.client == nil {
		return ErrProducerDisabled
	}

	msg, err := encodeVisit(p.topic, NewVisitMessage(visit))
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("ip", visit.IPAddress).
		Msg("Visit sent to RocketMQ")

	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}

func encodeVisit(topic string, vm *VisitMessage) (*primitive.Message, error) {
	body, err := json.Marshal(vm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(topic, body)
	m.WithTag(VisitTag)
	m.WithKeys([]string{vm.MessageID})
	return m, nil
}
