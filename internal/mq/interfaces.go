package mq

import (
	"context"
	"errors"

	"biolink/internal/model"
)

// ErrProducerDisabled is returned when publishing through an unconfigured producer
var ErrProducerDisabled = errors.New("rocketmq producer disabled")

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	PublishVisit(ctx context.Context, visit *model.Visit) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
