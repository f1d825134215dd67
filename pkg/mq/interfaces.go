package mq

import "context"

// MessageProducer publishes notification events to the broker.
type MessageProducer interface {
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error
	Close() error
}

var _ MessageProducer = (*Producer)(nil)

// Default is the producer used by notification fan-out; nil disables publishing.
var Default MessageProducer

// Init connects Default to RabbitMQ. An empty url leaves publishing disabled.
func Init(rabbitmqURL string) error {
	if rabbitmqURL == "" {
		return nil
	}
	p, err := NewProducer(rabbitmqURL)
	if err != nil {
		return err
	}
	Default = p
	return nil
}
