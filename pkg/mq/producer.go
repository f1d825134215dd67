package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp091.Channel the producer drives.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Producer publishes notification events to a topic exchange keyed by type.
type Producer struct {
	conn *amqp091.Connection
	ch   channel
	// amqp channels must not be published on concurrently
	mu sync.Mutex
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "open rabbitmq channel")
	}
	p, err := newProducer(ch)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newProducer(ch channel) (*Producer, error) {
	p := &Producer{ch: ch}
	if err := p.declare(); err != nil {
		ch.Close()
		return nil, errors.WithMessage(err, "declare notification topology")
	}
	return p, nil
}

// declare sets up the durable topic exchange and a catch-all queue. Consumers that
// only want one type bind their own queue with that type's routing key.
func (p *Producer) declare() error {
	if err := p.ch.ExchangeDeclare(NotificationExchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "exchange %s", NotificationExchange)
	}
	if _, err := p.ch.QueueDeclare(NotificationQueue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "queue %s", NotificationQueue)
	}
	if err := p.ch.QueueBind(NotificationQueue, notificationBindAll, NotificationExchange, false, nil); err != nil {
		return errors.Wrapf(err, "bind %s", NotificationQueue)
	}
	return nil
}

func (p *Producer) PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error {
	msg, err := publishing(event)
	if err != nil {
		return err
	}
	key := event.RoutingKey()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, NotificationExchange, key, false, false, msg); err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.EventID, key)
	}
	hlog.CtxDebugf(ctx, "mq: published %s to %s for %s", event.EventID, key, event.RecipientID)
	return nil
}

// publishing encodes event as a persistent JSON message. The recipient travels as a
// header so consumers can filter without decoding the body.
func publishing(event *NotificationEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, errors.Wrap(err, "encode notification event")
	}
	ts := time.Now()
	if event.Timestamp > 0 {
		ts = time.Unix(event.Timestamp, 0)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    ts,
		MessageId:    event.EventID,
		Type:         event.Type,
		Headers:      amqp091.Table{"recipient_id": event.RecipientID},
		Body:         body,
	}, nil
}

func (p *Producer) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
