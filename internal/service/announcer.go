// Package service publishes deployment events to RabbitMQ. Failures are
// returned to the caller, which decides whether to log or ignore them.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/branch-deploy-status/internal/queue"
)

// Publisher is the subset of *amqp.Channel used to send a message.
type Publisher interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Announcer sends DeploymentStartedEvent messages to a durable queue.
type Announcer struct {
	URL   string
	Queue string
	// Dial opens a channel; defaults to amqp.Dial.
	Dial func(url string) (Publisher, func() error, error)
}

// NewAnnouncer returns an Announcer that dials url on each publish.
func NewAnnouncer(url, queue string) *Announcer {
	return &Announcer{URL: url, Queue: queue, Dial: dialAMQP}
}

func dialAMQP(url string) (Publisher, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	closer := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return ch, closer, nil
}

// Announce publishes ev as a persistent JSON message.
func (a *Announcer) Announce(ctx context.Context, ev q.DeploymentStartedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, closeFn, err := a.Dial(a.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = closeFn() }()

	// Durable so the event survives broker restarts.
	if _, err := ch.QueueDeclare(a.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "deployment.started",
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", a.Queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
