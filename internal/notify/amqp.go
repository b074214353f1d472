package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/icinema-catalog/internal/queue"
)

// AMQP publishes notifications to a durable RabbitMQ queue.  Each publish
// opens its own connection so a broker outage never wedges the caller; any
// failure is logged and dropped.
type AMQP struct {
	url     string
	queue   string
	timeout time.Duration
	log     *zap.Logger
}

func NewAMQP(url, queueName string, log *zap.Logger) *AMQP {
	if queueName == "" {
		queueName = queue.DefaultNotificationQueue
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AMQP{url: url, queue: queueName, timeout: 3 * time.Second, log: log}
}

func (a *AMQP) Notify(ctx context.Context, n Notification) {
	if err := a.publish(ctx, n); err != nil {
		a.log.Warn("rabbitmq: publish notification failed", zap.String("queue", a.queue), zap.Error(err))
	}
}

func (a *AMQP) publish(ctx context.Context, n Notification) error {
	body, err := json.Marshal(toEvent(n))
	if err != nil {
		return err
	}

	conn, err := amqp.DialConfig(a.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(a.timeout),
	})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(a.queue, true, false, false, false, nil); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return ch.PublishWithContext(ctx,
		"",      // default exchange
		a.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    n.At,
			Body:         body,
		})
}

func toEvent(n Notification) queue.NotificationEvent {
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}
	return queue.NotificationEvent{
		Title:       n.Title,
		Description: n.Description,
		RaisedAt:    at.UTC().Format(time.RFC3339),
	}
}
