package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Notifier publishes events to the notifications exchange over one
// channel. Services depend on its Publish method through their own
// small interfaces.
type Notifier struct {
	ch *amqp.Channel
}

// NewNotifier wraps an open channel.
func NewNotifier(ch *amqp.Channel) *Notifier {
	return &Notifier{ch: ch}
}

// Publish sends message to the notifications exchange under routingKey.
func (n *Notifier) Publish(routingKey string, message any) error {
	return PublishMessage(n.ch, NotificationsExchange, routingKey, message)
}

// PublishMessage marshals message to JSON and publishes it persistently.
func PublishMessage(ch *amqp.Channel, exchange string, routingKey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
