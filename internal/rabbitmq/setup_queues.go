package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// NotificationsExchange is the direct exchange all events go through.
const NotificationsExchange = "notifications"

// Queue names and their routing keys.
const (
	TrialExpiringQueue     = "trial_expiring_queue"
	PasswordResetQueue     = "password_reset_queue"
	ContactSubmissionQueue = "contact_submission_queue"
	TrialExpiringKey       = "trial.expiring"
	PasswordResetKey       = "password.reset"
	ContactSubmissionKey   = "contact.submission"
)

// QueueConfig binds one queue to its routing key.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues lists every queue of the notification pipeline.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: TrialExpiringQueue, RoutingKey: TrialExpiringKey},
		{QueueName: PasswordResetQueue, RoutingKey: PasswordResetKey},
		{QueueName: ContactSubmissionQueue, RoutingKey: ContactSubmissionKey},
	}
}

// SetupChannel opens a channel, declares the exchange and binds the
// given queues.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		NotificationsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			NotificationsExchange,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
