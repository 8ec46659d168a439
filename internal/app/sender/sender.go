// Package sender assembles the notification sender binary: it consumes
// the notification queues and sends the e-mails.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/chatco/chatco-backend/internal/config"
	"github.com/chatco/chatco-backend/internal/lib/smtp"
	"github.com/chatco/chatco-backend/internal/rabbitmq"
	senderservice "github.com/chatco/chatco-backend/internal/services/sender"
)

// App is the assembled sender process.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New wires the sender dependencies.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(transport, cfg.OwnerEmail, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run starts one consumer per queue and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	consumers := []struct {
		queue   string
		handler func([]byte) error
	}{
		{rabbitmq.TrialExpiringQueue, a.senderService.SendTrialExpiryNotice},
		{rabbitmq.PasswordResetQueue, a.senderService.SendPasswordResetLink},
		{rabbitmq.ContactSubmissionQueue, a.senderService.SendContactNotification},
	}

	for _, c := range consumers {
		if err := rabbitmq.ConsumerMessage(ctx, a.ch, c.queue, c.handler); err != nil {
			a.logger.Error("failed to start consumer", slog.String("queue", c.queue), slog.Any("err", err))
			return err
		}
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
