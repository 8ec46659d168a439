// Package chatco assembles the API binary: storage, migrations, cache,
// broker, services and the HTTP server.
package chatco

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/chatco/chatco-backend/internal/cache"
	"github.com/chatco/chatco-backend/internal/config"
	"github.com/chatco/chatco-backend/internal/lib/jwt"
	"github.com/chatco/chatco-backend/internal/migrations"
	"github.com/chatco/chatco-backend/internal/rabbitmq"
	authservice "github.com/chatco/chatco-backend/internal/services/auth"
	chatservice "github.com/chatco/chatco-backend/internal/services/chat"
	contactservice "github.com/chatco/chatco-backend/internal/services/contact"
	contentservice "github.com/chatco/chatco-backend/internal/services/content"
	planservice "github.com/chatco/chatco-backend/internal/services/plan"
	profileservice "github.com/chatco/chatco-backend/internal/services/profile"
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// App is the assembled API process.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New wires every dependency and returns a runnable App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	notifier := rabbitmq.NewNotifier(ch)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authSvc := authservice.NewAuthService(db, jwtMaker, notifier, cfg.TrialDays, logger)
	profileSvc := profileservice.NewProfileService(db, logger)
	contentSvc := contentservice.NewContentService(db, cacheRedis, logger)
	planSvc := planservice.NewPlanService(db, cacheRedis, logger)
	contactSvc := contactservice.NewContactService(db, notifier, logger)
	chatSvc := chatservice.NewChatService(db,
		chatservice.NewEchoResponder(cfg.EchoDelay), cfg.HistoryLimit, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:    authSvc,
		Profile: profileSvc,
		Content: contentSvc,
		Plan:    planSvc,
		Contact: contactSvc,
		Chat:    chatSvc,
		Storage: db,
	}, jwtMaker)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.ch.Close(); closeErr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", closeErr))
		}
		if closeErr := a.conn.Close(); closeErr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		_ = a.db.DB.Close()
		return err
	}
}
