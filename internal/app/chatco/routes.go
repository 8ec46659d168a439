// Package chatco registers the HTTP routes of the API binary.
package chatco

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/chatco/chatco-backend/internal/http/handlers/admin/contactlist"
	"github.com/chatco/chatco-backend/internal/http/handlers/admin/contentlist"
	"github.com/chatco/chatco-backend/internal/http/handlers/admin/contentupdate"
	"github.com/chatco/chatco-backend/internal/http/handlers/admin/planlist"
	"github.com/chatco/chatco-backend/internal/http/handlers/admin/userlist"
	"github.com/chatco/chatco-backend/internal/http/handlers/auth/login"
	"github.com/chatco/chatco-backend/internal/http/handlers/auth/register"
	"github.com/chatco/chatco-backend/internal/http/handlers/auth/resetpassword"
	"github.com/chatco/chatco-backend/internal/http/handlers/chat/history"
	"github.com/chatco/chatco-backend/internal/http/handlers/chat/send"
	"github.com/chatco/chatco-backend/internal/http/handlers/contact/submit"
	"github.com/chatco/chatco-backend/internal/http/handlers/content/resolve"
	"github.com/chatco/chatco-backend/internal/http/handlers/health"
	planhandler "github.com/chatco/chatco-backend/internal/http/handlers/plan/list"
	"github.com/chatco/chatco-backend/internal/http/handlers/profile/read"
	"github.com/chatco/chatco-backend/internal/http/handlers/profile/rename"
	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/lib/jwt"
	authservice "github.com/chatco/chatco-backend/internal/services/auth"
	chatservice "github.com/chatco/chatco-backend/internal/services/chat"
	contactservice "github.com/chatco/chatco-backend/internal/services/contact"
	contentservice "github.com/chatco/chatco-backend/internal/services/content"
	planservice "github.com/chatco/chatco-backend/internal/services/plan"
	profileservice "github.com/chatco/chatco-backend/internal/services/profile"
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// Services bundles the business logic handed to the router.
type Services struct {
	Auth    *authservice.AuthService
	Profile *profileservice.ProfileService
	Content *contentservice.ContentService
	Plan    *planservice.PlanService
	Contact *contactservice.ContactService
	Chat    *chatservice.ChatService
	Storage *repository.Storage
}

// RegisterRoutes mounts every endpoint of the API.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services, jwtMaker jwt.Maker) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/reset-password", resetpassword.New(logger, svc.Auth).ServeHTTP)
		r.Get("/content", resolve.New(logger, svc.Content).ServeHTTP)
		r.Get("/plans", planhandler.New(logger, svc.Plan).ServeHTTP)
		r.Post("/contact", submit.New(logger, svc.Contact).ServeHTTP)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/profile", read.New(logger, svc.Profile).ServeHTTP)
			r.Put("/profile/username", rename.New(logger, svc.Profile).ServeHTTP)

			// Chat is additionally gated by subscription status
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.SubscriptionStatusMiddleware(logger, svc.Profile))
				r.Get("/chat/messages", history.New(logger, svc.Chat).ServeHTTP)
				r.Post("/chat/messages", send.New(logger, svc.Chat).ServeHTTP)
			})

			// Admin surface
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Get("/admin/content", contentlist.New(logger, svc.Content).ServeHTTP)
				r.Put("/admin/content/{key}", contentupdate.New(logger, svc.Content).ServeHTTP)
				r.Get("/admin/users", userlist.New(logger, svc.Profile).ServeHTTP)
				r.Get("/admin/plans", planlist.New(logger, svc.Plan).ServeHTTP)
				r.Get("/admin/contact", contactlist.New(logger, svc.Contact).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, svc.Storage).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
