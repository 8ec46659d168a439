package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/access"
	"github.com/chatco/chatco-backend/internal/lib/sl"
)

// SubscriptionServiceInterface reads the current subscription status
// of a profile. The status is fetched from storage on every request.
type SubscriptionServiceInterface interface {
	GetSubscriptionStatus(ctx context.Context, userUID string) (string, error)
}

// SubscriptionStatusMiddleware guards the chat surface: only trial and
// active subscribers pass. Inactive users get 403 with a hint to pick
// a plan. Runs after JWTMiddleware.
func SubscriptionStatusMiddleware(log *slog.Logger, subService SubscriptionServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			status, err := subService.GetSubscriptionStatus(r.Context(), userUID)
			if err != nil {
				log.Error("failed to get subscription status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if !access.CanUseChat(status) {
				log.Warn("chat access denied", slog.String("status", status))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("subscription inactive, please select a plan"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
