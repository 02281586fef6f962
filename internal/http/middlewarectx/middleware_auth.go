// Package middlewarectx содержит HTTP middleware аутентификации по сессионной cookie.
//
// AuthMiddleware извлекает токен из cookie, проверяет его подпись и срок
// действия и кладёт uid пользователя в контекст запроса. Отсутствующий или
// невалидный токен обрывает обработку со статусом 401.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/http/session"
	"github.com/avdonin/grocery-catalog/internal/lib/jwt"
	"github.com/avdonin/grocery-catalog/internal/lib/sl"
)

// Key — тип ключей контекста HTTP-запроса.
type Key string

// UserUID — ключ, под которым middleware кладёт uid пользователя в контекст.
const UserUID Key = "user_uid"

// TokenParser описывает проверку сессионного токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// AuthMiddleware возвращает middleware, проверяющий сессионную cookie.
func AuthMiddleware(maker TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := session.FromRequest(r)
			if tokenStr == "" {
				log.Error("missing session cookie")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired session token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, claims.UserUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
