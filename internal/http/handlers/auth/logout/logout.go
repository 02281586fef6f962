// Package logout реализует HTTP-обработчик завершения сессии.
//
// Сбрасывает сессионную cookie; атрибуты сброса совпадают с атрибутами
// установки, иначе браузер проигнорирует удаление.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/http/session"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, session.Clear())

	log.Info("session cleared")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out successfully",
	}))
}
