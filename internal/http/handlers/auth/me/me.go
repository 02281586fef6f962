// Package me реализует HTTP-обработчик чтения текущей личности по сессии.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/middlewarectx"
	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/lib/sl"
	"github.com/avdonin/grocery-catalog/internal/models"
	authservice "github.com/avdonin/grocery-catalog/internal/services/auth"
)

// Service описывает интерфейс разрешения личности по uid.
type Service interface {
	Me(ctx context.Context, uid string) (*models.User, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user uid not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	user, err := h.service.Me(r.Context(), uid)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidToken) {
			log.Error("session user no longer exists", slog.String("uid", uid))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired session"))
			return
		}
		log.Error("failed to resolve user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to resolve user"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user,
	}))
}
