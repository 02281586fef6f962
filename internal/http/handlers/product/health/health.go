// Package health реализует liveness-проверку сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK())
}
