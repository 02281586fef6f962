package catalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/avdonin/grocery-catalog/internal/config"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/auth/login"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/auth/logout"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/auth/me"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/auth/register"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/brands"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/categories"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/health"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/latest"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/list"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/read"
	"github.com/avdonin/grocery-catalog/internal/http/handlers/product/seed"
	"github.com/avdonin/grocery-catalog/internal/http/middlewarectx"
	"github.com/avdonin/grocery-catalog/internal/lib/jwt"
	authservice "github.com/avdonin/grocery-catalog/internal/services/auth"
	catalogservice "github.com/avdonin/grocery-catalog/internal/services/catalog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker, auth *authservice.AuthService, catalog *catalogservice.CatalogService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, auth, cfg.TokenTTL).ServeHTTP)
			r.Post("/login", login.New(logger, auth, cfg.TokenTTL).ServeHTTP)
			r.Post("/logout", logout.New(logger).ServeHTTP)

			// Группа с проверкой сессионной cookie
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AuthMiddleware(jwtMaker, logger))
				r.Get("/me", me.New(logger, auth).ServeHTTP)
			})
		})

		r.Get("/products", list.New(logger, catalog).ServeHTTP)
		r.Get("/products/latest", latest.New(logger, catalog).ServeHTTP)
		r.Get("/products/{id}", read.New(logger, catalog).ServeHTTP)
		r.Get("/categories", categories.New(logger, catalog).ServeHTTP)
		r.Get("/brands", brands.New(logger, catalog).ServeHTTP)
		r.Post("/seed", seed.New(logger, catalog).ServeHTTP)
		r.Get("/health", health.New().ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
