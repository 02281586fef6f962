// Package catalog собирает приложение каталога: хранилище, миграции,
// сервисы, маршруты и HTTP-сервер с корректным завершением.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/avdonin/grocery-catalog/internal/config"
	"github.com/avdonin/grocery-catalog/internal/lib/jwt"
	"github.com/avdonin/grocery-catalog/internal/migrations"
	authservice "github.com/avdonin/grocery-catalog/internal/services/auth"
	catalogservice "github.com/avdonin/grocery-catalog/internal/services/catalog"
	"github.com/avdonin/grocery-catalog/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.SecretKey, cfg.TokenTTL)
	auth := authservice.New(db, jwtMaker)
	catalog := catalogservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, auth, catalog)

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
	}, nil
}

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
		_ = a.db.DB.Close()
		return err
	}
}
