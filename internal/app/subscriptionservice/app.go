// Package subscriptionservice собирает приложение: хранилище, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package subscriptionservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/subscription-service/internal/config"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	subservice "github.com/magabrotheeeer/subscription-service/internal/services/subscription"
	userservice "github.com/magabrotheeeer/subscription-service/internal/services/user"
	storage "github.com/magabrotheeeer/subscription-service/internal/storage/mongo"
)

// storageCloser закрывает соединение с хранилищем при остановке.
type storageCloser interface {
	Close(ctx context.Context) error
}

// App держит HTTP-сервер и явный дескриптор хранилища: он открывается
// на старте, передается в сервисы и закрывается при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     storageCloser
}

// New подключается к хранилищу и собирает приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	db, err := storage.New(connectCtx, cfg.URI, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to MongoDB", sl.Err(err))
		return nil, err
	}
	logger.Info("connected to MongoDB", slog.String("database", cfg.Database))

	userService := userservice.New(db, logger)
	subscriptionService := subservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до ошибки сервера или отмены
// контекста. При отмене сервер и хранилище останавливаются корректно.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeStorage()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeStorage()
		return err
	}
}

// closeStorage освобождает соединение с хранилищем. Вызывается на обоих
// путях завершения Run: и при сбое сервера, и при отмене контекста.
func (a *App) closeStorage() {
	closeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.db.Close(closeCtx); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
