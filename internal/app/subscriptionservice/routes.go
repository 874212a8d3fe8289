package subscriptionservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/subscription/create"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/subscription-service/internal/http/handlers/user/register"
	subservice "github.com/magabrotheeeer/subscription-service/internal/services/subscription"
	userservice "github.com/magabrotheeeer/subscription-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *userservice.Service, subscriptionService *subservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", register.New(logger, userService).ServeHTTP)
		r.Post("/users/login", login.New(logger, userService).ServeHTTP)

		r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
