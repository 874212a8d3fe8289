// Package list реализует HTTP-обработчик получения всех подписок.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-service/internal/models"
)

// Service описывает интерфейс бизнес-логики получения подписок.
type Service interface {
	List(ctx context.Context) ([]models.Subscription, error)
}

// Handler обрабатывает HTTP-запросы на получение списка подписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subs, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Message("Internal server error"))
		return
	}

	log.Info("listed subscriptions", slog.Int("count", len(subs)))
	// контракт отдает голый массив, без конверта
	render.JSON(w, r, subs)
}
