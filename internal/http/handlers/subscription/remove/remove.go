// Package remove реализует HTTP-обработчик удаления подписки.
//
// Удаление идемпотентно с точки зрения клиента: для несуществующего
// идентификатора возвращается тот же успешный ответ.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики удаления подписки.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// Handler обрабатывает HTTP-запросы на удаление подписки.
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
	const op = "handlers.subscription.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Message("Internal server error"))
		return
	}

	log.Info("subscription deleted", slog.String("id", id))
	render.JSON(w, r, response.Message("Subscription deleted successfully"))
}
