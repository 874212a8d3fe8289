// Package create реализует HTTP-обработчик создания подписки.
//
// Все четыре поля запроса обязательны; нулевая цена отвергается так же,
// как отсутствующая. Нарушение схемы на стороне хранилища возвращается
// клиенту с текстом хранилища, остальные сбои — общим ответом 500.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-service/internal/models"
	storage "github.com/magabrotheeeer/subscription-service/internal/storage/mongo"
)

// Service описывает интерфейс бизнес-логики создания подписки.
type Service interface {
	Create(ctx context.Context, req models.CreateSubscriptionRequest) (string, error)
}

// Handler обрабатывает HTTP-запросы на создание подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Message("Invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Message("All fields are required"))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		var validationErr *storage.ValidationError
		if errors.As(err, &validationErr) {
			log.Error("storage rejected subscription", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Message(validationErr.Message))
			return
		}
		log.Error("failed to create subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Message("Internal server error"))
		return
	}

	log.Info("subscription created", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.Message("Subscription created successfully"))
}
