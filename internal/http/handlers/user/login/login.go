// Package login реализует HTTP-обработчик входа пользователя.
//
// Контракт заканчивается булевым результатом проверки: ни токен,
// ни сессия не выдаются. Для неизвестного имени и неверного пароля
// возвращается один и тот же ответ.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-service/internal/http/response"
	"github.com/magabrotheeeer/subscription-service/internal/lib/sl"
	userservice "github.com/magabrotheeeer/subscription-service/internal/services/user"
)

// Request — входные данные для входа. Пустое имя или пароль проходят
// дальше и падают на проверке учетных данных, не раскрывая причину.
type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) error
}

// Handler обрабатывает HTTP-запросы на вход.
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
	const op = "handlers.user.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Message("Invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("username", req.Username))

	err := h.service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, userservice.ErrInvalidCredentials) {
		log.Info("login rejected", slog.String("username", req.Username))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Message("Invalid username or password"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Message("Internal server error"))
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, response.Message("Login successful"))
}
