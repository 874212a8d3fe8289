// Package subscription содержит бизнес-логику для управления подписками.
package subscription

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/subscription-service/internal/models"
)

// Repository определяет методы для работы с подписками в хранилище.
type Repository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (string, error)
	// ListSubscriptions возвращает все подписки.
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	// RemoveSubscription удаляет подписку по ID и возвращает количество
	// удалённых документов.
	RemoveSubscription(ctx context.Context, id string) (int64, error)
}

// Service реализует создание, получение и удаление подписок.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет новую подписку и возвращает её ID.
func (s *Service) Create(ctx context.Context, req models.CreateSubscriptionRequest) (string, error) {
	sub := models.Subscription{
		UserID:   req.UserID,
		Plan:     req.Plan,
		Price:    req.Price,
		Duration: req.Duration,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return "", err
	}

	s.log.Info("created new subscription", slog.String("id", id))
	return id, nil
}

// List возвращает все подписки. При нуле записей отдаёт пустой срез,
// а не nil, чтобы клиент всегда получал JSON-массив.
func (s *Service) List(ctx context.Context) ([]models.Subscription, error) {
	subs, err := s.repo.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	return subs, nil
}

// Remove удаляет подписку по идентификатору. Отсутствие подходящей
// записи ошибкой не считается.
func (s *Service) Remove(ctx context.Context, id string) error {
	deleted, err := s.repo.RemoveSubscription(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("removed subscription",
		slog.String("id", id),
		slog.Int64("deleted_count", deleted))
	return nil
}
