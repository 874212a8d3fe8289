// Package user содержит бизнес-логику регистрации и аутентификации
// пользователей.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/subscription-service/internal/lib/password"
	"github.com/magabrotheeeer/subscription-service/internal/models"
	storage "github.com/magabrotheeeer/subscription-service/internal/storage/mongo"
)

// ErrInvalidCredentials возвращается и для неизвестного пользователя,
// и для неверного пароля. Причина намеренно не различается, чтобы по
// ответу нельзя было перебирать имена пользователей.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Repository описывает контракт для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByUsername возвращает первого пользователя с указанным
	// именем или storage.ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service реализует регистрацию и проверку учетных данных.
type Service struct {
	users Repository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users Repository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Register хэширует пароль и сохраняет нового пользователя.
// Занятость имени не проверяется.
func (s *Service) Register(ctx context.Context, username, rawPassword string) error {
	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}

	s.log.Info("registered new user", slog.String("username", username))
	return nil
}

// Login проверяет пароль пользователя. Возвращает ErrInvalidCredentials
// при неизвестном имени или несовпадении пароля; сессия или токен
// не создаются, результат — только факт успешной проверки.
func (s *Service) Login(ctx context.Context, username, rawPassword string) error {
	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
