package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/subscription-service/internal/models"
)

// CreateUser сохраняет нового пользователя. Уникальность username
// не проверяется: повторная регистрация того же имени создаёт второй
// документ.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.mongo.CreateUser"

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindUserByUsername возвращает первого пользователя с указанным именем
// или ErrUserNotFound.
func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.mongo.FindUserByUsername"

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
