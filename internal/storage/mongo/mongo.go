// Package mongo реализует хранилище сервиса поверх MongoDB.
//
// Хранилище работает с двумя коллекциями: users и subscriptions.
// Коллекция subscriptions создаётся с JSON-схемой, поэтому
// обязательность и типы полей подписки контролирует само хранилище,
// а нарушение схемы приходит отдельным видом ошибки.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection         = "users"
	subscriptionsCollection = "subscriptions"
)

// Коды ошибок сервера MongoDB.
const (
	codeNamespaceExists           = 48
	codeDocumentValidationFailure = 121
)

// ErrUserNotFound возвращается, когда пользователь с указанным именем
// не найден.
var ErrUserNotFound = errors.New("user not found")

// ValidationError описывает отказ хранилища принять документ из-за
// нарушения схемы коллекции. Текст сообщения отдаётся клиенту как есть.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Storage инкапсулирует подключение к MongoDB и доступ к коллекциям.
// Создаётся один раз при старте приложения и передаётся в сервисы явно.
type Storage struct {
	client        *mongo.Client
	users         *mongo.Collection
	subscriptions *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и при необходимости
// создаёт коллекцию подписок с валидатором схемы.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.mongo.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(database)
	if err := ensureSubscriptionSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		client:        client,
		users:         db.Collection(usersCollection),
		subscriptions: db.Collection(subscriptionsCollection),
	}, nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureSubscriptionSchema создаёт коллекцию subscriptions с JSON-схемой,
// требующей все четыре поля подписки. Повторное создание (в том числе
// из параллельно стартующего экземпляра) не считается ошибкой.
func ensureSubscriptionSchema(ctx context.Context, db *mongo.Database) error {
	schema := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"user_id", "plan", "price", "duration"},
			"properties": bson.M{
				"user_id":  bson.M{"bsonType": "string"},
				"plan":     bson.M{"bsonType": "string"},
				"price":    bson.M{"bsonType": []string{"double", "int", "long", "decimal"}},
				"duration": bson.M{"bsonType": "string"},
			},
		},
	}

	err := db.CreateCollection(ctx, subscriptionsCollection,
		options.CreateCollection().SetValidator(schema))
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}
	return err
}

// asValidationError возвращает *ValidationError, если запись отклонена
// валидатором схемы коллекции, иначе nil.
func asValidationError(err error) *ValidationError {
	var writeErr mongo.WriteException
	if !errors.As(err, &writeErr) {
		return nil
	}
	for _, we := range writeErr.WriteErrors {
		if we.Code == codeDocumentValidationFailure {
			return &ValidationError{Message: we.Message}
		}
	}
	return nil
}
