package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/subscription-service/internal/models"
)

// CreateSubscription вставляет новую подписку и возвращает её
// идентификатор в hex-формате. Нарушение схемы коллекции приходит
// как *ValidationError.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "storage.mongo.CreateSubscription"

	res, err := s.subscriptions.InsertOne(ctx, sub)
	if err != nil {
		if validationErr := asValidationError(err); validationErr != nil {
			return "", validationErr
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListSubscriptions возвращает все подписки в порядке хранения,
// без пагинации.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	const op = "storage.mongo.ListSubscriptions"

	cur, err := s.subscriptions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var subs []models.Subscription
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// RemoveSubscription удаляет подписку по идентификатору и возвращает
// количество удалённых документов. Некорректный hex не может совпасть
// ни с одним документом, поэтому ошибкой не считается.
func (s *Storage) RemoveSubscription(ctx context.Context, id string) (int64, error) {
	const op = "storage.mongo.RemoveSubscription"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := s.subscriptions.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
