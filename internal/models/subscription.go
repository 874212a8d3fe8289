package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription представляет подписку пользователя.
//
// UserID — строковая ссылка на пользователя, существование которого
// не проверяется (внешних ключей в документном хранилище нет).
type Subscription struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Plan     string             `bson:"plan" json:"plan"`
	Price    float64            `bson:"price" json:"price"`
	Duration string             `bson:"duration" json:"duration"`
}

// CreateSubscriptionRequest используется для приёма данных из JSON-запроса
// на создание подписки.
//
// Тег required на числовом поле Price отвергает нулевое значение:
// подписка с ценой 0 считается некорректной так же, как и с
// отсутствующей ценой.
type CreateSubscriptionRequest struct {
	UserID   string  `json:"user_id" validate:"required"`
	Plan     string  `json:"plan" validate:"required"`
	Price    float64 `json:"price" validate:"required"`
	Duration string  `json:"duration" validate:"required"`
}
