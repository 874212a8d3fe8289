// Package models содержит доменные структуры сервиса подписок:
// пользователя, подписку и DTO для приёма данных из JSON-запросов.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User представляет зарегистрированного пользователя системы.
//
// Уникальность username намеренно не контролируется: два пользователя
// могут зарегистрировать одно и то же имя. В хранилище сохраняется
// только bcrypt-хэш пароля, исходный пароль не сохраняется нигде.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}
