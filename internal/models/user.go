// Package models содержит доменные структуры каталога и пользователей.
package models

import "time"

// User представляет зарегистрированного пользователя.
// PasswordHash хранит только bcrypt-хэш и никогда не сериализуется в JSON.
type User struct {
	UID          string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
