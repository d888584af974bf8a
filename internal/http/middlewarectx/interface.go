package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/vibe-terminal/internal/lib/jwt"
	"github.com/magabrotheeeer/vibe-terminal/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте.
	UserID Key = "user_id"
	// Email — ключ для email пользователя в контексте.
	Email Key = "email"
	// EmailVerified — ключ для статуса подтверждения email в контексте.
	EmailVerified Key = "email_verified"
)

// SessionParser описывает интерфейс проверки сессионного токена.
type SessionParser interface {
	ParseToken(tokenStr string) (*jwt.SessionClaims, error)
}

// UserProvider описывает интерфейс получения пользователя по ID.
type UserProvider interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}
