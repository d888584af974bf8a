// Package verification генерирует одноразовые токены подтверждения email.
//
// Токен — криптографически случайная непрозрачная строка (256 бит энтропии),
// хранится на записи пользователя вместе с абсолютным сроком действия.
package verification

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// NewToken возвращает случайный hex-токен длиной 64 символа.
func NewToken() (string, error) {
	const op = "verification.NewToken"
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
